// Package vigenere implements the Vigenère cipher over lowercase Latin letters.
//
// Messages are lowercased before they are transformed. Letters a-z are
// rotated by the position of the current key letter, everything else is
// copied through and does not advance the key.
//
// The cipher is not secure against frequency analysis and is meant for
// educational use only.
package vigenere

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"vigenere/internal/rot"
)

// ErrInvalidKey is returned when the key is empty or contains anything
// other than Latin letters.
var ErrInvalidKey = errors.New("vigenere: invalid key")

type direction int

const (
	forward  direction = 1
	backward direction = -1
)

// Encrypt shifts every letter of message forward by the matching key letter.
func Encrypt(message, key string) (string, error) {
	return transform(message, key, forward)
}

// Decrypt reverses Encrypt.
func Decrypt(message, key string) (string, error) {
	return transform(message, key, backward)
}

// ValidateKey reports whether key can be used with Encrypt and Decrypt.
func ValidateKey(key string) error {
	_, err := offsets(key)
	return err
}

func offsets(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}

	offs := make([]int, 0, len(key))
	for i, r := range key {
		n, ok := rot.Offset(unicode.ToLower(r))
		if !ok {
			return nil, fmt.Errorf("%w: %q at byte %d is not a letter", ErrInvalidKey, r, i)
		}
		offs = append(offs, n)
	}
	return offs, nil
}

func transform(message, key string, dir direction) (string, error) {
	offs, err := offsets(key)
	if err != nil {
		return "", err
	}

	out := &strings.Builder{}
	out.Grow(len(message))

	cursor := 0
	for _, r := range message {
		r = unicode.ToLower(r)

		if r < 'a' || r > 'z' {
			out.WriteRune(r)
			continue
		}

		off := offs[cursor]
		cursor = (cursor + 1) % len(offs)

		out.WriteRune(rot.Rot(r, off*int(dir)))
	}
	return out.String(), nil
}
