package vigenere

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

func randStr(l int, alphabet string) string {
	a := []rune(alphabet)
	s := &strings.Builder{}
	s.Grow(l)
	for range l {
		s.WriteRune(a[rand.IntN(len(a))])
	}
	return s.String()
}

const (
	lower = "abcdefghijklmnopqrstuvwxyz"
	mixed = lower + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,;:!?-'\n\t"
)

func TestKnown(t *testing.T) {
	tests := []struct {
		plain, key, cipher string
	}{
		{"hello world", "key", "rijvs uyvjn"},
		{"freecodecamp is awesome", "happycoding", "mrttaqrhknsw ih puggrur"},
		{"attack at dawn", "lemon", "lxfopv ef rnhr"},
		{"a", "a", "a"},
		{"z", "b", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.plain+"/"+tt.key, func(t *testing.T) {
			enc, err := Encrypt(tt.plain, tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if have, want := enc, tt.cipher; have != want {
				t.Fatalf("Encrypt = %q, want %q", have, want)
			}

			dec, err := Decrypt(tt.cipher, tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if have, want := dec, tt.plain; have != want {
				t.Fatalf("Decrypt = %q, want %q", have, want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for range 200 {
		msg := randStr(rand.IntN(64), mixed)
		key := randStr(1+rand.IntN(12), lower+"ABCDEFGHIJKLMNOPQRSTUVWXYZ")

		t.Run(fmt.Sprintf("%q/%s", msg, key), func(t *testing.T) {
			enc, err := Encrypt(msg, key)
			if err != nil {
				t.Fatal(err)
			}
			dec, err := Decrypt(enc, key)
			if err != nil {
				t.Fatal(err)
			}
			if have, want := dec, strings.ToLower(msg); have != want {
				t.Fatalf("Decrypt(Encrypt(m)) = %q, want %q", have, want)
			}
		})
	}
}

func TestSingleLetterGrid(t *testing.T) {
	for m := 'a'; m <= 'z'; m++ {
		for k := 'a'; k <= 'z'; k++ {
			enc, err := Encrypt(string(m), string(k))
			if err != nil {
				t.Fatal(err)
			}
			if want := 'a' + (m-'a'+k-'a')%26; enc != string(want) {
				t.Fatalf("Encrypt(%c, %c) = %q, want %q", m, k, enc, want)
			}

			dec, err := Decrypt(enc, string(k))
			if err != nil {
				t.Fatal(err)
			}
			if dec != string(m) {
				t.Fatalf("Decrypt(%q, %c) = %q, want %q", enc, k, dec, m)
			}

			// Backward first must invert too
			dec, _ = Decrypt(string(m), string(k))
			enc, _ = Encrypt(dec, string(k))
			if enc != string(m) {
				t.Fatalf("Encrypt(Decrypt(%c, %c)) = %q", m, k, enc)
			}
		}
	}
}

func TestPassthrough(t *testing.T) {
	for range 100 {
		msg := randStr(1+rand.IntN(40), mixed+"éßΩ")
		key := randStr(1+rand.IntN(8), lower)

		for _, dir := range []direction{forward, backward} {
			out, err := transform(msg, key, dir)
			if err != nil {
				t.Fatal(err)
			}

			in := []rune(strings.ToLower(msg))
			res := []rune(out)
			if len(in) != len(res) {
				t.Fatalf("transform(%q) changed length: %d != %d", msg, len(res), len(in))
			}
			for i, r := range in {
				if r >= 'a' && r <= 'z' {
					if res[i] < 'a' || res[i] > 'z' {
						t.Fatalf("transform(%q)[%d] = %q, want a lowercase letter", msg, i, res[i])
					}
					continue
				}
				if res[i] != r {
					t.Fatalf("transform(%q)[%d] = %q, want %q", msg, i, res[i], r)
				}
			}
		}
	}
}

func TestLength(t *testing.T) {
	for _, msg := range []string{"", "x", "hello, world!", "ÀÉÎ ok", strings.Repeat("ab c", 100)} {
		out, err := Encrypt(msg, "key")
		if err != nil {
			t.Fatal(err)
		}
		if have, want := utf8.RuneCountInString(out), utf8.RuneCountInString(msg); have != want {
			t.Fatalf("Encrypt(%q) has %d characters, want %d", msg, have, want)
		}
	}
}

func TestKeyCycling(t *testing.T) {
	const key = "lemon"

	// Letters at the same position modulo len(key) get the same offset,
	// regardless of the non-letters in between.
	msg := "aaaaa..aaaaa  a-a-a-a-a"
	out, err := Encrypt(msg, key)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := out, "lemon..lemon  l-e-m-o-n"; have != want {
		t.Fatalf("Encrypt(%q) = %q, want %q", msg, have, want)
	}

	// A key repeated is the same key.
	for range 50 {
		m := randStr(30, mixed)
		a, _ := Encrypt(m, key)
		b, _ := Encrypt(m, key+key+key)
		if a != b {
			t.Fatalf("Encrypt(%q) depends on key repetition: %q != %q", m, a, b)
		}
	}
}

func TestCaseInsensitive(t *testing.T) {
	for range 100 {
		msg := randStr(30, mixed)
		key := randStr(1+rand.IntN(8), lower)

		for _, dir := range []direction{forward, backward} {
			a, err := transform(msg, key, dir)
			if err != nil {
				t.Fatal(err)
			}
			b, err := transform(strings.ToUpper(msg), strings.ToUpper(key), dir)
			if err != nil {
				t.Fatal(err)
			}
			if a != b {
				t.Fatalf("transform depends on case: %q != %q", a, b)
			}
			if a != strings.ToLower(a) {
				t.Fatalf("transform(%q) = %q is not lowercase", msg, a)
			}
		}
	}
}

func TestNoLetters(t *testing.T) {
	for _, msg := range []string{"", " ", "123 456", "!?., \t\n", "ÉÉ"} {
		for _, key := range []string{"a", "key", "Zebra"} {
			for _, dir := range []direction{forward, backward} {
				out, err := transform(msg, key, dir)
				if err != nil {
					t.Fatal(err)
				}
				if have, want := out, strings.ToLower(msg); have != want {
					t.Fatalf("transform(%q, %q, %d) = %q, want %q", msg, key, dir, have, want)
				}
			}
		}
	}
}

func TestInvalidKey(t *testing.T) {
	for _, key := range []string{"", " ", "k3y", "key!", "clé"} {
		t.Run(key, func(t *testing.T) {
			if _, err := Encrypt("hello", key); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("Encrypt error = %v, want ErrInvalidKey", err)
			}
			if _, err := Decrypt("hello", key); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("Decrypt error = %v, want ErrInvalidKey", err)
			}
			if err := ValidateKey(key); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("ValidateKey error = %v, want ErrInvalidKey", err)
			}
		})
	}

	if err := ValidateKey("HappyCoding"); err != nil {
		t.Fatalf("ValidateKey: %v", err)
	}
}

func TestConcurrent(t *testing.T) {
	g := errgroup.Group{}
	for range 32 {
		msg := randStr(200, mixed)
		key := randStr(1+rand.IntN(16), lower)

		g.Go(func() error {
			for range 20 {
				enc, err := Encrypt(msg, key)
				if err != nil {
					return err
				}
				dec, err := Decrypt(enc, key)
				if err != nil {
					return err
				}
				if dec != strings.ToLower(msg) {
					return fmt.Errorf("round trip %q with %q: got %q", msg, key, dec)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
