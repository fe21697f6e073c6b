// Package db provides a named keyring for cipher keys using a BoltDB backend.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"
	"vigenere/internal/vigenere"

	"go.etcd.io/bbolt"
)

var (
	bucketKeys = []byte("keys")
)

// ErrKeyNotFound is returned by GetKey when no key is stored under the name.
var ErrKeyNotFound = errors.New("db: key not found")

// ErrInvalidName is returned for key names that are empty, too long or
// contain characters other than letters, digits, space, '_' and '-'.
var ErrInvalidName = errors.New("db: invalid key name")

type Config struct {
	File string `yaml:"file"`
}

var db *bbolt.DB

func Open(config Config) {
	if db != nil {
		panic("db: already opened")
	}
	if config.File == "" {
		panic("db: file is required")
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("db: create db dir: %w", err))
	}

	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		panic(fmt.Errorf("db: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{
			bucketKeys,
		} {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return fmt.Errorf("create bucket %q: %w", bucket, err)
			}
		}

		return nil
	})
	if err != nil {
		db.Close()
		db = nil
		panic(fmt.Errorf("db: initialize buckets: %w", err))
	}
}

func Close() error {
	if db == nil {
		panic("db: not opened")
	}

	err := db.Close()
	db = nil
	if err != nil {
		return fmt.Errorf("db: close bbolt db: %w", err)
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

// Entry is a stored key.
type Entry struct {
	Key     string    `json:"key"`
	Created time.Time `json:"created"`
}

func ValidName(name string) bool {
	if len(name) == 0 || len(name) > 30 {
		return false
	}

	return !strings.ContainsFunc(name, func(c rune) bool {
		return c != ' ' && c != '_' && c != '-' && (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9')
	})
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("db: must: %w", err))
	}
	return v
}

func bucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	b := tx.Bucket(bucketKeys)
	if b == nil {
		return nil, fmt.Errorf("db: keys bucket not found")
	}
	return b, nil
}

// PutKey stores key under name, replacing any previous key.
// The key is validated the same way the cipher validates it.
func PutKey(name, key string, now time.Time) error {
	if db == nil {
		panic("db: not opened")
	}
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if err := vigenere.ValidateKey(key); err != nil {
		return err
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}

		return b.Put([]byte(name), must(json.Marshal(Entry{
			Key:     key,
			Created: now,
		})))
	})
}

func GetKey(name string) (string, error) {
	if db == nil {
		panic("db: not opened")
	}

	var entry Entry
	err := db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}

		data := b.Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, name)
		}

		err = json.Unmarshal(data, &entry)
		if err != nil {
			return fmt.Errorf("db: unmarshal key %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return entry.Key, nil
}

// DeleteKey removes the key stored under name. Deleting a missing key is not an error.
func DeleteKey(name string) error {
	if db == nil {
		panic("db: not opened")
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx)
		if err != nil {
			return err
		}
		return b.Delete([]byte(name))
	})
}

func Names() []string {
	var names []string
	for name := range All() {
		names = append(names, name)
	}
	return names
}

var errStop = fmt.Errorf("stop iteration")

// All iterates over stored keys in name order.
func All() iter.Seq2[string, Entry] {
	if db == nil {
		panic("db: not opened")
	}

	return func(yield func(string, Entry) bool) {
		err := db.View(func(tx *bbolt.Tx) error {
			b, err := bucket(tx)
			if err != nil {
				return err
			}

			return b.ForEach(func(k, v []byte) error {
				var entry Entry
				err := json.Unmarshal(v, &entry)
				if err != nil {
					return fmt.Errorf("db: unmarshal key %q: %w", k, err)
				}

				if !yield(string(k), entry) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: get all keys: %w", err))
		}
	}
}
