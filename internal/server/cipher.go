package server

import (
	"errors"
	"net/http"
	"vigenere/internal/ctxlog"
	"vigenere/internal/db"
	"vigenere/internal/vigenere"
)

const maxBodySize = 1 << 20

type cipherFunc func(message, key string) (string, error)

// cipherHandler applies fn to the form values "message" and "key".
// "key_name" refers to a key stored in the keyring instead.
func cipherHandler(fn cipherFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := ctxlog.Get(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			writeText(w, r, http.StatusBadRequest, "invalid form: "+err.Error()+"\n")
			return
		}

		if !r.PostForm.Has("message") {
			writeText(w, r, http.StatusBadRequest, "message is required\n")
			return
		}
		message := r.PostForm.Get("message")

		key := r.PostForm.Get("key")
		if name := r.PostForm.Get("key_name"); name != "" {
			if key != "" {
				writeText(w, r, http.StatusBadRequest, "key and key_name are mutually exclusive\n")
				return
			}

			var err error
			key, err = db.GetKey(name)
			if errors.Is(err, db.ErrKeyNotFound) {
				writeText(w, r, http.StatusNotFound, "unknown key name\n")
				return
			}
			if err != nil {
				log.Error("failed to load key", "key_name", name, "error", err)
				internalServerErrorHandler.ServeHTTP(w, r)
				return
			}
		}

		out, err := fn(message, key)
		if errors.Is(err, vigenere.ErrInvalidKey) {
			writeText(w, r, http.StatusBadRequest, err.Error()+"\n")
			return
		}
		if err != nil {
			log.Error("cipher failed", "error", err)
			internalServerErrorHandler.ServeHTTP(w, r)
			return
		}

		writeText(w, r, http.StatusOK, out)
	})
}
