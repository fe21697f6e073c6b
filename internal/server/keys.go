package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"vigenere/internal/ctxlog"
	"vigenere/internal/db"
	"vigenere/internal/vigenere"
)

func listKeysHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		type data struct {
			Keys []string `json:"keys"`
		}

		names := db.Names()
		if names == nil {
			names = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(data{Keys: names}); err != nil {
			log := ctxlog.Get(r.Context())
			log.Error("failed to write response", "error", err)
		}
	})
}

func putKeyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			writeText(w, r, http.StatusBadRequest, "invalid form: "+err.Error()+"\n")
			return
		}

		err := db.PutKey(name, r.PostForm.Get("key"), time.Now())
		if errors.Is(err, db.ErrInvalidName) || errors.Is(err, vigenere.ErrInvalidKey) {
			writeText(w, r, http.StatusBadRequest, err.Error()+"\n")
			return
		}
		if err != nil {
			log := ctxlog.Get(r.Context())
			log.Error("failed to store key", "key_name", name, "error", err)
			internalServerErrorHandler.ServeHTTP(w, r)
			return
		}

		ctxlog.Get(r.Context()).Info("stored key", "key_name", name)
		w.WriteHeader(http.StatusNoContent)
	})
}

func deleteKeyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		if err := db.DeleteKey(name); err != nil {
			log := ctxlog.Get(r.Context())
			log.Error("failed to delete key", "key_name", name, "error", err)
			internalServerErrorHandler.ServeHTTP(w, r)
			return
		}

		ctxlog.Get(r.Context()).Info("deleted key", "key_name", name)
		w.WriteHeader(http.StatusNoContent)
	})
}
