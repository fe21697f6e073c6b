package server

import (
	"net/http"
	"strconv"
	"vigenere/internal/ctxlog"
)

const textPlain = "text/plain; charset=utf-8"

func writeText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", textPlain)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
	}
}

func statusHandler(status int) http.Handler {
	body := http.StatusText(status) + "\n"
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeText(w, r, status, body)
	})
}

var (
	notFoundHandler            = statusHandler(http.StatusNotFound)
	tooManyRequestsHandler     = statusHandler(http.StatusTooManyRequests)
	internalServerErrorHandler = statusHandler(http.StatusInternalServerError)
)
