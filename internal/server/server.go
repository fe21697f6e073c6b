// Package server exposes the cipher and the keyring over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
	"vigenere/internal/ctxlog"
	"vigenere/internal/vigenere"

	"golang.org/x/sync/errgroup"
)

type Server struct {
	addr            string
	handler         http.Handler
	antidos         *antidos
	tls             *tlsLoader
	shutdownTimeout time.Duration
}

func New(config Config) *Server {
	if config.Port == 0 {
		panic("server: port is required")
	}
	if config.AntidosBuckets == 0 {
		panic("server: antidosBuckets is required")
	}
	if config.AntidosPeriod == 0 {
		panic("server: antidosPeriod is required")
	}
	if config.ShutdownTimeout == 0 {
		panic("server: shutdownTimeout is required")
	}
	if (config.TLS.CertFile == "") != (config.TLS.KeyFile == "") {
		panic("server: tls needs both certFile and keyFile")
	}

	anti := newAntidos(config.AntidosBuckets, config.AntidosPeriod, config.AntidosMaxConcurrent, tooManyRequestsHandler)

	mux := http.NewServeMux()

	mux.Handle("/", notFoundHandler)
	mux.Handle("POST /encrypt", cipherHandler(vigenere.Encrypt))
	mux.Handle("POST /decrypt", cipherHandler(vigenere.Decrypt))

	if config.AdminKey != "" {
		adm := newAdmin(config.AdminKey, notFoundHandler)

		slog.Info("registering keyring handlers", "path", "/keys")
		mux.Handle("GET /keys", adm.middleware(listKeysHandler()))
		mux.Handle("PUT /keys/{name}", adm.middleware(putKeyHandler()))
		mux.Handle("DELETE /keys/{name}", adm.middleware(deleteKeyHandler()))
	} else {
		slog.Warn("adminKey not set, keyring handlers disabled")
	}

	handler := http.Handler(mux)
	handler = anti.middleware(handler)
	handler = robotsMiddleware(handler)
	handler = newRecover(handler, internalServerErrorHandler)
	handler = logMiddleware(handler)

	s := &Server{
		addr:            fmt.Sprintf("0.0.0.0:%d", config.Port),
		handler:         handler,
		antidos:         anti,
		shutdownTimeout: config.ShutdownTimeout,
	}

	if config.TLS.CertFile != "" {
		s.tls = newTLSLoader(config.TLS)
	}

	return s
}

func (s *Server) Run(ctx context.Context) error {
	defer s.antidos.stop()

	logger := ctxlog.Get(ctx)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
	}
	if s.tls != nil {
		srv.TLSConfig = s.tls.config()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server is running", "addr", s.addr, "tls", s.tls != nil)

		var err error
		if s.tls != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	})

	if s.tls != nil {
		g.Go(func() error {
			s.tls.reloadLoop(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("server is shutting down")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer stopCancel()

		err := srv.Shutdown(stopCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("server shutdown timeout exceeded")
			return fmt.Errorf("server: shutdown: %w", err)
		}
		if err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}

		logger.Info("all clients closed successfully")
		return nil
	})

	return g.Wait()
}
