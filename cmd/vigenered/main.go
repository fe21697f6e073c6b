package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"vigenere/internal/config"
	"vigenere/internal/ctxlog"
	"vigenere/internal/db"
	"vigenere/internal/rec"
	"vigenere/internal/server"
)

func run(ctx context.Context, c config.Config) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	logger.Info("opening db")
	db.Open(c.DB)
	defer ctxlog.Close(ctx, "db", db.Closer())

	logger.Info("starting server")
	srv := server.New(c.Server)

	return srv.Run(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := "config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	c, err := config.Load[config.Config](ctx, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx = ctxlog.Setup(ctx, "vigenered", c.LogDir)
	logger := ctxlog.Get(ctx)

	err = run(ctx, c)
	if err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
