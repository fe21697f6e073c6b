package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vigenere/internal/config"
	"vigenere/internal/ctxlog"
	"vigenere/internal/db"
	"vigenere/internal/rec"
)

const usage = `Usage:
  keys <config> list
  keys <config> set <name> <key>
  keys <config> delete <name>`

func run(ctx context.Context, c config.Config, args []string) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	db.Open(c.DB)
	defer ctxlog.Close(ctx, "db", db.Closer())

	switch {
	case len(args) == 1 && args[0] == "list":
		for name, entry := range db.All() {
			fmt.Printf("%s\t%s\n", name, entry.Created.Format(time.RFC3339))
		}

	case len(args) == 3 && args[0] == "set":
		if err := db.PutKey(args[1], args[2], time.Now()); err != nil {
			return fmt.Errorf("set %q: %w", args[1], err)
		}
		logger.Info("stored key", "key_name", args[1])

	case len(args) == 2 && args[0] == "delete":
		if err := db.DeleteKey(args[1]); err != nil {
			return fmt.Errorf("delete %q: %w", args[1], err)
		}
		logger.Info("deleted key", "key_name", args[1])

	default:
		fmt.Println(usage)
	}

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if len(os.Args) <= 2 {
		fmt.Println(usage)
		return
	}

	c, err := config.Load[config.Config](ctx, os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx = ctxlog.Setup(ctx, "keys", "")
	logger := ctxlog.Get(ctx)

	err = run(ctx, c, os.Args[2:])
	if err != nil {
		logger.Error("stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}
