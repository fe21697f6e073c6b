// Command vigenere decrypts the example message, or runs the jobs listed in a YAML file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"vigenere/internal/config"
	"vigenere/internal/ctxlog"
	"vigenere/internal/rec"
	"vigenere/internal/vigenere"
)

const (
	text      = "mrttaqrhknsw ih puggrur"
	customKey = "happycoding"
)

func demo() error {
	fmt.Printf("\nEncrypted text: %s\n", text)
	fmt.Printf("Key: %s\n", customKey)

	decryption, err := vigenere.Decrypt(text, customKey)
	if err != nil {
		return err
	}

	fmt.Printf("\nDecrypted text: %s\n\n", decryption)
	return nil
}

func run(ctx context.Context, args []string) (err error) {
	defer rec.Error(&err)

	if len(args) == 0 {
		return demo()
	}

	jobs, err := config.Load[Jobs](ctx, args[0])
	if err != nil {
		return fmt.Errorf("jobs: %w", err)
	}

	results, err := runJobs(ctx, jobs.Jobs)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s: %s\n", r.Job.Name, r.Output)
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = ctxlog.Setup(ctx, "vigenere", "")
	logger := ctxlog.Get(ctx)

	err := run(ctx, os.Args[1:])
	if err != nil {
		logger.Error("failed", "error", err)
		os.Exit(1)
	}
}
