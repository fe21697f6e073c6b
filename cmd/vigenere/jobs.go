package main

import (
	"context"
	"fmt"
	"vigenere/internal/ctxlog"
	"vigenere/internal/rec"
	"vigenere/internal/vigenere"

	"golang.org/x/sync/errgroup"
)

type Job struct {
	Name      string `yaml:"name"`
	Message   string `yaml:"message"`
	Key       string `yaml:"key"`
	Direction string `yaml:"direction"`
}

type Jobs struct {
	Jobs []Job `yaml:"jobs"`
}

type Result struct {
	Job    Job
	Output string
}

func (j Job) cipher() (func(message, key string) (string, error), error) {
	switch j.Direction {
	case "encrypt":
		return vigenere.Encrypt, nil
	case "", "decrypt":
		return vigenere.Decrypt, nil
	default:
		return nil, fmt.Errorf("unknown direction %q", j.Direction)
	}
}

func (j Job) run() (out string, err error) {
	defer rec.Wrap(&err, "job %q: %w", j.Name)

	fn, err := j.cipher()
	if err != nil {
		return "", err
	}
	return fn(j.Message, j.Key)
}

// runJobs runs all jobs concurrently. Results keep the order of jobs.
func runJobs(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := job.run()
			if err != nil {
				return err
			}

			ctxlog.Get(ctx).Debug("job done", "job", job.Name)
			results[i] = Result{Job: job, Output: out}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
