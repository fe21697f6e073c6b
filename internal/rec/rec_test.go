package rec

import (
	"errors"
	"strings"
	"testing"
)

var errBoom = errors.New("boom")

func TestError(t *testing.T) {
	f := func() (err error) {
		defer Error(&err)
		panic(errBoom)
	}

	if err := f(); !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want wrapped %v", err, errBoom)
	}

	g := func() (err error) {
		defer Error(&err)
		panic("plain")
	}

	if err := g(); err == nil || !strings.Contains(err.Error(), "recovered panic: plain") {
		t.Fatalf("err = %v", err)
	}
}

func TestErrorNoPanic(t *testing.T) {
	f := func() (err error) {
		defer Error(&err)
		return errBoom
	}

	if err := f(); err != errBoom {
		t.Fatalf("err = %v, want %v", err, errBoom)
	}
}

func TestWrap(t *testing.T) {
	f := func(fail, panics bool) (err error) {
		defer Wrap(&err, "job %q: %w", "demo")
		if panics {
			panic(errBoom)
		}
		if fail {
			return errBoom
		}
		return nil
	}

	if err := f(false, false); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}

	err := f(true, false)
	if !errors.Is(err, errBoom) || !strings.HasPrefix(err.Error(), `job "demo": boom`) {
		t.Fatalf("err = %v", err)
	}

	err = f(false, true)
	if !errors.Is(err, errBoom) || !strings.HasPrefix(err.Error(), `job "demo": recovered panic: boom`) {
		t.Fatalf("err = %v", err)
	}
}
