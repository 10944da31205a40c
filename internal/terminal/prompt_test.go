package terminal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSecretRejectsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte("hunter2\n"), 0600); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}
	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open input file: %v", err)
	}
	defer in.Close()

	var out bytes.Buffer
	secret, err := NewTTY(in, &out).ReadSecret(context.Background(), "password: ")
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if secret != nil {
		t.Fatalf("expected no secret, got %q", secret)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompt for non-terminal input, got %q", out.String())
	}
}

func TestReadSecretRejectsPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	_, err = NewTTY(r, &bytes.Buffer{}).ReadSecret(context.Background(), "password: ")
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}

func TestAwaitSecretCancelledRestoresTerminal(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	restored := false
	var out bytes.Buffer
	secret, err := awaitSecret(ctx, &out,
		func() ([]byte, error) {
			<-release
			return []byte("late"), nil
		},
		func() { restored = true },
	)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if secret != nil {
		t.Fatalf("expected no secret, got %q", secret)
	}
	if !restored {
		t.Fatalf("expected terminal state to be restored")
	}
	if out.String() != "\n" {
		t.Fatalf("expected a single newline, got %q", out.String())
	}
}

func TestAwaitSecretReturnsRead(t *testing.T) {
	restored := false
	var out bytes.Buffer
	secret, err := awaitSecret(context.Background(), &out,
		func() ([]byte, error) { return []byte("hunter2"), nil },
		func() { restored = true },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(secret) != "hunter2" {
		t.Fatalf("expected hunter2, got %q", secret)
	}
	if restored {
		t.Fatalf("restore must not run after a completed read")
	}
	if out.String() != "\n" {
		t.Fatalf("expected a single newline, got %q", out.String())
	}
}

func TestAwaitSecretWrapsReadError(t *testing.T) {
	cause := errors.New("device gone")
	_, err := awaitSecret(context.Background(), &bytes.Buffer{},
		func() ([]byte, error) { return nil, cause },
		func() {},
	)
	if !errors.Is(err, cause) {
		t.Fatalf("expected read error in chain, got %v", err)
	}
}
