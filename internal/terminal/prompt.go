// Package terminal reads secrets from the controlling terminal with echo
// disabled.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Prompter obtains a secret from the user.
type Prompter interface {
	ReadSecret(ctx context.Context, prompt string) ([]byte, error)
}

// TTY prompts on out and reads a password from the terminal behind fd.
type TTY struct {
	fd  int
	out io.Writer
}

// NewTTY returns a prompter reading from in and writing the prompt to out.
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{fd: int(in.Fd()), out: out}
}

type readResult struct {
	secret []byte
	err    error
}

// ReadSecret writes prompt and reads one line without echo. If ctx is
// cancelled while waiting, the terminal state is restored and ctx.Err() is
// returned.
func (t *TTY) ReadSecret(ctx context.Context, prompt string) ([]byte, error) {
	if !term.IsTerminal(t.fd) {
		return nil, fmt.Errorf("%w (fd %d)", ErrNotTerminal, t.fd)
	}

	state, err := term.GetState(t.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to get terminal state: %w", err)
	}

	if _, err := io.WriteString(t.out, prompt); err != nil {
		return nil, fmt.Errorf("failed to write prompt: %w", err)
	}

	return awaitSecret(ctx, t.out,
		func() ([]byte, error) { return term.ReadPassword(t.fd) },
		func() { _ = term.Restore(t.fd, state) },
	)
}

// awaitSecret runs read in the background and waits for it or for ctx.
// restore runs only when ctx wins.
func awaitSecret(ctx context.Context, out io.Writer, read func() ([]byte, error), restore func()) ([]byte, error) {
	done := make(chan readResult, 1)
	go func() {
		secret, err := read()
		done <- readResult{secret: secret, err: err}
	}()

	select {
	case res := <-done:
		// ReadPassword swallows the newline, move off the prompt line.
		fmt.Fprintln(out)
		if res.err != nil {
			return nil, fmt.Errorf("failed to read password: %w", res.err)
		}
		return res.secret, nil
	case <-ctx.Done():
		restore()
		fmt.Fprintln(out)
		return nil, ctx.Err()
	}
}
