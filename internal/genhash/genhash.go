// Package genhash implements the interactive bcrypt hash generator: it prompts
// for a password without echo, hashes it and prints the hash in a block ready
// to be pasted into a SQL statement.
package genhash

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/TheGojiOG/genhash/internal/auth"
	"github.com/TheGojiOG/genhash/internal/logging"
	"github.com/TheGojiOG/genhash/internal/terminal"
)

// User-facing text.
const (
	Prompt          = "请输入您要加密的密码: "
	EmptyMessage    = "错误：密码不能为空。"
	FailurePrefix   = "生成哈希时出错: "
	MaskChar        = "*"
	separatorLength = 30
)

// resultTemplate is filled with separator, mask, hash, separator.
const resultTemplate = "\n%s\n原始密码: %s\n生成的 Bcrypt 哈希: %s\n%s\n\n请将上面生成的哈希值用于您的 SQL 语句。\n"

// Options wires Run to its collaborators.
type Options struct {
	Prompter terminal.Prompter
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger

	// Cost overrides the bcrypt work factor. Zero means auth.DefaultCost.
	Cost int
}

// Run prompts for a password, hashes it and prints the result block to
// Stdout. Validation and operation failures are reported on Stderr and
// returned as *ValidationError or *OperationError. A run interrupted during
// the prompt or the hash computation prints nothing.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.L()
	}

	secret, err := opts.Prompter.ReadSecret(ctx, Prompt)
	if err != nil {
		opErr := &OperationError{Op: OpRead, Err: err}
		if errors.Is(err, context.Canceled) {
			logger.Info("prompt_interrupted")
			return opErr
		}
		return fail(opts.Stderr, logger, opErr)
	}
	defer clear(secret)

	if len(secret) == 0 {
		logger.Info("password_rejected", "reason", ErrEmptyPassword.Error())
		fmt.Fprintln(opts.Stderr, EmptyMessage)
		return &ValidationError{Field: "password", Err: ErrEmptyPassword}
	}

	if !utf8.Valid(secret) {
		return fail(opts.Stderr, logger, &OperationError{Op: OpEncode, Err: ErrInvalidEncoding})
	}

	start := time.Now()
	hash, err := auth.HashPassword(secret, opts.Cost)
	if err != nil {
		return fail(opts.Stderr, logger, &OperationError{Op: OpHash, Err: err})
	}
	if err := ctx.Err(); err != nil {
		logger.Info("hash_interrupted")
		return &OperationError{Op: OpHash, Err: err}
	}
	logger.Info("hash_generated", "cost", auth.EffectiveCost(opts.Cost), "duration", time.Since(start))

	if _, err := io.WriteString(opts.Stdout, FormatResult(utf8.RuneCount(secret), hash)); err != nil {
		return fail(opts.Stderr, logger, &OperationError{Op: OpWrite, Err: err})
	}

	return nil
}

// FormatResult renders the output block for a secret of length runes.
func FormatResult(length int, hash string) string {
	separator := strings.Repeat("=", separatorLength)
	return fmt.Sprintf(resultTemplate, separator, Mask(length), hash, separator)
}

// Mask returns one MaskChar per character of the secret.
func Mask(length int) string {
	if length <= 0 {
		return ""
	}
	return strings.Repeat(MaskChar, length)
}

func fail(stderr io.Writer, logger *slog.Logger, err *OperationError) error {
	logger.Error("hash_failed", "op", err.Op, "error", err.Err)
	fmt.Fprintf(stderr, "%s%v\n", FailurePrefix, err.Err)
	return err
}
