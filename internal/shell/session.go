package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jakoblorz/go-tasks/internal/config"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Session drives an Interpreter from a line-oriented reader: it prompts,
// reads a line, stops on the quit sentinel or end of input, and otherwise
// writes the interpreter's response.
type Session struct {
	// ID identifies the session in logs
	ID string

	interp *Interpreter
	in     *bufio.Reader
	out    io.Writer
	prompt string
	quit   string
	echo   bool
	logger *slog.Logger
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithPrompt sets the text written before each read
func WithPrompt(prompt string) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithQuit sets the sentinel line that ends the session
func WithQuit(quit string) SessionOption {
	return func(s *Session) {
		s.quit = quit
	}
}

// WithEcho writes every consumed line back after the prompt, so a replayed
// script reads like an interactive transcript
func WithEcho(echo bool) SessionOption {
	return func(s *Session) {
		s.echo = echo
	}
}

// WithLogger sets the logger for session diagnostics
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSessionID overrides the generated session id
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.ID = id
	}
}

// NewSession creates a session reading from in and writing to out.
func NewSession(interp *Interpreter, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		interp: interp,
		in:     bufio.NewReader(in),
		out:    out,
		prompt: config.DefaultPrompt,
		quit:   config.DefaultQuit,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.ID == "" {
		id, err := NewSessionID()
		if err != nil {
			s.logger.Warn("failed to generate session id", "error", err)
			id = "anonymous"
		}
		s.ID = id
	}

	return s
}

// NewSessionID generates a short random session identifier
func NewSessionID() (string, error) {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}
	return id, nil
}

// Run processes lines until the quit sentinel, end of input, or ctx is done.
// Reaching the end of input is not an error. Cancellation is checked before
// each prompt; a blocked read is not interrupted.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started", "session", s.ID)

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Debug("session cancelled", "session", s.ID)
			return err
		}

		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("end of input", "session", s.ID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if s.echo {
			if _, err := io.WriteString(s.out, line+"\n"); err != nil {
				return fmt.Errorf("failed to echo input: %w", err)
			}
		}

		if line == s.quit {
			s.logger.Debug("session ended", "session", s.ID)
			return nil
		}

		s.logger.Debug("executing command", "session", s.ID, "line", line)
		if err := s.interp.ExecuteTo(s.out, line); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// readLine returns the next input line without its line terminator. Lines
// have no length limit; a final line without a newline is still returned,
// and io.EOF is reported only once no input is left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
