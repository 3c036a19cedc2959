package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/specialistvlad/fizzbuzzgo/internal/ctxlog"
	"github.com/specialistvlad/fizzbuzzgo/internal/fizzbuzz"
)

const (
	// Prompt is written before every read. It carries no trailing newline.
	Prompt = "Enter a number: "
	// InvalidInputMessage is written when a line does not hold a positive integer.
	InvalidInputMessage = "Please enter a valid positive number"
)

// ErrInvalidBound is returned by ParseBound for input that is not a
// base-10 integer of at least 1.
var ErrInvalidBound = errors.New("invalid bound")

// Computer maps a bound to the tokens printed for it.
type Computer func(n int) iter.Seq[string]

// Shell runs the prompt/read/validate/compute/print loop over a pair of
// streams. Diagnostics go to the logger carried by the context passed to Run.
type Shell struct {
	in      io.Reader
	out     *bufio.Writer
	compute Computer
}

// Option configures a Shell.
type Option func(*Shell)

// WithComputer replaces the token computer.
func WithComputer(c Computer) Option {
	return func(s *Shell) {
		s.compute = c
	}
}

// New returns a Shell reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		in:      in,
		out:     bufio.NewWriter(out),
		compute: fizzbuzz.Sequence,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseBound trims line and parses it as a base-10 integer. Anything that is
// not an integer, or is below 1, yields an error wrapping ErrInvalidBound.
func ParseBound(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidBound, trimmed)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d is less than 1", ErrInvalidBound, n)
	}
	return n, nil
}

// maxLineLength caps how much of one input line is kept. Longer lines are
// answered like any other invalid input.
const maxLineLength = 64 * 1024

type line struct {
	text    string
	tooLong bool
	err     error
}

// Run loops until the input ends or ctx is cancelled, both of which return
// nil. Only stream failures are returned as errors; invalid input is
// answered with InvalidInputMessage and a fresh prompt.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Shell loop started.")

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan line)
	go s.readLines(readCtx, lines)

	for {
		if err := s.write(Prompt); err != nil {
			return err
		}

		var (
			next line
			ok   bool
		)
		select {
		case <-ctx.Done():
			logger.Debug("Shell loop interrupted.", "reason", context.Cause(ctx))
			return nil
		case next, ok = <-lines:
		}
		if !ok {
			logger.Debug("Input closed, shell loop finished.")
			return nil
		}
		if next.err != nil {
			return fmt.Errorf("failed to read input: %w", next.err)
		}

		n, err := ParseBound(next.text)
		if next.tooLong {
			err = fmt.Errorf("%w: line exceeds %d bytes", ErrInvalidBound, maxLineLength)
		}
		if err != nil {
			logger.Debug("Rejected input.", "error", err)
			if err := s.write(InvalidInputMessage + "\n"); err != nil {
				return err
			}
			continue
		}

		logger.Debug("Computing tokens.", "bound", n)
		if err := s.printTokens(ctx, n); err != nil {
			return err
		}
		if ctx.Err() != nil {
			logger.Debug("Shell loop interrupted while printing.", "reason", context.Cause(ctx))
			return nil
		}
	}
}

// readLines feeds lines into out until the input ends, a read fails, or ctx
// is cancelled. out is closed on every path.
func (s *Shell) readLines(ctx context.Context, out chan<- line) {
	defer close(out)

	reader := bufio.NewReader(s.in)
	for {
		next, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return
		}
		select {
		case out <- next:
		case <-ctx.Done():
			return
		}
		if next.err != nil {
			return
		}
	}
}

// readLine reads one line without its line ending. A line longer than
// maxLineLength is drained and reported with tooLong set and no text. A
// final line without a newline is returned as a normal line; io.EOF is only
// returned once nothing is left.
func readLine(r *bufio.Reader) (line, error) {
	var (
		buf     []byte
		tooLong bool
		started bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if started {
					return line{text: string(buf), tooLong: tooLong}, nil
				}
				return line{}, io.EOF
			}
			return line{err: err}, nil
		}
		started = true
		if !tooLong {
			if len(buf)+len(chunk) > maxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return line{text: string(buf), tooLong: tooLong}, nil
		}
	}
}

// printTokens writes one token per line and stops early once ctx is done.
func (s *Shell) printTokens(ctx context.Context, n int) error {
	for tok := range s.compute(n) {
		if ctx.Err() != nil {
			break
		}
		if _, err := s.out.WriteString(tok); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := s.out.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (s *Shell) write(text string) error {
	if _, err := s.out.WriteString(text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
