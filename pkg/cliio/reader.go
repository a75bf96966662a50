package cliio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when a prompt is abandoned because its context
// was cancelled. Callers treat it as "unwind to the enclosing menu".
var ErrInterrupted = errors.New("input interrupted")

type readKind int

const (
	kindLine readKind = iota
	kindPassword
)

type readResult struct {
	text string
	err  error
}

// Reader serves interactive prompts over a single input stream. Reads happen
// on a dedicated goroutine so a blocked prompt can be abandoned on context
// cancellation while the stream keeps exactly one reader.
type Reader struct {
	out io.Writer
	fd  int
	req chan readKind
	res chan readResult
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{out: out, fd: -1, req: make(chan readKind), res: make(chan readResult)}
	if f, ok := in.(*os.File); ok {
		r.fd = int(f.Fd())
	}
	go r.serve(in)
	return r
}

func (r *Reader) serve(in io.Reader) {
	sc := bufio.NewScanner(in)
	for kind := range r.req {
		if kind == kindPassword && r.fd >= 0 && term.IsTerminal(r.fd) {
			pw, err := term.ReadPassword(r.fd)
			fmt.Fprintln(r.out)
			r.res <- readResult{text: string(pw), err: err}
			continue
		}
		if !sc.Scan() {
			err := sc.Err()
			if err == nil {
				err = io.EOF
			}
			r.res <- readResult{err: err}
			continue
		}
		r.res <- readResult{text: sc.Text()}
	}
}

// ReadLine prints the prompt and returns the next input line, trimmed.
func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	return r.read(ctx, prompt, kindLine)
}

// ReadPassword reads a line without echoing it when the input is a terminal.
// Away from a terminal it degrades to a plain line read.
func (r *Reader) ReadPassword(ctx context.Context, prompt string) (string, error) {
	return r.read(ctx, prompt, kindPassword)
}

func (r *Reader) read(ctx context.Context, prompt string, kind readKind) (string, error) {
	fmt.Fprint(r.out, prompt)

	select {
	case r.req <- kind:
	case <-ctx.Done():
		fmt.Fprintln(r.out)
		return "", ErrInterrupted
	}

	select {
	case res := <-r.res:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.text), nil
	case <-ctx.Done():
		// The pending read finishes on its own; drain it so the serve
		// goroutine is free for the next prompt.
		go func() { <-r.res }()
		fmt.Fprintln(r.out)
		return "", ErrInterrupted
	}
}

// Printf writes program output interleaved with the prompts.
func (r *Reader) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
