// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt collects the master secret. On a terminal echo is turned off
// with x/term; otherwise a newline-terminated line is read from the input.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/toeirei/padre/internal/errs"
	"github.com/toeirei/padre/internal/security"
	"golang.org/x/term"
)

// MaxSecretLength bounds the master secret in bytes.
const MaxSecretLength = 64

// Reader reads secrets from In, writing the prompt to Out.
type Reader struct {
	In  io.Reader
	Out io.Writer

	// readPassword and isTerminal are swapped by tests.
	readPassword func(fd int) ([]byte, error)
	isTerminal   func(fd int) bool
}

// NewReader returns a Reader for the process's stdin, prompting on stderr so
// stdout stays reserved for the derived password.
func NewReader() *Reader {
	return &Reader{In: os.Stdin, Out: os.Stderr}
}

type fder interface {
	Fd() uintptr
}

// ReadSecret prints label and reads one secret. Input ending before the
// newline yields errs.ErrIO; anything longer than MaxSecretLength yields
// errs.ErrResourceExhausted. Bytes read before a failure are zeroed.
//
// On a terminal the line discipline is left to term.ReadPassword, which takes
// Ctrl-D after typed characters as the end of the line. Only Ctrl-D on an
// empty line is reported as errs.ErrIO there.
func (r *Reader) ReadSecret(label string) (security.Secret, error) {
	if _, err := io.WriteString(r.Out, label); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	var (
		buf []byte
		err error
	)
	if f, ok := r.In.(fder); ok && r.terminal(int(f.Fd())) {
		buf, err = r.password(int(f.Fd()))
		_, _ = io.WriteString(r.Out, "\n")
		if err != nil {
			clear(buf)
			return nil, fmt.Errorf("read secret: %w: %w", errs.ErrIO, err)
		}
	} else {
		buf, err = readLine(r.In)
		if err != nil {
			clear(buf)
			return nil, err
		}
	}

	if len(buf) > MaxSecretLength {
		clear(buf)
		return nil, fmt.Errorf("master password longer than %d bytes: %w", MaxSecretLength, errs.ErrResourceExhausted)
	}
	return security.FromBytes(buf), nil
}

func (r *Reader) terminal(fd int) bool {
	if r.isTerminal != nil {
		return r.isTerminal(fd)
	}
	return term.IsTerminal(fd)
}

func (r *Reader) password(fd int) ([]byte, error) {
	if r.readPassword != nil {
		return r.readPassword(fd)
	}
	return term.ReadPassword(fd)
}

// readLine reads up to and excluding '\n' one byte at a time so nothing past
// the secret is consumed and no unzeroed copies are left in a bufio buffer.
// A trailing '\r' is dropped.
func readLine(in io.Reader) ([]byte, error) {
	br, ok := in.(io.ByteReader)
	if !ok {
		br = &byteReader{r: in}
	}
	buf := make([]byte, 0, MaxSecretLength+1)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return buf, fmt.Errorf("input ended before the end of the line: %w", errs.ErrIO)
		}
		if err != nil {
			return buf, fmt.Errorf("%w: %w", errs.ErrIO, err)
		}
		if c == '\n' {
			if n := len(buf); n > 0 && buf[n-1] == '\r' {
				buf[n-1] = 0
				buf = buf[:n-1]
			}
			return buf, nil
		}
		if len(buf) > MaxSecretLength {
			// keep draining the line but stop storing it
			continue
		}
		buf = append(buf, c)
	}
}

type byteReader struct {
	r   io.Reader
	one [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.one[:]); err != nil {
		return 0, err
	}
	c := b.one[0]
	b.one[0] = 0
	return c, nil
}
