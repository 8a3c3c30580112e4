// Package commlink wraps a reusable point-to-point transfer in a
// persistent-request lifecycle: the direction, peer connection and buffer
// are fixed at construction, then Start, Wait and Test drive each round.
// The wrapper forwards to the underlying connection and adds no protocol
// logic of its own.
package commlink

import (
	"errors"
	"fmt"
	"io"
)

// Kind is the direction of a persistent transfer.
type Kind string

const (
	KindSend    Kind = "send"
	KindReceive Kind = "receive"
)

var (
	// ErrInvalidKind is returned by New for a kind other than KindSend or
	// KindReceive.
	ErrInvalidKind = errors.New("commlink: invalid transfer kind")

	// ErrNotStarted is returned by Wait and Test when no transfer has been
	// started.
	ErrNotStarted = errors.New("commlink: no transfer started")

	// ErrInFlight is returned by Start while a previous transfer has not
	// been collected with Wait or a positive Test.
	ErrInFlight = errors.New("commlink: transfer already in flight")
)

// Persistent is a reusable transfer of one fixed-size buffer over a single
// connection. A send writes the whole buffer to the peer; a receive fills
// the whole buffer from it. After a transfer completes, Start may be
// called again to rerun it with the same buffer.
//
// A Persistent must be driven from one goroutine at a time.
type Persistent struct {
	kind Kind
	conn io.ReadWriter
	buf  []byte
	done chan error // non-nil while a transfer is uncollected
}

// New validates the transfer kind and builds a persistent transfer over
// conn for the given buffer.
func New(kind Kind, conn io.ReadWriter, buf []byte) (*Persistent, error) {
	switch kind {
	case KindSend, KindReceive:
	default:
		return nil, fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidKind, kind, KindSend, KindReceive)
	}
	return &Persistent{kind: kind, conn: conn, buf: buf}, nil
}

// Kind returns the transfer direction.
func (p *Persistent) Kind() Kind { return p.kind }

// Buffer returns the buffer the transfer operates on.
func (p *Persistent) Buffer() []byte { return p.buf }

// Start launches the configured transfer. Returns ErrInFlight if an
// earlier transfer has not been collected yet.
func (p *Persistent) Start() error {
	if p.done != nil {
		return ErrInFlight
	}

	done := make(chan error, 1)
	p.done = done
	go func() {
		var err error
		switch p.kind {
		case KindSend:
			_, err = p.conn.Write(p.buf)
		case KindReceive:
			_, err = io.ReadFull(p.conn, p.buf)
		}
		done <- err
	}()
	return nil
}

// Wait blocks until the in-flight transfer finishes and returns its
// result. Returns ErrNotStarted when no transfer was started.
func (p *Persistent) Wait() error {
	if p.done == nil {
		return ErrNotStarted
	}
	err := <-p.done
	p.done = nil
	return err
}

// Test polls the in-flight transfer without blocking. It reports true and
// the transfer result once the transfer finished, and false while it is
// still running. Returns ErrNotStarted when no transfer was started.
func (p *Persistent) Test() (bool, error) {
	if p.done == nil {
		return false, ErrNotStarted
	}
	select {
	case err := <-p.done:
		p.done = nil
		return true, err
	default:
		return false, nil
	}
}
