// Package quic moves error-corrected protocol frames over QUIC
// datagrams. Datagrams are unreliable by design; the Reed-Solomon
// parity inside each frame lets a receiver repair symbol corruption
// without a retransmit round trip.
package quic

import (
	"context"
	"net"

	q "github.com/quic-go/quic-go"

	"github.com/laroxyss/rsfec/rsfec/protocol"
)

type Listener struct {
	inner *q.Listener
}

func Listen(addr string) (*Listener, error) {
	tlsConf, err := newTLSConfig()
	if err != nil {
		return nil, err
	}
	ln, err := q.ListenAddr(addr, tlsConf, &q.Config{EnableDatagrams: true})
	if err != nil {
		return nil, err
	}
	return &Listener{inner: ln}, nil
}

// Accept waits for an incoming connection and wraps it as a Link using
// controlCount parity symbols per codeword block.
func (l *Listener) Accept(ctx context.Context, controlCount int) (*Link, error) {
	conn, err := l.inner.Accept(ctx)
	if err != nil {
		return nil, err
	}
	return &Link{conn: conn, controlCount: controlCount}, nil
}

func (l *Listener) Addr() net.Addr { return l.inner.Addr() }

func (l *Listener) AddrString() string {
	if l.inner == nil {
		return ""
	}
	return l.inner.Addr().String()
}

func (l *Listener) Close() error { return l.inner.Close() }

// Dial connects to addr and wraps the connection as a Link using
// controlCount parity symbols per codeword block.
func Dial(ctx context.Context, addr string, controlCount int) (*Link, error) {
	tlsConf, err := newTLSConfig()
	if err != nil {
		return nil, err
	}
	conn, err := q.DialAddr(ctx, addr, tlsConf, &q.Config{EnableDatagrams: true})
	if err != nil {
		return nil, err
	}
	return &Link{conn: conn, controlCount: controlCount}, nil
}

// Link is a QUIC connection that exchanges protocol frames as
// datagrams, each protected by Reed-Solomon parity.
type Link struct {
	conn         q.Connection
	controlCount int
}

// SendFrame encodes f with the link's parity level and sends it as a
// single datagram.
func (l *Link) SendFrame(f protocol.Frame) error {
	buf, err := protocol.EncodeFrame(f, l.controlCount)
	if err != nil {
		return err
	}
	return l.conn.SendDatagram(buf)
}

// ReceiveFrame blocks for the next datagram and decodes it, repairing
// body corruption up to the code's capacity.
func (l *Link) ReceiveFrame(ctx context.Context) (protocol.Frame, error) {
	buf, err := l.conn.ReceiveDatagram(ctx)
	if err != nil {
		return protocol.Frame{}, err
	}
	return protocol.DecodeFrame(buf)
}

func (l *Link) RemoteAddr() net.Addr { return l.conn.RemoteAddr() }

func (l *Link) Close() error {
	return l.conn.CloseWithError(0, "closed")
}
