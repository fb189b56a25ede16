package quic

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"sync"
	"time"
)

// ALPN identifies the corrected-frame protocol during the handshake.
const ALPN = "rsfec/1"

var (
	linkCertOnce sync.Once
	linkCert     tls.Certificate
	linkCertErr  error
)

// linkCertificate returns the process-wide self-signed certificate,
// generating it on first use. Links are anonymous: the certificate only
// satisfies the QUIC requirement that the handshake carries one, and
// peers do not verify it against a CA.
func linkCertificate() (tls.Certificate, error) {
	linkCertOnce.Do(func() {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			linkCertErr = err
			return
		}
		serial, err := rand.Int(rand.Reader, big.NewInt(1<<62))
		if err != nil {
			linkCertErr = err
			return
		}
		now := time.Now()
		tpl := x509.Certificate{
			SerialNumber: serial,
			Subject:      pkix.Name{CommonName: "rsfec-link"},
			NotBefore:    now.Add(-time.Hour),
			NotAfter:     now.Add(24 * time.Hour),
			KeyUsage:     x509.KeyUsageDigitalSignature,
			ExtKeyUsage: []x509.ExtKeyUsage{
				x509.ExtKeyUsageServerAuth,
				x509.ExtKeyUsageClientAuth,
			},
			BasicConstraintsValid: true,
		}
		der, err := x509.CreateCertificate(rand.Reader, &tpl, &tpl, pub, priv)
		if err != nil {
			linkCertErr = err
			return
		}
		linkCert = tls.Certificate{
			Certificate: [][]byte{der},
			PrivateKey:  priv,
		}
	})
	return linkCert, linkCertErr
}

// newTLSConfig builds the config shared by listeners and dialers.
func newTLSConfig() (*tls.Config, error) {
	cert, err := linkCertificate()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates:       []tls.Certificate{cert},
		MinVersion:         tls.VersionTLS13,
		NextProtos:         []string{ALPN},
		InsecureSkipVerify: true,
	}, nil
}
