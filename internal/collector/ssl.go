package collector

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"syscall"
	"time"
)

// SSLCollector performs a best-effort TLS handshake on port 443 and reports
// certificate validity and self-signing.
type SSLCollector struct {
	timeout time.Duration
}

// NewSSLCollector creates an SSL collector with the given handshake timeout.
func NewSSLCollector(timeout time.Duration) *SSLCollector {
	return &SSLCollector{timeout: timeout}
}

// Collect dials the domain on 443. A verification failure is a signal, not a
// collection error: only connectivity-level failures (timeout, refusal,
// unresolvable host) land in the "SSL:" error category.
func (s *SSLCollector) Collect(domainName string) (sslValid, isSelfSigned bool, errs []string) {
	dialer := &net.Dialer{Timeout: s.timeout}

	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(domainName, "443"), &tls.Config{
		ServerName: domainName,
	})
	if err == nil {
		defer conn.Close()
		sslValid = true
		if leaf := leafCertificate(conn); leaf != nil {
			isSelfSigned = bytes.Equal(leaf.RawIssuer, leaf.RawSubject)
		}
		return sslValid, isSelfSigned, nil
	}

	if isVerificationError(err) {
		// The handshake happened, the chain just did not verify. Retry
		// without verification to see whether the cert is self-signed.
		return false, s.checkSelfSignedUnverified(domainName, dialer), nil
	}

	var netErr net.Error
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		errs = append(errs, "SSL: connection timeout")
	case errors.Is(err, syscall.ECONNREFUSED):
		errs = append(errs, "SSL: connection refused (no HTTPS)")
	case errors.As(err, &dnsErr):
		errs = append(errs, "SSL: DNS resolution failed")
	default:
		errs = append(errs, "SSL: "+err.Error())
	}

	return false, false, errs
}

func (s *SSLCollector) checkSelfSignedUnverified(domainName string, dialer *net.Dialer) bool {
	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(domainName, "443"), &tls.Config{
		ServerName:         domainName,
		InsecureSkipVerify: true,
	})
	if err != nil {
		return false
	}
	defer conn.Close()

	leaf := leafCertificate(conn)
	return leaf != nil && bytes.Equal(leaf.RawIssuer, leaf.RawSubject)
}

func leafCertificate(conn *tls.Conn) *x509.Certificate {
	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return nil
	}
	return certs[0]
}

func isVerificationError(err error) bool {
	var unknownAuthority x509.UnknownAuthorityError
	var invalid x509.CertificateInvalidError
	var hostname x509.HostnameError
	var verification *tls.CertificateVerificationError
	return errors.As(err, &unknownAuthority) ||
		errors.As(err, &invalid) ||
		errors.As(err, &hostname) ||
		errors.As(err, &verification)
}
