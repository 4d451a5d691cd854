// Package tlsconfig builds mutual-TLS configurations for the gRPC surface.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// Files locates a PEM certificate, its private key and the CA that signs peers
type Files struct {
	Cert string
	Key  string
	CA   string
}

// Validate checks that every path is set
func (f Files) Validate() error {
	var missing []error
	if f.Cert == "" {
		missing = append(missing, errors.New("certificate path is empty"))
	}
	if f.Key == "" {
		missing = append(missing, errors.New("key path is empty"))
	}
	if f.CA == "" {
		missing = append(missing, errors.New("CA path is empty"))
	}
	return errors.Join(missing...)
}

// Server creates a tls.Config for a gRPC server requiring client certs (mTLS)
func (f Files) Server() (*tls.Config, error) {
	cert, pool, err := f.load()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// Client creates a tls.Config for a gRPC client that presents a cert (mTLS)
func (f Files) Client() (*tls.Config, error) {
	cert, pool, err := f.load()
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func (f Files) load() (tls.Certificate, *x509.CertPool, error) {
	if err := f.Validate(); err != nil {
		return tls.Certificate{}, nil, err
	}

	cert, err := tls.LoadX509KeyPair(f.Cert, f.Key)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("load key pair: %w", err)
	}

	caCert, err := os.ReadFile(f.CA)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("read CA cert: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return tls.Certificate{}, nil, fmt.Errorf("failed to parse CA certificate %s", f.CA)
	}
	return cert, pool, nil
}
