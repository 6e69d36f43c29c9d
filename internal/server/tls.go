// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"codeberg.org/oliverandrich/bootblog/internal/config"
	"golang.org/x/crypto/acme/autocert"
)

var (
	errACMEEmail   = errors.New("acme TLS mode requires tls-email")
	errManualFiles = errors.New("manual TLS mode requires tls-cert-file and tls-key-file")
)

// TLSResult contains the resolved TLS configuration.
type TLSResult struct {
	TLSConfig   *tls.Config
	HTTPHandler http.Handler // challenge and redirect handler, acme only
	Mode        string
}

// SetupTLS prepares TLS for the mode resolved from cfg.
func SetupTLS(cfg *config.Config) (*TLSResult, error) {
	mode := cfg.TLS.Resolve(cfg.Server.Host)

	switch mode {
	case config.TLSModeOff:
		slog.Info("TLS disabled")
		return &TLSResult{Mode: config.TLSModeOff}, nil
	case config.TLSModeACME:
		return setupACME(cfg)
	case config.TLSModeManual:
		return setupManual(cfg)
	default:
		return nil, fmt.Errorf("unknown TLS mode %q", mode)
	}
}

// setupACME configures Let's Encrypt certificates through autocert.
func setupACME(cfg *config.Config) (*TLSResult, error) {
	if cfg.TLS.Email == "" {
		return nil, errACMEEmail
	}
	if cfg.Server.Port != 443 {
		slog.Warn("acme mode listens on :443, configured port is ignored", "port", cfg.Server.Port)
	}

	certDir := filepath.Join(cfg.TLS.CertDir, "acme")
	if err := os.MkdirAll(certDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create ACME cert directory: %w", err)
	}

	manager := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Email:      cfg.TLS.Email,
		Cache:      autocert.DirCache(certDir),
		HostPolicy: autocert.HostWhitelist(cfg.Server.Host),
	}

	tlsConfig := manager.TLSConfig()
	tlsConfig.MinVersion = tls.VersionTLS12

	slog.Info("TLS mode: acme", "host", cfg.Server.Host, "email", cfg.TLS.Email)

	return &TLSResult{
		Mode:        config.TLSModeACME,
		TLSConfig:   tlsConfig,
		HTTPHandler: manager.HTTPHandler(nil),
	}, nil
}

// setupManual loads a user-provided certificate pair.
func setupManual(cfg *config.Config) (*TLSResult, error) {
	certFile, keyFile := cfg.TLS.CertFile, cfg.TLS.KeyFile
	if certFile == "" || keyFile == "" {
		return nil, errManualFiles
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}

	slog.Info("TLS mode: manual",
		"cert", certFile,
		"sha256", fingerprint(&cert),
	)

	return &TLSResult{
		Mode: config.TLSModeManual,
		TLSConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
	}, nil
}

// fingerprint returns the hex SHA-256 of the leaf certificate.
func fingerprint(cert *tls.Certificate) string {
	if len(cert.Certificate) == 0 {
		return ""
	}
	sum := sha256.Sum256(cert.Certificate[0])
	return hex.EncodeToString(sum[:])
}
