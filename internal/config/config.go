// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	"fmt"
	"net"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var configFile = altsrc.StringSourcer("config.toml")

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	Server    ServerConfig
	Log       LogConfig
	TLS       TLSConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct { //nolint:govet // fieldalignment not critical for config structs
	Host        string
	Port        int
	BaseURL     string
	MaxBodySize int // in MB
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type TLSConfig struct {
	Mode     string // auto, acme, manual, off
	CertDir  string // ACME certificate cache
	Email    string // ACME email for Let's Encrypt
	CertFile string // Path to certificate file (manual mode)
	KeyFile  string // Path to private key file (manual mode)
}

type TelemetryConfig struct {
	Endpoint    string // OTLP/HTTP endpoint URL, tracing is off when empty
	ServiceName string
}

func NewFromCLI(cmd *cli.Command) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:        cmd.String("host"),
			Port:        int(cmd.Int("port")),
			BaseURL:     cmd.String("base-url"),
			MaxBodySize: int(cmd.Int("max-body-size")),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		TLS: TLSConfig{
			Mode:     cmd.String("tls-mode"),
			CertDir:  cmd.String("tls-cert-dir"),
			Email:    cmd.String("tls-email"),
			CertFile: cmd.String("tls-cert-file"),
			KeyFile:  cmd.String("tls-key-file"),
		},
		Telemetry: TelemetryConfig{
			Endpoint:    cmd.String("otel-endpoint"),
			ServiceName: cmd.String("otel-service-name"),
		},
	}

	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = buildBaseURL(cfg)
	}

	return cfg
}

func buildBaseURL(cfg *Config) string {
	host := cfg.Server.Host
	port := cfg.Server.Port

	switch cfg.TLS.Resolve(host) {
	case TLSModeACME:
		// ACME mode always uses port 443
		return fmt.Sprintf("https://%s", host)
	case TLSModeManual:
		if port == 443 {
			return fmt.Sprintf("https://%s", host)
		}
		return fmt.Sprintf("https://%s:%d", host, port)
	default:
		if port == 80 {
			return fmt.Sprintf("http://%s", host)
		}
		return fmt.Sprintf("http://%s:%d", host, port)
	}
}

// Resolved TLS modes.
const (
	TLSModeOff    = "off"
	TLSModeManual = "manual"
	TLSModeACME   = "acme"
)

// Resolve returns the effective TLS mode for host. In auto mode, localhost
// is served without TLS, certificate files select manual mode and a
// configured email on a public hostname selects ACME.
func (t TLSConfig) Resolve(host string) string {
	switch strings.ToLower(t.Mode) {
	case TLSModeOff:
		return TLSModeOff
	case TLSModeManual:
		return TLSModeManual
	case TLSModeACME:
		return TLSModeACME
	}

	if IsLocalhost(host) {
		return TLSModeOff
	}
	if t.CertFile != "" && t.KeyFile != "" {
		return TLSModeManual
	}
	if t.Email != "" && net.ParseIP(host) == nil {
		return TLSModeACME
	}
	return TLSModeOff
}

// IsLocalhost checks if the host is a localhost address.
func IsLocalhost(host string) bool {
	switch host {
	case "", "localhost", "127.0.0.1", "::1":
		return true
	}
	// Check for *.localhost subdomains (e.g., app.localhost)
	return strings.HasSuffix(host, ".localhost")
}

func source(env, key string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(cli.EnvVar(env), toml.TOML(key, configFile))
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind to",
			Sources: source("HOST", "server.host"),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "Port to listen on",
			Sources: source("PORT", "server.port"),
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Base URL for the application",
			Sources: source("BASE_URL", "server.base_url"),
		},
		&cli.IntFlag{
			Name:    "max-body-size",
			Value:   1,
			Usage:   "Maximum request body size in MB",
			Sources: source("MAX_BODY_SIZE", "server.max_body_size"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: source("LOG_LEVEL", "log.level"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format (text, json)",
			Sources: source("LOG_FORMAT", "log.format"),
		},
		&cli.StringFlag{
			Name:    "tls-mode",
			Value:   "auto",
			Usage:   "TLS mode (auto, acme, manual, off)",
			Sources: source("TLS_MODE", "tls.mode"),
		},
		&cli.StringFlag{
			Name:    "tls-cert-dir",
			Value:   "./data/certs",
			Usage:   "Directory for ACME certificates",
			Sources: source("TLS_CERT_DIR", "tls.cert_dir"),
		},
		&cli.StringFlag{
			Name:    "tls-email",
			Usage:   "Email for ACME/Let's Encrypt registration",
			Sources: source("TLS_EMAIL", "tls.email"),
		},
		&cli.StringFlag{
			Name:    "tls-cert-file",
			Usage:   "Path to TLS certificate file (manual mode)",
			Sources: source("TLS_CERT_FILE", "tls.cert_file"),
		},
		&cli.StringFlag{
			Name:    "tls-key-file",
			Usage:   "Path to TLS private key file (manual mode)",
			Sources: source("TLS_KEY_FILE", "tls.key_file"),
		},
		&cli.StringFlag{
			Name:    "otel-endpoint",
			Usage:   "OTLP/HTTP endpoint for traces (disabled when empty)",
			Sources: source("OTEL_ENDPOINT", "telemetry.endpoint"),
		},
		&cli.StringFlag{
			Name:    "otel-service-name",
			Value:   "bootblog",
			Usage:   "Service name reported with traces",
			Sources: source("OTEL_SERVICE_NAME", "telemetry.service_name"),
		},
	}
}
