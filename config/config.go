// Package config loads tradegate configuration from YAML.
//
// The gate itself needs only one environment variable; this package exists
// for deployments that want the env var name, credential key, telemetry
// settings, and fail-closed policy in one reviewable file. Secret values
// support strict ${ENV} expansion and secretref resolution, so the file
// never holds secret material directly.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marketops/tradegate/gate"
	"github.com/marketops/tradegate/observe"
	"github.com/marketops/tradegate/secret"
)

// ErrSecretRequired indicates require_secret is set but no secret resolved.
var ErrSecretRequired = errors.New("config: gate secret is required but not configured")

// Config is the top-level configuration document.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Gate      GateConfig      `yaml:"gate"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServiceConfig identifies the service for telemetry.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// GateConfig configures the credential gate.
type GateConfig struct {
	// EnvVar is the environment variable read at call time when no inline
	// secret is configured. Default: gate.DefaultEnvVar.
	EnvVar string `yaml:"env_var"`

	// Secret optionally configures the secret inline. Supports strict
	// ${ENV} expansion and secretref:<provider>:<ref> resolution; the
	// resolved value is fixed for the process lifetime.
	Secret string `yaml:"secret"`

	// SecretProviders names the providers, drawn from
	// secret.DefaultRegistry, available for resolving Secret references.
	// Default: [env].
	SecretProviders []string `yaml:"secret_providers"`

	// CredentialKey is the reserved argument key carrying the credential.
	// Default: gate.DefaultCredentialKey.
	CredentialKey string `yaml:"credential_key"`

	// RequireSecret fails closed at load time when no secret is
	// configured, instead of running in open mode. Opt-in: the default
	// open-mode behavior is unchanged.
	RequireSecret bool `yaml:"require_secret"`

	// resolvedSecret is the secret after reference resolution.
	resolvedSecret string
}

// TelemetryConfig configures the observe package.
type TelemetryConfig struct {
	Tracing TracingConfig `yaml:"tracing"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// TracingConfig mirrors observe.TracingConfig.
type TracingConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Exporter  string  `yaml:"exporter"`
	SamplePct float64 `yaml:"sample_pct"`
}

// MetricsConfig mirrors observe.MetricsConfig.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
}

// LoggingConfig mirrors observe.LoggingConfig.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
}

// Load reads, parses, and resolves the configuration file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(ctx, data)
}

// Parse parses and resolves a configuration document.
func Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.resolve(ctx); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve applies defaults and resolves the configured secret.
func (c *Config) resolve(ctx context.Context) error {
	if c.Service.Name == "" {
		c.Service.Name = "tradegate"
	}
	if c.Gate.EnvVar == "" {
		c.Gate.EnvVar = gate.DefaultEnvVar
	}
	if c.Gate.CredentialKey == "" {
		c.Gate.CredentialKey = gate.DefaultCredentialKey
	}
	if len(c.Gate.SecretProviders) == 0 {
		c.Gate.SecretProviders = []string{"env"}
	}

	if c.Gate.Secret != "" {
		resolver, err := secret.DefaultRegistry.Resolver(true, c.Gate.SecretProviders...)
		if err != nil {
			return fmt.Errorf("config: gate secret providers: %w", err)
		}
		resolved, err := resolver.ResolveValue(ctx, c.Gate.Secret)
		if err != nil {
			return fmt.Errorf("config: resolve gate secret: %w", err)
		}
		c.Gate.resolvedSecret = resolved
	}

	if c.Gate.RequireSecret && c.Gate.resolvedSecret == "" && os.Getenv(c.Gate.EnvVar) == "" {
		return ErrSecretRequired
	}
	return nil
}

// SecretSource returns the secret source the resolved configuration
// describes: a static source when a secret was configured inline, else an
// env source read at call time.
func (c *Config) SecretSource() gate.SecretSource {
	if c.Gate.resolvedSecret != "" {
		return gate.StaticSource(c.Gate.resolvedSecret)
	}
	return gate.EnvSource{Name: c.Gate.EnvVar}
}

// Validator builds the gate validator for this configuration.
func (c *Config) Validator() *gate.Validator {
	return gate.NewValidator(c.SecretSource())
}

// Middleware builds the gate enforcement middleware for this configuration.
func (c *Config) Middleware() *gate.Middleware {
	return gate.NewMiddleware(c.Validator(), gate.WithCredentialKey(c.Gate.CredentialKey))
}

// ObserveConfig maps the telemetry section onto observe.Config.
func (c *Config) ObserveConfig() observe.Config {
	return observe.Config{
		ServiceName: c.Service.Name,
		Version:     c.Service.Version,
		Tracing: observe.TracingConfig{
			Enabled:   c.Telemetry.Tracing.Enabled,
			Exporter:  c.Telemetry.Tracing.Exporter,
			SamplePct: c.Telemetry.Tracing.SamplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  c.Telemetry.Metrics.Enabled,
			Exporter: c.Telemetry.Metrics.Exporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: c.Telemetry.Logging.Enabled,
			Level:   c.Telemetry.Logging.Level,
		},
	}
}
