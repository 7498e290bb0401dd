package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tago-io/tagotip-go/secure"
)

// Config holds the settings a long-running TagoTiP/S endpoint needs: which
// cipher suite to seal with, where its symmetric key lives, and how it
// logs and exposes metrics.
type Config struct {
	// CipherSuite is the suite name used by default when sealing
	// outbound envelopes (see secure.CipherSuite for the accepted
	// values: aes-128-ccm, aes-128-gcm, aes-256-ccm, aes-256-gcm,
	// chacha20-poly1305).
	CipherSuite string `yaml:"cipher_suite"`

	// KeyHex is the hex-encoded symmetric key. In production this
	// should be supplied via ${TAGOTIP_KEY_HEX} rather than committed
	// to a config file.
	KeyHex string `yaml:"key_hex"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `yaml:"log_level"`

	// MetricsEnabled turns on the Prometheus exporter.
	MetricsEnabled bool `yaml:"metrics_enabled"`

	// MetricsAddr is the listen address for the metrics HTTP endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// MaxFrameSize overrides codec.MaxFrameSize for this deployment's
	// acceptance checks, if smaller.
	MaxFrameSize int `yaml:"max_frame_size"`
}

// setDefaults fills in zero-valued fields with sane defaults.
func (c *Config) setDefaults() {
	if c.CipherSuite == "" {
		c.CipherSuite = "aes-128-gcm"
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = ":9090"
	}
	if c.MaxFrameSize == 0 {
		c.MaxFrameSize = 16384
	}
}

// Validate reports whether c is internally consistent: a known cipher
// suite name and, when set, a key of the length that suite requires.
func (c *Config) Validate() error {
	suite, err := cipherSuiteByName(c.CipherSuite)
	if err != nil {
		return err
	}
	if c.KeyHex != "" && len(c.KeyHex) != suite.KeySize()*2 {
		return fmt.Errorf("key_hex length %d does not match %s's %d-byte key", len(c.KeyHex), c.CipherSuite, suite.KeySize())
	}
	return nil
}

func cipherSuiteByName(name string) (secure.CipherSuite, error) {
	switch name {
	case "aes-128-ccm":
		return secure.AES128CCM, nil
	case "aes-128-gcm":
		return secure.AES128GCM, nil
	case "aes-256-ccm":
		return secure.AES256CCM, nil
	case "aes-256-gcm":
		return secure.AES256GCM, nil
	case "chacha20-poly1305":
		return secure.ChaCha20Poly1305, nil
	default:
		return 0, fmt.Errorf("unknown cipher suite: %s", name)
	}
}

// LoadFromFile reads a YAML config file from path, applies environment
// variable substitution, fills in defaults, and validates the result.
func LoadFromFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := expandEnv(string(raw))

	var c Config
	if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// SaveToFile writes c to path as YAML.
func SaveToFile(c *Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
