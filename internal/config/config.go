package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Prefix is the namespace for all environment variables read by Load.
const Prefix = "IRONIC_AIO_"

// Settings holds the immutable configuration snapshot for the service.
// Construct it with Load or LoadFile; never mutate it afterwards.
type Settings struct {
	ServiceName    string `yaml:"service_name"`
	ServiceVersion string `yaml:"service_version"`
	Debug          bool   `yaml:"debug"`

	IronicAPIURL     string `yaml:"ironic_api_url"`
	IronicAPIVersion string `yaml:"ironic_api_version"`

	HTTPPort       string        `yaml:"http_port"`
	BaseURL        string        `yaml:"base_url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ConnectRetries int           `yaml:"connect_retries"`

	A2ASecret string `yaml:"a2a_secret"`
}

// Load builds Settings from environment variables under Prefix,
// falling back to defaults for absent keys. Malformed typed values are
// a startup error, not a silent default.
func Load() (Settings, error) {
	s := defaults()
	if err := applyEnv(&s); err != nil {
		return Settings{}, err
	}
	finalize(&s)
	return s, nil
}

// LoadFile reads an optional YAML config file, then applies environment
// overrides on top. A missing file is not an error; a malformed one is.
func LoadFile(path string) (Settings, error) {
	s := defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// optional
	case err != nil:
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&s); err != nil {
		return Settings{}, err
	}
	finalize(&s)
	return s, nil
}

func defaults() Settings {
	return Settings{
		ServiceName:      "ironic-aio-api",
		ServiceVersion:   "0.1.0",
		Debug:            false,
		IronicAPIURL:     "http://localhost:6385",
		IronicAPIVersion: "1.82",
		HTTPPort:         "8000",
		ConnectTimeout:   5 * time.Second,
		ConnectRetries:   1,
	}
}

// applyEnv overlays IRONIC_AIO_* variables onto s.
func applyEnv(s *Settings) error {
	var err error
	s.ServiceName = env("SERVICE_NAME", s.ServiceName)
	s.ServiceVersion = env("SERVICE_VERSION", s.ServiceVersion)
	s.IronicAPIURL = env("IRONIC_API_URL", s.IronicAPIURL)
	s.IronicAPIVersion = env("IRONIC_API_VERSION", s.IronicAPIVersion)
	s.HTTPPort = env("HTTP_PORT", s.HTTPPort)
	s.BaseURL = env("BASE_URL", s.BaseURL)
	s.A2ASecret = env("A2A_SECRET", s.A2ASecret)

	if s.Debug, err = envBool("DEBUG", s.Debug); err != nil {
		return err
	}
	if s.ConnectTimeout, err = envDuration("CONNECT_TIMEOUT", s.ConnectTimeout); err != nil {
		return err
	}
	if s.ConnectRetries, err = envInt("CONNECT_RETRIES", s.ConnectRetries); err != nil {
		return err
	}
	return nil
}

func finalize(s *Settings) {
	if s.BaseURL == "" {
		s.BaseURL = "http://localhost:" + s.HTTPPort
	}
}

func env(key, def string) string {
	if v := os.Getenv(Prefix + key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(Prefix + key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s%s: invalid bool %q", Prefix, key, v)
	}
	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(Prefix + key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s%s: invalid int %q", Prefix, key, v)
	}
	return n, nil
}

// envDuration accepts Go duration strings ("5s", "1m30s").
func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(Prefix + key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s%s: invalid duration %q", Prefix, key, v)
	}
	return d, nil
}
