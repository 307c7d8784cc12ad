package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ServiceName != "ironic-aio-api" {
		t.Errorf("ServiceName = %q", s.ServiceName)
	}
	if s.ServiceVersion != "0.1.0" {
		t.Errorf("ServiceVersion = %q", s.ServiceVersion)
	}
	if s.Debug {
		t.Error("Debug should default to false")
	}
	if s.IronicAPIURL != "http://localhost:6385" {
		t.Errorf("IronicAPIURL = %q", s.IronicAPIURL)
	}
	if s.IronicAPIVersion != "1.82" {
		t.Errorf("IronicAPIVersion = %q", s.IronicAPIVersion)
	}
	if s.ConnectTimeout != 5*time.Second {
		t.Errorf("ConnectTimeout = %v", s.ConnectTimeout)
	}
	if s.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("IRONIC_AIO_SERVICE_VERSION", "1.2.3")
	t.Setenv("IRONIC_AIO_IRONIC_API_URL", "http://ironic.example:6385")
	t.Setenv("IRONIC_AIO_IRONIC_API_VERSION", "1.90")
	t.Setenv("IRONIC_AIO_DEBUG", "true")
	t.Setenv("IRONIC_AIO_CONNECT_TIMEOUT", "500ms")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ServiceVersion != "1.2.3" {
		t.Errorf("ServiceVersion = %q", s.ServiceVersion)
	}
	if s.IronicAPIURL != "http://ironic.example:6385" {
		t.Errorf("IronicAPIURL = %q", s.IronicAPIURL)
	}
	if s.IronicAPIVersion != "1.90" {
		t.Errorf("IronicAPIVersion = %q", s.IronicAPIVersion)
	}
	if !s.Debug {
		t.Error("Debug should be true")
	}
	if s.ConnectTimeout != 500*time.Millisecond {
		t.Errorf("ConnectTimeout = %v", s.ConnectTimeout)
	}
}

func TestLoadMalformedValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad bool", "IRONIC_AIO_DEBUG", "yes-please"},
		{"bad duration", "IRONIC_AIO_CONNECT_TIMEOUT", "soon"},
		{"bad int", "IRONIC_AIO_CONNECT_RETRIES", "two"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load should fail with %s=%q", c.key, c.value)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := "service_version: 2.0.0\nironic_api_url: http://file.example:6385\nhttp_port: \"9000\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Run("file values applied", func(t *testing.T) {
		s, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if s.ServiceVersion != "2.0.0" {
			t.Errorf("ServiceVersion = %q", s.ServiceVersion)
		}
		if s.IronicAPIURL != "http://file.example:6385" {
			t.Errorf("IronicAPIURL = %q", s.IronicAPIURL)
		}
		if s.BaseURL != "http://localhost:9000" {
			t.Errorf("BaseURL = %q", s.BaseURL)
		}
		// untouched keys keep defaults
		if s.IronicAPIVersion != "1.82" {
			t.Errorf("IronicAPIVersion = %q", s.IronicAPIVersion)
		}
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("IRONIC_AIO_SERVICE_VERSION", "3.0.0")
		s, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if s.ServiceVersion != "3.0.0" {
			t.Errorf("ServiceVersion = %q, env should override file", s.ServiceVersion)
		}
	})

	t.Run("missing file is fine", func(t *testing.T) {
		s, err := LoadFile(filepath.Join(dir, "nope.yml"))
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if s.ServiceName != "ironic-aio-api" {
			t.Errorf("ServiceName = %q", s.ServiceName)
		}
	})

	t.Run("malformed file fails", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yml")
		if err := os.WriteFile(bad, []byte("{not yaml"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadFile(bad); err == nil {
			t.Error("LoadFile should fail on malformed yaml")
		}
	})
}
