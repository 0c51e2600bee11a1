package cybersource

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		MerchantID:  "test_merchant_123",
		KeyID:       "test-api-key-uuid",
		SecretKey:   "dGVzdC1zaGFyZWQtc2VjcmV0",
		Environment: EnvironmentSandbox,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   bool
		wantField string
	}{
		{"valid", func(c *Config) {}, false, ""},
		{"defaults applied", func(c *Config) { c.Environment = ""; c.AuthType = "" }, false, ""},
		{"missing merchant id", func(c *Config) { c.MerchantID = "" }, true, "MerchantID"},
		{"missing key id", func(c *Config) { c.KeyID = "" }, true, "KeyID"},
		{"missing secret", func(c *Config) { c.SecretKey = "" }, true, "SecretKey"},
		{"jwt without key", func(c *Config) { c.AuthType = AuthTypeJWT }, true, "PrivateKeyPEM"},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, true, ""},
		{"unknown auth type", func(c *Config) { c.AuthType = "oauth" }, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantField != "" {
					if !errors.Is(err, ErrMissingCredential) {
						t.Errorf("expected ErrMissingCredential, got %v", err)
					}
					if !strings.Contains(err.Error(), tt.wantField) {
						t.Errorf("error %q does not name field %q", err, tt.wantField)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Host(t *testing.T) {
	tests := []struct {
		env  Environment
		want string
	}{
		{EnvironmentSandbox, "apitest.cybersource.com"},
		{EnvironmentProduction, "api.cybersource.com"},
		{"", "apitest.cybersource.com"}, // sandbox default
	}

	for _, tt := range tests {
		cfg := validConfig()
		cfg.Environment = tt.env
		host, err := cfg.Host()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.env, err)
		}
		if host != tt.want {
			t.Errorf("Host() for %q = %q, want %q", tt.env, host, tt.want)
		}
	}
}

func TestConfig_HTTPTimeout(t *testing.T) {
	cfg := validConfig()
	if got := cfg.HTTPTimeout(); got != DefaultTimeout {
		t.Errorf("default timeout = %v, want %v", got, DefaultTimeout)
	}

	cfg.Timeout = 5 * time.Second
	if got := cfg.HTTPTimeout(); got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got)
	}
}

func TestLookupEnvironment_Unknown(t *testing.T) {
	if _, err := LookupEnvironment("qa"); err == nil {
		t.Fatal("expected error for unknown environment, got nil")
	}
}
