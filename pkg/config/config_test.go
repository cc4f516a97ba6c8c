package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:          EnvProduction,
		LogLevel:             "info",
		SessionAuthKey:       strings.Repeat("a", 32),
		SessionEncryptionKey: strings.Repeat("b", 32),
		MailDriver:           MailDriverSES,
		MailSender:           "pedidos@example.com",
		DeliveryDays:         3,
	}
}

func TestValidateForProduction_NonProductionSkipped(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug", MailDriver: MailDriverLog}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development config, got %v", err)
	}
}

func TestValidateForProduction_Valid(t *testing.T) {
	if err := ValidateForProduction(productionConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateForProduction_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"short auth key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"short encryption key", func(c *Config) { c.SessionEncryptionKey = "short" }, "SESSION_ENCRYPTION_KEY"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"log mail driver", func(c *Config) { c.MailDriver = MailDriverLog }, "MAIL_DRIVER=log"},
		{"ses without sender", func(c *Config) { c.MailSender = "" }, "MAIL_SENDER"},
		{"negative delivery days", func(c *Config) { c.DeliveryDays = -1 }, "DELIVERY_DAYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in error, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
