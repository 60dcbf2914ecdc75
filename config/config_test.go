package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "memory", c.StorageDriver)
	assert.Equal(t, 1, c.DefaultUserID)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "https://api.openai.com/v1", c.OpenAIBaseURL)
	assert.Equal(t, "gpt-4o", c.OpenAIModel)
	assert.Equal(t, 60, c.OpenAITimeoutSec)
	assert.Equal(t, "info", c.LogLevel)
}

func TestApplyDefaultsKeepsExisting(t *testing.T) {
	c := AppConfig{AppPort: "9000", StorageDriver: "mysql", DefaultUserID: 5}
	applyDefaults(&c)

	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, "mysql", c.StorageDriver)
	assert.Equal(t, 5, c.DefaultUserID)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("STORAGE_DRIVER", "mysql")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("TLS_CERT_FILE", "/etc/sainte/tls.crt")
	t.Setenv("TLS_KEY_FILE", "/etc/sainte/tls.key")

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	assert.Equal(t, "9999", c.AppPort)
	assert.Equal(t, "mysql", c.StorageDriver)
	assert.Equal(t, "sk-test", c.OpenAIAPIKey)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.AllowedOrigins)
	assert.Equal(t, "/etc/sainte/tls.crt", c.TLSCertFile)
	assert.Equal(t, "/etc/sainte/tls.key", c.TLSKeyFile)
}
