package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing database name", func(c *Config) { c.DBName = "" }, true},
		{"Production with default password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"Production with empty password", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = ""
		}, true},
		{"Production with strong password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "very-strong-password"
			c.DBSSLMode = "require"
		}, false},
		{"Sampler ratio above one", func(c *Config) { c.TracingRatio = 1.5 }, true},
		{"Sampler ratio negative", func(c *Config) { c.TracingRatio = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:         "4000",
				DBHost:       "localhost",
				DBPort:       "5432",
				DBUser:       "user",
				DBPassword:   "password",
				DBName:       "tuiter",
				DBSSLMode:    "disable",
				RedisURL:     "localhost:6379",
				Env:          "development",
				TracingRatio: 1.0,
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
