package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie (default: "sid").
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// Lifetime is how long a session stays valid after creation.
	Lifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"720h"`

	// CleanupInterval for expired sessions in the memory store (0 to disable).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		Lifetime:        30 * 24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
		SecureCookies:   false,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// A cookie manager (or custom transport) must be supplied via options.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
