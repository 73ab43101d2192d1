package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort          = 8080
	defaultDatabase      = "recipeblog"
	defaultPublicDir     = "public"
	defaultSMTPPort      = 587
	defaultSessionSecret = "CookingBlogSecretSession"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         int
	MongoURI     string
	Database     string
	SessionKey   string
	CookieSecure bool
	PublicDir    string
	UploadDir    string
	LogLevel     string
	SMTP         SMTPConfig
}

// SMTPConfig is only used when Host is set.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// Load reads the configuration from environment variables. cmd/api loads a
// .env file into the environment first.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       defaultPort,
		MongoURI:   os.Getenv("MONGO_URI"),
		Database:   getEnv("MONGO_DATABASE", defaultDatabase),
		SessionKey: getEnv("SESSION_KEY", defaultSessionSecret),
		PublicDir:  getEnv("PUBLIC_DIR", defaultPublicDir),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     defaultSMTPPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}
	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.PublicDir+"/uploads")

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable not set")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if smtpPort := os.Getenv("SMTP_PORT"); smtpPort != "" {
		port, err := strconv.Atoi(smtpPort)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", smtpPort, err)
		}
		cfg.SMTP.Port = port
	}
	if secure := os.Getenv("COOKIE_SECURE"); secure != "" {
		v, err := strconv.ParseBool(secure)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE %q: %w", secure, err)
		}
		cfg.CookieSecure = v
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
