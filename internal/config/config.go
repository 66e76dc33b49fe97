// Package config loads the YAML configuration shared by the cvpdf commands.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied after loading.
const (
	DefaultOutput = "hoja_vida.pdf"
	DefaultPort   = 8080
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"omitempty,min=1,max=65535"`
	Username string `yaml:"user"`
	Password string `yaml:"pass"`
}

type EmailConfig struct {
	From string `yaml:"from" validate:"omitempty,email"`
	To   string `yaml:"to" validate:"omitempty,email"`
}

// SourceConfig selects where résumé data comes from. DatabaseURL wins over
// File when both are set.
type SourceConfig struct {
	File        string `yaml:"file" validate:"required_without=DatabaseURL"`
	DatabaseURL string `yaml:"database_url" validate:"omitempty,url"`
	MediaRoot   string `yaml:"media_root"`
}

type RenderConfig struct {
	Sections []string `yaml:"sections"`
	Output   string   `yaml:"output" validate:"required"`
}

type ServerConfig struct {
	Port int `yaml:"port" validate:"min=1,max=65535"`
}

type Config struct {
	SMTP   SMTPConfig   `yaml:"smtp"`
	Email  EmailConfig  `yaml:"email"`
	Source SourceConfig `yaml:"source"`
	Render RenderConfig `yaml:"render"`
	Server ServerConfig `yaml:"server"`
}

// Load reads the YAML file at path, applies environment overrides and
// defaults, and validates the result. DATABASE_URL and SMTP_PASS replace the
// file's values when set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Source.DatabaseURL = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.SMTP.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.Render.Output == "" {
		c.Render.Output = DefaultOutput
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// MailReady reports whether the SMTP and email settings are complete enough
// to send a message.
func (c *Config) MailReady() error {
	checks := []struct {
		field string
		value any
		tag   string
	}{
		{"smtp.host", c.SMTP.Host, "required"},
		{"smtp.port", c.SMTP.Port, "required,min=1,max=65535"},
		{"email.from", c.Email.From, "required,email"},
		{"email.to", c.Email.To, "required,email"},
	}

	v := validator.New()
	for _, chk := range checks {
		if err := v.Var(chk.value, chk.tag); err != nil {
			return fmt.Errorf("mail not configured: %s: %w", chk.field, err)
		}
	}
	return nil
}
