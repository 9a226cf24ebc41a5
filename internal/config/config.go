package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	AMQPURL             string
	JWTSecret           string
	AllowedOrigins      []string
	DefaultInstallments int
	RateLimitPerMinute  int
	Mail                MailConfig
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", "http://localhost:5173")
	v.SetDefault("default_installments", 12)
	v.SetDefault("rate_limit_per_minute", 300)
	v.SetDefault("mail_port", 587)
	v.SetDefault("mail_from", "nao-responda@ligue.com.br")
	v.AutomaticEnv()

	for _, key := range []string{"database_url", "amqp_url", "auth_jwt_secret", "mail_host", "mail_user", "mail_pass"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Env:                 v.GetString("env"),
		Port:                v.GetString("port"),
		DatabaseURL:         v.GetString("database_url"),
		AMQPURL:             v.GetString("amqp_url"),
		JWTSecret:           v.GetString("auth_jwt_secret"),
		AllowedOrigins:      splitList(v.GetString("allowed_origins")),
		DefaultInstallments: v.GetInt("default_installments"),
		RateLimitPerMinute:  v.GetInt("rate_limit_per_minute"),
		Mail: MailConfig{
			Host:     v.GetString("mail_host"),
			Port:     v.GetInt("mail_port"),
			User:     v.GetString("mail_user"),
			Password: v.GetString("mail_pass"),
			From:     v.GetString("mail_from"),
		},
	}
	if cfg.DefaultInstallments < 1 {
		cfg.DefaultInstallments = 12
	}
	if cfg.RateLimitPerMinute < 1 {
		cfg.RateLimitPerMinute = 300
	}
	return cfg, nil
}

// Validate confere o que o comando serve precisa para subir.
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "AUTH_JWT_SECRET")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
