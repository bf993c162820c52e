package platform

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the backend. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	AccessSecret string `env:"ACCESS_SECRET,required"`

	// Base URL of the RAG service exposing /query and /upload.
	RagBaseURL string `env:"RAG_BASE_URL" envDefault:"http://127.0.0.1:8000"`

	SQLDriver   string `env:"SQL_DRIVER" envDefault:"mysql"`
	SQLHost     string `env:"SQL_HOST"`
	SQLPort     string `env:"SQL_PORT" envDefault:"3306"`
	SQLUser     string `env:"SQL_USER"`
	SQLPassword string `env:"SQL_PASSWORD"`
	SQLDBName   string `env:"SQL_DBNAME" envDefault:"docchat"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"docchat.db"`

	// Daily usage digest mail. Disabled unless SMTP_HOST is set.
	DigestCron   string `env:"DIGEST_CRON" envDefault:"0 8 * * *"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	DigestFrom   string `env:"DIGEST_FROM"`
	DigestTo     string `env:"DIGEST_TO"`
}

var Cfg Config

func InitConfig() error {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load(".env")

	if err := env.Parse(&Cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
