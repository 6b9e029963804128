package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the rock art backend. Values come from
// the environment, with a .env file loaded first when present. Secrets
// (JWT key, database credentials inside the DSN) must come from the
// environment only.
type Config struct {
	ServerHost string `env:"SERVER_HOST" env-default:":8080"`
	Env        string `env:"ENVIRONMENT" env-default:"local"`

	// DBDriver selects postgres (deployments) or sqlite (tests and
	// single-machine field laptops).
	DBDriver string `env:"DB_DRIVER" env-default:"postgres"`
	DBDSN    string `env:"DB_DSN" env-default:""`

	JWTSecret string `env:"JWT_SECRET" env-default:""`

	CORSOrigins []string `env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://127.0.0.1:5173"`

	// Seed creates the default users and vocabularies at startup.
	Seed bool `env:"SEED" env-default:"false"`
}

// Load reads the .env file if one exists, then the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; deployments set real environment variables
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
