package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported data backends for the detalhes_pedido view.
const (
	BackendPostgREST = "postgrest"
	BackendSQLite    = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Dados       DadosConfig
	Supabase    SupabaseConfig
	Email       EmailConfig
}

// DadosConfig holds data-access configuration
type DadosConfig struct {
	Backend          string
	ConnectionString string
	MigrationsPath   string
	TimeoutConsulta  time.Duration
}

// SupabaseConfig holds the PostgREST endpoint configuration
type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// EmailConfig holds the email-provider configuration.
// The API key is a reserved slot: unless EMAIL_ENVIO_ATIVO is set the
// service only logs what it would send.
type EmailConfig struct {
	ResendAPIKey string
	Remetente    string
	EnvioAtivo   bool
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8082")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DATA_BACKEND", BackendPostgREST)
	viper.SetDefault("DB_CONNECTION_STRING", "./data/pedidos.db")
	viper.SetDefault("MIGRATIONS_PATH", "./migrations")
	viper.SetDefault("CONSULTA_TIMEOUT_SECONDS", 10)
	viper.SetDefault("EMAIL_REMETENTE", "pedidos@loja.example.com")
	viper.SetDefault("EMAIL_ENVIO_ATIVO", false)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Dados: DadosConfig{
			Backend:          viper.GetString("DATA_BACKEND"),
			ConnectionString: viper.GetString("DB_CONNECTION_STRING"),
			MigrationsPath:   viper.GetString("MIGRATIONS_PATH"),
			TimeoutConsulta:  time.Duration(viper.GetInt("CONSULTA_TIMEOUT_SECONDS")) * time.Second,
		},
		Supabase: SupabaseConfig{
			URL:     viper.GetString("SUPABASE_URL"),
			AnonKey: viper.GetString("SUPABASE_ANON_KEY"),
		},
		Email: EmailConfig{
			ResendAPIKey: viper.GetString("RESEND_API_KEY"),
			Remetente:    viper.GetString("EMAIL_REMETENTE"),
			EnvioAtivo:   viper.GetBool("EMAIL_ENVIO_ATIVO"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is complete for the selected
// backend. Missing values fail startup instead of degrading into blank
// defaults.
func (c *Config) Validate() error {
	switch c.Dados.Backend {
	case BackendPostgREST:
		if c.Supabase.URL == "" {
			return fmt.Errorf("SUPABASE_URL é obrigatória quando DATA_BACKEND=%s", BackendPostgREST)
		}
		if c.Supabase.AnonKey == "" {
			return fmt.Errorf("SUPABASE_ANON_KEY é obrigatória quando DATA_BACKEND=%s", BackendPostgREST)
		}
	case BackendSQLite:
		if c.Dados.ConnectionString == "" {
			return fmt.Errorf("DB_CONNECTION_STRING é obrigatória quando DATA_BACKEND=%s", BackendSQLite)
		}
	default:
		return fmt.Errorf("DATA_BACKEND desconhecido: %q (use %s ou %s)", c.Dados.Backend, BackendPostgREST, BackendSQLite)
	}

	if c.Email.EnvioAtivo && c.Email.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY é obrigatória quando EMAIL_ENVIO_ATIVO=true")
	}

	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
