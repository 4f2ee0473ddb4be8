// Package server wires configuration, data access and services into
// the handlers, for both the HTTP server and the Lambda entrypoints.
package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pedido-docs-api/internal/config"
	"pedido-docs-api/internal/database"
	"pedido-docs-api/internal/repositories"
	"pedido-docs-api/internal/repositories/postgrest"
	"pedido-docs-api/internal/repositories/sqlite"
	"pedido-docs-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config             *config.Config
	Logger             *logrus.Logger
	ConfirmacaoService services.ConfirmacaoService
	ExportacaoService  services.ExportacaoService

	conexao *database.ConnectionManager
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logrus.New()
	if cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	container := &Container{Config: cfg, Logger: logger}

	repo, err := container.criarRepositorio(cfg, logger)
	if err != nil {
		return nil, err
	}

	var sender services.EmailSender = services.NewLogEmailSender(logger)
	if cfg.Email.EnvioAtivo {
		sender = services.NewResendEmailSender(cfg.Email.ResendAPIKey, cfg.Email.Remetente, logger)
	}

	container.ConfirmacaoService = services.NewConfirmacaoService(repo, sender, logger)
	container.ExportacaoService = services.NewExportacaoService(repo, logger)

	return container, nil
}

func (c *Container) criarRepositorio(cfg *config.Config, logger *logrus.Logger) (repositories.DetalhePedidoRepository, error) {
	switch cfg.Dados.Backend {
	case config.BackendPostgREST:
		return postgrest.NewDetalhePedidoRepository(postgrest.Config{
			BaseURL: cfg.Supabase.URL,
			APIKey:  cfg.Supabase.AnonKey,
			Timeout: cfg.Dados.TimeoutConsulta,
		}, logger), nil

	case config.BackendSQLite:
		conexao := database.NewConnectionManager(&database.ConnectionConfig{
			DatabasePath:   cfg.Dados.ConnectionString,
			MigrationsPath: cfg.Dados.MigrationsPath,
			MaxOpenConns:   1,
			MaxIdleConns:   1,
			Logger:         logger,
		})
		if err := conexao.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect to local database: %w", err)
		}
		c.conexao = conexao
		return sqlite.NewDetalhePedidoRepository(conexao.GetDB(), logger), nil

	default:
		return nil, fmt.Errorf("backend de dados desconhecido: %q", cfg.Dados.Backend)
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.conexao != nil {
		return c.conexao.Close()
	}
	return nil
}
