package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"pedido-docs-api/internal/render"
	"pedido-docs-api/internal/repositories"
)

// exportacaoService implements the ExportacaoService interface
type exportacaoService struct {
	repo      repositories.DetalhePedidoRepository
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewExportacaoService creates a new export service
func NewExportacaoService(repo repositories.DetalhePedidoRepository, logger *logrus.Logger) ExportacaoService {
	if logger == nil {
		logger = logrus.New()
	}
	return &exportacaoService{
		repo:      repo,
		validator: validator.New(),
		logger:    logger,
	}
}

// ExportarCSV processes an export request for one order.
func (s *exportacaoService) ExportarCSV(ctx context.Context, pedidoID, token string) (*ResultadoExportacao, error) {
	if err := s.validator.Var(pedidoID, "required"); err != nil {
		return nil, fmt.Errorf("pedido_id é obrigatório")
	}

	itens, err := s.repo.ListarPorPedido(ctx, pedidoID, token)
	if err != nil {
		return nil, err
	}
	if len(itens) == 0 {
		return nil, repositories.NotFoundError(pedidoID)
	}

	s.logger.WithFields(logrus.Fields{
		"pedido_id": pedidoID,
		"linhas":    len(itens),
	}).Info("Exportação CSV gerada")

	return &ResultadoExportacao{
		NomeArquivo: render.NomeArquivoCSV(pedidoID),
		CSV:         render.PedidoCSV(itens),
	}, nil
}
