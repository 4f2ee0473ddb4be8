package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"pedido-docs-api/internal/render"
	"pedido-docs-api/internal/repositories"
)

// confirmacaoService implements the ConfirmacaoService interface
type confirmacaoService struct {
	repo      repositories.DetalhePedidoRepository
	sender    EmailSender
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewConfirmacaoService creates a new confirmation service
func NewConfirmacaoService(repo repositories.DetalhePedidoRepository, sender EmailSender, logger *logrus.Logger) ConfirmacaoService {
	if logger == nil {
		logger = logrus.New()
	}
	return &confirmacaoService{
		repo:      repo,
		sender:    sender,
		validator: validator.New(),
		logger:    logger,
	}
}

// EnviarConfirmacao processes a confirmation request for one order.
func (s *confirmacaoService) EnviarConfirmacao(ctx context.Context, pedidoID, token string) (*ResultadoConfirmacao, error) {
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

	html, err := render.ConfirmacaoHTML(itens)
	if err != nil {
		return nil, err
	}

	pedido := itens[0]
	assunto := render.AssuntoConfirmacao(pedido.PedidoID)

	// Diagnostic lines stand in for the delivery step when sending is
	// disabled.
	s.logger.WithField("destinatario", pedido.EmailCliente).Info("Email de confirmação preparado")
	s.logger.WithField("assunto", assunto).Info("Assunto do email")

	if err := s.sender.Enviar(ctx, pedido.EmailCliente, assunto, html); err != nil {
		return nil, err
	}

	return &ResultadoConfirmacao{
		PedidoID: pedido.PedidoID,
		Cliente:  pedido.EmailCliente,
		HTML:     html,
	}, nil
}
