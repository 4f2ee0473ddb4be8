// Package postgrest reads the detalhes_pedido view through a PostgREST
// endpoint (a Supabase project's REST interface).
package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pedido-docs-api/internal/models"
	"pedido-docs-api/internal/repositories"
)

const viewDetalhesPedido = "detalhes_pedido"

// Config holds the PostgREST endpoint settings
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DetalhePedidoRepository implements repositories.DetalhePedidoRepository
// over HTTP
type DetalhePedidoRepository struct {
	config Config
	client *http.Client
	logger *logrus.Logger
}

// NewDetalhePedidoRepository creates a new PostgREST-backed repository
func NewDetalhePedidoRepository(config Config, logger *logrus.Logger) *DetalhePedidoRepository {
	if logger == nil {
		logger = logrus.New()
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	return &DetalhePedidoRepository{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// ListarPorPedido queries the view with an equality filter on
// pedido_id. The caller's bearer token is forwarded byte for byte so
// the source can apply its own row-level security.
func (r *DetalhePedidoRepository) ListarPorPedido(ctx context.Context, pedidoID, token string) ([]models.DetalhePedido, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=*&pedido_id=eq.%s",
		strings.TrimSuffix(r.config.BaseURL, "/"),
		viewDetalhesPedido,
		url.QueryEscape(pedidoID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, repositories.NewRepositoryError("listar", viewDetalhesPedido, pedidoID, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", r.config.APIKey)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	inicio := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, repositories.NewRepositoryError("listar", viewDetalhesPedido, pedidoID,
			fmt.Errorf("%w: %v", repositories.ErrConnection, err))
	}
	defer resp.Body.Close()

	r.logger.WithFields(logrus.Fields{
		"view":        viewDetalhesPedido,
		"pedido_id":   pedidoID,
		"status_code": resp.StatusCode,
		"duration":    time.Since(inicio),
	}).Debug("Consulta PostgREST executada")

	if resp.StatusCode != http.StatusOK {
		return nil, repositories.NewRepositoryError("listar", viewDetalhesPedido, pedidoID,
			fmt.Errorf("fonte de dados respondeu %d: %s", resp.StatusCode, lerMensagemErro(resp.Body)))
	}

	var itens []models.DetalhePedido
	if err := json.NewDecoder(resp.Body).Decode(&itens); err != nil {
		return nil, repositories.NewRepositoryError("listar", viewDetalhesPedido, pedidoID,
			fmt.Errorf("resposta inválida da fonte de dados: %w", err))
	}

	return itens, nil
}

// lerMensagemErro extracts the PostgREST error message, falling back to
// the raw body.
func lerMensagemErro(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "sem detalhes"
	}

	var detalhe struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &detalhe); err == nil && detalhe.Message != "" {
		return detalhe.Message
	}

	return strings.TrimSpace(string(raw))
}
