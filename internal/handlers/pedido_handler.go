package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pedido-docs-api/internal/services"
	"pedido-docs-api/pkg/lambda"
)

// PedidoHandler handles the two order-document endpoints
type PedidoHandler struct {
	confirmacaoService services.ConfirmacaoService
	exportacaoService  services.ExportacaoService
}

// NewPedidoHandler creates a new order handler
func NewPedidoHandler(confirmacao services.ConfirmacaoService, exportacao services.ExportacaoService) *PedidoHandler {
	return &PedidoHandler{
		confirmacaoService: confirmacao,
		exportacaoService:  exportacao,
	}
}

// PedidoRequest is the request body shared by both endpoints
type PedidoRequest struct {
	PedidoID string `json:"pedido_id" binding:"required"`
}

// ConfirmacaoResponse is the confirmation success envelope
type ConfirmacaoResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Mensagem string `json:"mensagem"`
	Pedido   string `json:"pedido"`
	Cliente  string `json:"cliente"`
}

// EnviarConfirmacao processes a confirmation request.
// POST /api/v1/pedidos/confirmacao
func (h *PedidoHandler) EnviarConfirmacao(c *gin.Context) {
	var req PedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErroResponse{Erro: err.Error()})
		return
	}

	resultado, err := h.confirmacaoService.EnviarConfirmacao(c.Request.Context(), req.PedidoID, c.GetHeader("Authorization"))
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, ConfirmacaoResponse{
		Sucesso:  true,
		Mensagem: "Confirmação processada",
		Pedido:   resultado.PedidoID,
		Cliente:  resultado.Cliente,
	})
}

// ExportarCSV processes an export request and streams the document as
// an attachment.
// POST /api/v1/pedidos/exportar-csv
func (h *PedidoHandler) ExportarCSV(c *gin.Context) {
	var req PedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErroResponse{Erro: err.Error()})
		return
	}

	resultado, err := h.exportacaoService.ExportarCSV(c.Request.Context(), req.PedidoID, c.GetHeader("Authorization"))
	if err != nil {
		responderErro(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resultado.NomeArquivo))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(resultado.CSV))
}

// HandleConfirmacao is the framework-agnostic variant used by the
// Lambda entrypoint.
func (h *PedidoHandler) HandleConfirmacao(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var corpo PedidoRequest
	if err := json.Unmarshal(req.Body, &corpo); err != nil {
		return respostaJSON(http.StatusBadRequest, ErroResponse{Erro: err.Error()})
	}
	if corpo.PedidoID == "" {
		return respostaJSON(http.StatusBadRequest, ErroResponse{Erro: "pedido_id é obrigatório"})
	}

	resultado, err := h.confirmacaoService.EnviarConfirmacao(ctx, corpo.PedidoID, req.Header("Authorization"))
	if err != nil {
		status, body := statusErro(err)
		return respostaJSON(status, body)
	}

	return respostaJSON(http.StatusOK, ConfirmacaoResponse{
		Sucesso:  true,
		Mensagem: "Confirmação processada",
		Pedido:   resultado.PedidoID,
		Cliente:  resultado.Cliente,
	})
}

// HandleExportacao is the framework-agnostic variant used by the
// Lambda entrypoint.
func (h *PedidoHandler) HandleExportacao(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var corpo PedidoRequest
	if err := json.Unmarshal(req.Body, &corpo); err != nil {
		return respostaJSON(http.StatusBadRequest, ErroResponse{Erro: err.Error()})
	}
	if corpo.PedidoID == "" {
		return respostaJSON(http.StatusBadRequest, ErroResponse{Erro: "pedido_id é obrigatório"})
	}

	resultado, err := h.exportacaoService.ExportarCSV(ctx, corpo.PedidoID, req.Header("Authorization"))
	if err != nil {
		status, body := statusErro(err)
		return respostaJSON(status, body)
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":        "text/csv; charset=utf-8",
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", resultado.NomeArquivo),
		},
		Body: []byte(resultado.CSV),
	}, nil
}

func respostaJSON(status int, body interface{}) (*lambda.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       raw,
	}, nil
}
