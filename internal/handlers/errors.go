package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pedido-docs-api/internal/repositories"
)

// MensagemPedidoNaoEncontrado is the fixed not-found response message
const MensagemPedidoNaoEncontrado = "Pedido não encontrado"

// ErroResponse is the error envelope shared by both endpoints
type ErroResponse struct {
	Erro string `json:"erro"`
}

// responderErro maps a pipeline error onto the HTTP contract: an order
// with no rows is a 404 with the fixed message; everything else —
// malformed input and upstream failures alike — collapses into a 400
// carrying the message verbatim.
func responderErro(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErroResponse{Erro: MensagemPedidoNaoEncontrado})
		return
	}
	c.JSON(http.StatusBadRequest, ErroResponse{Erro: err.Error()})
}

// statusErro returns the status and body for the lambda-style variants.
func statusErro(err error) (int, ErroResponse) {
	if errors.Is(err, repositories.ErrNotFound) {
		return http.StatusNotFound, ErroResponse{Erro: MensagemPedidoNaoEncontrado}
	}
	return http.StatusBadRequest, ErroResponse{Erro: err.Error()}
}
