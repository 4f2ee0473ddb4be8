package repositories

import (
	"context"

	"pedido-docs-api/internal/models"
)

// DetalhePedidoRepository reads rows from the detalhes_pedido view.
//
// token is the caller's Authorization header, forwarded verbatim to the
// data source; row-level security is enforced downstream, not here.
// Backends without per-request authorization ignore it.
type DetalhePedidoRepository interface {
	// ListarPorPedido returns every row for the given order, in the
	// source's natural order. An order with no rows yields an empty
	// slice and a nil error; emptiness is a domain condition decided by
	// the caller, not a repository failure.
	ListarPorPedido(ctx context.Context, pedidoID, token string) ([]models.DetalhePedido, error)
}
