// Package sqlite reads the detalhes_pedido view from a local SQLite
// database, letting the service run end-to-end without a remote
// project. SQLite has no per-request authorization; the forwarded
// token is accepted for interface parity and ignored.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"pedido-docs-api/internal/models"
	"pedido-docs-api/internal/repositories"
)

const consultaDetalhes = `
SELECT pedido_id, data_pedido, status, nome_cliente, email_cliente,
       telefone_cliente, nome_produto, quantidade, preco_unitario,
       subtotal, valor_total
FROM detalhes_pedido
WHERE pedido_id = ?
ORDER BY item_id`

// DetalhePedidoRepository implements repositories.DetalhePedidoRepository
// over database/sql
type DetalhePedidoRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewDetalhePedidoRepository creates a new SQLite-backed repository
func NewDetalhePedidoRepository(db *sql.DB, logger *logrus.Logger) *DetalhePedidoRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &DetalhePedidoRepository{db: db, logger: logger}
}

// ListarPorPedido returns every view row for the order, in line-item
// insertion order. Views have no rowid, so the view exposes the item
// primary key as item_id for a stable ordering.
func (r *DetalhePedidoRepository) ListarPorPedido(ctx context.Context, pedidoID, _ string) ([]models.DetalhePedido, error) {
	inicio := time.Now()
	rows, err := r.db.QueryContext(ctx, consultaDetalhes, pedidoID)
	if err != nil {
		return nil, repositories.NewRepositoryError("listar", "detalhes_pedido", pedidoID, err)
	}
	defer rows.Close()

	var itens []models.DetalhePedido
	for rows.Next() {
		var (
			item     models.DetalhePedido
			telefone sql.NullString
		)
		err := rows.Scan(
			&item.PedidoID,
			&item.DataPedido,
			&item.Status,
			&item.NomeCliente,
			&item.EmailCliente,
			&telefone,
			&item.NomeProduto,
			&item.Quantidade,
			&item.PrecoUnitario,
			&item.Subtotal,
			&item.ValorTotal,
		)
		if err != nil {
			return nil, repositories.NewRepositoryError("listar", "detalhes_pedido", pedidoID, err)
		}
		if telefone.Valid {
			item.TelefoneCliente = &telefone.String
		}
		itens = append(itens, item)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("listar", "detalhes_pedido", pedidoID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"pedido_id": pedidoID,
		"linhas":    len(itens),
		"duration":  time.Since(inicio),
	}).Debug("Consulta executada")

	return itens, nil
}
