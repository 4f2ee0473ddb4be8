package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when an order has no rows
	ErrNotFound = errors.New("pedido não encontrado")

	// ErrConnection is returned when the data source is unreachable
	ErrConnection = errors.New("falha de conexão com a fonte de dados")
)

// RepositoryError wraps a data-source failure with operation context
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity or view name
	ID     string // Order identifier (if applicable)
	Err    error  // Underlying error
}

// Error implements the error interface. The underlying message is kept
// verbatim; handlers surface it to the caller unmodified.
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// NotFoundError creates a "not found" error for an order. It matches
// errors.Is(err, ErrNotFound).
func NotFoundError(pedidoID string) error {
	return fmt.Errorf("pedido %s: %w", pedidoID, ErrNotFound)
}
