package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DetalhePedido is one row of the detalhes_pedido view: the join of an
// order with one of its line items. Order-level fields (date, status,
// customer, total) repeat identically on every row of the same order;
// only the product-line fields vary.
type DetalhePedido struct {
	PedidoID        string       `json:"pedido_id" db:"pedido_id" validate:"required"`
	DataPedido      DataFlexivel `json:"data_pedido" db:"data_pedido"`
	Status          string       `json:"status" db:"status"`
	NomeCliente     string       `json:"nome_cliente" db:"nome_cliente"`
	EmailCliente    string       `json:"email_cliente" db:"email_cliente" validate:"omitempty,email"`
	TelefoneCliente *string      `json:"telefone_cliente" db:"telefone_cliente"`
	NomeProduto     string       `json:"nome_produto" db:"nome_produto"`
	Quantidade      int          `json:"quantidade" db:"quantidade" validate:"min=1"`
	PrecoUnitario   float64      `json:"preco_unitario" db:"preco_unitario"`
	Subtotal        float64      `json:"subtotal" db:"subtotal"`
	ValorTotal      float64      `json:"valor_total" db:"valor_total"`
}

// PrefixoPedido returns the first 8 characters of an order identifier,
// used for subject lines and export filenames.
func PrefixoPedido(pedidoID string) string {
	if len(pedidoID) <= 8 {
		return pedidoID
	}
	return pedidoID[:8]
}

// CodigoPedido returns the customer-facing order code: the id prefix
// upper-cased.
func (d *DetalhePedido) CodigoPedido() string {
	return strings.ToUpper(PrefixoPedido(d.PedidoID))
}

// DataFormatada returns the order date in pt-BR day/month/year form.
func (d *DetalhePedido) DataFormatada() string {
	return d.DataPedido.Format("02/01/2006")
}

// StatusMaiusculo returns the order status upper-cased for display.
func (d *DetalhePedido) StatusMaiusculo() string {
	return strings.ToUpper(d.Status)
}

// TelefoneOuPadrao returns the customer phone or "N/A" when absent.
func (d *DetalhePedido) TelefoneOuPadrao() string {
	if d.TelefoneCliente == nil || *d.TelefoneCliente == "" {
		return "N/A"
	}
	return *d.TelefoneCliente
}

// FormatarValor formats a currency amount with exactly two decimals.
func FormatarValor(valor float64) string {
	return strconv.FormatFloat(valor, 'f', 2, 64)
}

// DataFlexivel is a timestamp that accepts the date shapes the view can
// produce: RFC3339 (with or without offset), a bare datetime, or a bare
// date.
type DataFlexivel struct {
	time.Time
}

var layoutsData = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NovaData builds a DataFlexivel from a time.Time.
func NovaData(t time.Time) DataFlexivel {
	return DataFlexivel{Time: t}
}

// ParseData parses a timestamp string in any accepted layout.
func ParseData(valor string) (DataFlexivel, error) {
	for _, layout := range layoutsData {
		if t, err := time.Parse(layout, valor); err == nil {
			return DataFlexivel{Time: t}, nil
		}
	}
	return DataFlexivel{}, fmt.Errorf("data_pedido em formato não reconhecido: %q", valor)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DataFlexivel) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseData(s)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DataFlexivel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}

// Scan implements sql.Scanner for the sqlite backend.
func (d *DataFlexivel) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseData(v)
		if err != nil {
			return err
		}
		d.Time = parsed.Time
		return nil
	case []byte:
		parsed, err := ParseData(string(v))
		if err != nil {
			return err
		}
		d.Time = parsed.Time
		return nil
	default:
		return fmt.Errorf("tipo inesperado para data_pedido: %T", value)
	}
}

// Value implements driver.Valuer.
func (d DataFlexivel) Value() (driver.Value, error) {
	return d.Time, nil
}
