package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCodigoPedido(t *testing.T) {
	d := &DetalhePedido{PedidoID: "abcd1234-0000-0000-0000-000000000000"}
	if got := d.CodigoPedido(); got != "ABCD1234" {
		t.Errorf("expected ABCD1234, got %s", got)
	}

	// Short identifiers are used whole
	d = &DetalhePedido{PedidoID: "abc"}
	if got := d.CodigoPedido(); got != "ABC" {
		t.Errorf("expected ABC, got %s", got)
	}
}

func TestPrefixoPedido(t *testing.T) {
	if got := PrefixoPedido("abcd1234-efgh"); got != "abcd1234" {
		t.Errorf("expected abcd1234, got %s", got)
	}
	if got := PrefixoPedido("ab"); got != "ab" {
		t.Errorf("expected ab, got %s", got)
	}
}

func TestDataFormatada(t *testing.T) {
	data, err := ParseData("2024-01-15")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}

	d := &DetalhePedido{DataPedido: data}
	if got := d.DataFormatada(); got != "15/01/2024" {
		t.Errorf("expected 15/01/2024, got %s", got)
	}
}

func TestFormatarValor(t *testing.T) {
	tests := []struct {
		valor    float64
		esperado string
	}{
		{30, "30.00"},
		{1234.5, "1234.50"},
		{15.0, "15.00"},
		{0, "0.00"},
		{9.999, "10.00"},
	}

	for _, tt := range tests {
		if got := FormatarValor(tt.valor); got != tt.esperado {
			t.Errorf("FormatarValor(%v): expected %s, got %s", tt.valor, tt.esperado, got)
		}
	}
}

func TestTelefoneOuPadrao(t *testing.T) {
	d := &DetalhePedido{}
	if got := d.TelefoneOuPadrao(); got != "N/A" {
		t.Errorf("expected N/A for nil phone, got %s", got)
	}

	vazio := ""
	d.TelefoneCliente = &vazio
	if got := d.TelefoneOuPadrao(); got != "N/A" {
		t.Errorf("expected N/A for empty phone, got %s", got)
	}

	telefone := "+55 11 99999-0000"
	d.TelefoneCliente = &telefone
	if got := d.TelefoneOuPadrao(); got != telefone {
		t.Errorf("expected %s, got %s", telefone, got)
	}
}

func TestDataFlexivelUnmarshalJSON(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado time.Time
	}{
		{`"2024-01-15"`, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{`"2024-01-15T10:30:00"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{`"2024-01-15T10:30:00+00:00"`, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		var d DataFlexivel
		if err := json.Unmarshal([]byte(tt.entrada), &d); err != nil {
			t.Errorf("unmarshal %s failed: %v", tt.entrada, err)
			continue
		}
		if !d.Time.Equal(tt.esperado) {
			t.Errorf("unmarshal %s: expected %v, got %v", tt.entrada, tt.esperado, d.Time)
		}
	}

	var d DataFlexivel
	if err := json.Unmarshal([]byte(`"15 de janeiro"`), &d); err == nil {
		t.Error("expected error for unrecognized date format")
	}
}

func TestDetalhePedidoUnmarshalRow(t *testing.T) {
	// A row as PostgREST returns it
	raw := `{
		"pedido_id": "abcd1234-0000-0000-0000-000000000000",
		"data_pedido": "2024-01-15T10:30:00+00:00",
		"status": "pago",
		"nome_cliente": "Ana Silva",
		"email_cliente": "ana@x.com",
		"telefone_cliente": null,
		"nome_produto": "Caneca",
		"quantidade": 2,
		"preco_unitario": 15.00,
		"subtotal": 30.00,
		"valor_total": 30.00
	}`

	var d DetalhePedido
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("failed to unmarshal row: %v", err)
	}

	if d.CodigoPedido() != "ABCD1234" {
		t.Errorf("unexpected code: %s", d.CodigoPedido())
	}
	if d.TelefoneCliente != nil {
		t.Error("expected nil phone")
	}
	if d.Quantidade != 2 || d.Subtotal != 30.00 {
		t.Errorf("unexpected line fields: %+v", d)
	}
}
