package postgrest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pedido-docs-api/internal/repositories"
)

const linhaExemplo = `{
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

func TestListarPorPedidoEncaminhaFiltroEAutorizacao(t *testing.T) {
	var recebido *http.Request
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[" + linhaExemplo + "]"))
	}))
	defer servidor.Close()

	repo := NewDetalhePedidoRepository(Config{BaseURL: servidor.URL, APIKey: "chave-anon"}, nil)

	itens, err := repo.ListarPorPedido(context.Background(), "abcd1234-0000-0000-0000-000000000000", "Bearer token-do-cliente")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if recebido.URL.Path != "/rest/v1/detalhes_pedido" {
		t.Errorf("unexpected path: %s", recebido.URL.Path)
	}
	if got := recebido.URL.Query().Get("pedido_id"); got != "eq.abcd1234-0000-0000-0000-000000000000" {
		t.Errorf("unexpected equality filter: %s", got)
	}
	if got := recebido.Header.Get("apikey"); got != "chave-anon" {
		t.Errorf("unexpected apikey header: %s", got)
	}
	// The caller's credential must pass through unmodified
	if got := recebido.Header.Get("Authorization"); got != "Bearer token-do-cliente" {
		t.Errorf("Authorization header not forwarded verbatim: %s", got)
	}

	if len(itens) != 1 {
		t.Fatalf("expected 1 row, got %d", len(itens))
	}
	if itens[0].NomeCliente != "Ana Silva" || itens[0].Quantidade != 2 {
		t.Errorf("unexpected row: %+v", itens[0])
	}
}

func TestListarPorPedidoSemAutorizacao(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, presente := r.Header["Authorization"]; presente {
			t.Error("Authorization header should be absent when no token is given")
		}
		w.Write([]byte("[]"))
	}))
	defer servidor.Close()

	repo := NewDetalhePedidoRepository(Config{BaseURL: servidor.URL, APIKey: "chave-anon"}, nil)

	itens, err := repo.ListarPorPedido(context.Background(), "inexistente", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Empty result set is not an error
	if len(itens) != 0 {
		t.Errorf("expected empty result, got %d rows", len(itens))
	}
}

func TestListarPorPedidoErroUpstream(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "permission denied for view detalhes_pedido"}`))
	}))
	defer servidor.Close()

	repo := NewDetalhePedidoRepository(Config{BaseURL: servidor.URL, APIKey: "chave-anon"}, nil)

	_, err := repo.ListarPorPedido(context.Background(), "abcd1234", "Bearer expirado")
	if err == nil {
		t.Fatal("expected error for upstream failure")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("upstream message should surface verbatim, got: %v", err)
	}

	var repoErr *repositories.RepositoryError
	if !errors.As(err, &repoErr) {
		t.Errorf("expected *RepositoryError, got %T", err)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		t.Error("upstream failure must not be mistaken for not-found")
	}
}

func TestListarPorPedidoFonteInacessivel(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	servidor.Close() // closed on purpose

	repo := NewDetalhePedidoRepository(Config{BaseURL: servidor.URL, APIKey: "chave-anon"}, nil)

	_, err := repo.ListarPorPedido(context.Background(), "abcd1234", "")
	if err == nil {
		t.Fatal("expected error for unreachable source")
	}
	if !errors.Is(err, repositories.ErrConnection) {
		t.Errorf("expected ErrConnection, got: %v", err)
	}
}
