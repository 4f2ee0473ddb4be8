package services

import (
	"context"
)

// ConfirmacaoService defines the confirmation-document business logic
type ConfirmacaoService interface {
	// EnviarConfirmacao fetches the order, renders the confirmation
	// email body and hands it to the configured sender. token is the
	// caller's Authorization header, forwarded to the data source.
	EnviarConfirmacao(ctx context.Context, pedidoID, token string) (*ResultadoConfirmacao, error)
}

// ExportacaoService defines the CSV-export business logic
type ExportacaoService interface {
	// ExportarCSV fetches the order and renders the export document.
	ExportarCSV(ctx context.Context, pedidoID, token string) (*ResultadoExportacao, error)
}

// EmailSender delivers a rendered confirmation document
type EmailSender interface {
	Enviar(ctx context.Context, destinatario, assunto, html string) error
}

// ResultadoConfirmacao is the outcome of a processed confirmation
type ResultadoConfirmacao struct {
	PedidoID string
	Cliente  string
	HTML     string
}

// ResultadoExportacao is a rendered export document
type ResultadoExportacao struct {
	NomeArquivo string
	CSV         string
}
