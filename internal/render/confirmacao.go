// Package render turns a set of detalhes_pedido rows into the two
// customer-facing documents: the confirmation email body and the CSV
// export. Both renderers are pure functions of their input.
package render

import (
	"bytes"
	"fmt"
	"text/template"

	"pedido-docs-api/internal/models"
)

// text/template rather than html/template: the document bytes are part
// of the compatibility contract and must not be entity-escaped.
var confirmacaoTmpl = template.Must(template.New("confirmacao").Funcs(template.FuncMap{
	"moeda": models.FormatarValor,
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #4CAF50; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    .info-pedido { background: white; padding: 15px; margin: 10px 0; }
    .itens { margin: 20px 0; }
    .item { padding: 10px; border-bottom: 1px solid #ddd; }
    .total { font-size: 1.2em; font-weight: bold; text-align: right; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>✅ Pedido Confirmado!</h1>
    </div>
    <div class="content">
      <div class="info-pedido">
        <p><strong>Número do Pedido:</strong> {{.Pedido.CodigoPedido}}</p>
        <p><strong>Data:</strong> {{.Pedido.DataFormatada}}</p>
        <p><strong>Status:</strong> {{.Pedido.StatusMaiusculo}}</p>
      </div>

      <div class="itens">
        <h2>Itens do Pedido:</h2>
{{- range .Itens}}
        <div class="item">
          <strong>{{.NomeProduto}}</strong><br>
          Quantidade: {{.Quantidade}} x R$ {{moeda .PrecoUnitario}} = R$ {{moeda .Subtotal}}
        </div>
{{- end}}
      </div>

      <div class="total">
        Total: R$ {{moeda .Pedido.ValorTotal}}
      </div>

      <p style="margin-top: 30px;">Obrigado pela sua compra! 🎉</p>
    </div>
  </div>
</body>
</html>
`))

type dadosConfirmacao struct {
	Pedido *models.DetalhePedido
	Itens  []models.DetalhePedido
}

// ConfirmacaoHTML renders the confirmation email body for a non-empty
// row set. Row 0 carries the order-level fields; every row contributes
// one item entry, in input order.
func ConfirmacaoHTML(itens []models.DetalhePedido) (string, error) {
	if len(itens) == 0 {
		return "", fmt.Errorf("nenhum item para renderizar")
	}

	var buf bytes.Buffer
	dados := dadosConfirmacao{Pedido: &itens[0], Itens: itens}
	if err := confirmacaoTmpl.Execute(&buf, dados); err != nil {
		return "", fmt.Errorf("falha ao renderizar confirmação: %w", err)
	}

	return buf.String(), nil
}

// AssuntoConfirmacao builds the email subject for an order.
func AssuntoConfirmacao(pedidoID string) string {
	return "Pedido Confirmado #" + models.PrefixoPedido(pedidoID)
}
