package render

import (
	"strconv"
	"strings"

	"pedido-docs-api/internal/models"
)

// Fixed export columns; the data rows must match this order exactly.
var colunasCSV = []string{
	"ID do Pedido",
	"Data",
	"Status",
	"Cliente",
	"Email",
	"Telefone",
	"Produto",
	"Quantidade",
	"Preco Unitario",
	"Subtotal",
	"Total do Pedido",
}

// PedidoCSV renders the export document: the fixed header plus one data
// row per line item. The order total appears only on the first data
// row. Rows are joined with \n and there is no trailing newline.
//
// Customer and product names are wrapped in literal double quotes with
// no escaping of embedded quotes or commas. That matches the upstream
// consumers byte for byte; a name containing either character produces
// a malformed row. The safe alternative is RFC 4180 quoting (double the
// embedded quotes, quote any field containing , " or a newline), which
// would change output only for such names.
func PedidoCSV(itens []models.DetalhePedido) string {
	linhas := make([]string, 0, len(itens)+1)
	linhas = append(linhas, strings.Join(colunasCSV, ","))

	for i, item := range itens {
		total := ""
		if i == 0 {
			total = models.FormatarValor(item.ValorTotal)
		}

		campos := []string{
			item.CodigoPedido(),
			item.DataFormatada(),
			item.Status,
			`"` + item.NomeCliente + `"`,
			item.EmailCliente,
			item.TelefoneOuPadrao(),
			`"` + item.NomeProduto + `"`,
			strconv.Itoa(item.Quantidade),
			models.FormatarValor(item.PrecoUnitario),
			models.FormatarValor(item.Subtotal),
			total,
		}
		linhas = append(linhas, strings.Join(campos, ","))
	}

	return strings.Join(linhas, "\n")
}

// NomeArquivoCSV derives the attachment filename from the order id.
func NomeArquivoCSV(pedidoID string) string {
	return "pedido_" + models.PrefixoPedido(pedidoID) + ".csv"
}
