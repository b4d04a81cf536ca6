package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de processamento de nota fiscal de entrada.
// PENDENTE -> PROCESSADO ou PENDENTE -> ERRO; ambos terminais.
const (
	NotaPendente   = "PENDENTE"
	NotaProcessado = "PROCESSADO"
	NotaErro       = "ERRO"
)

// NotaFiscal é uma NF-e de compra recebida para dar entrada no estoque e
// gerar a conta a pagar. XMLConteudo guarda o documento original.
type NotaFiscal struct {
	ID               string
	FornecedorCNPJ   string
	FornecedorNome   string
	Numero           string
	ValorProdutos    decimal.Decimal
	ValorTotal       decimal.Decimal
	ValorICMS        decimal.Decimal
	Status           string // PENDENTE | PROCESSADO | ERRO
	MensagemErro     string
	ItensProcessados int
	ItensIgnorados   int
	XMLConteudo      string
	FilialID         string // filial de destino, definida no processamento
	CreatedAt        time.Time
	ProcessadoEm     *time.Time
}

// NotaFiscalItem é uma linha da nota (produto do fornecedor).
type NotaFiscalItem struct {
	ID            string
	NotaID        string
	Codigo        string // cProd
	CodigoBarras  string // cEAN
	Descricao     string
	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
	ProdutoID     string // preenchido quando a linha casa com o catálogo
}
