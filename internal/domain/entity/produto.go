package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo (multi-filial).
// CustoMedio é o custo médio ponderado recalculado a cada entrada; a quantidade
// total é a soma das posições de estoque por filial (EstoqueTotal é derivado,
// nunca incrementado).
type Produto struct {
	ID            string
	Nome          string
	Codigo        string // código interno do fornecedor/catálogo
	CodigoBarras  string // EAN
	Categoria     string
	Descricao     string
	PrecoVenda    decimal.Decimal
	ValorPago     decimal.Decimal // último valor pago na compra
	CustoMedio    decimal.Decimal // custo médio ponderado (inicia em 0)
	EstoqueTotal  decimal.Decimal // soma das posições por filial
	UnidadeMedida string
	ForaDoEstado  bool // fornecimento interestadual: aplica DIFAL na entrada
	Ativo         bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProdutoPatch enumera os campos mutáveis por atualização parcial.
// CustoMedio, ValorPago e EstoqueTotal ficam de fora: só o motor de estoque os altera.
type ProdutoPatch struct {
	Nome          *string
	Codigo        *string
	CodigoBarras  *string
	Categoria     *string
	Descricao     *string
	PrecoVenda    *decimal.Decimal
	UnidadeMedida *string
	ForaDoEstado  *bool
	Ativo         *bool
}
