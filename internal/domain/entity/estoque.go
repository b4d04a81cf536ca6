package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estoque é a posição de um produto em uma filial (tabela materializada).
// Quantidade é sempre a soma dos movimentos assinados do par (produto, filial);
// a linha é criada de forma preguiçosa no primeiro movimento.
type Estoque struct {
	ProdutoID     string
	FilialID      string
	Quantidade    decimal.Decimal
	QtdReservada  decimal.Decimal
	EstoqueMinimo decimal.Decimal
	UpdatedAt     time.Time
}
