package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	MovimentoENTRADA = "ENTRADA"
	MovimentoSAIDA   = "SAIDA"
	MovimentoAJUSTE  = "AJUSTE"
)

// MovimentoEstoque é um registro imutável do livro de estoque (append-only).
// Quantidade é assinada: positiva para entradas, negativa para saídas.
// QuantidadeAnterior guarda o saldo da posição antes do movimento, para
// auditoria e reconstrução.
type MovimentoEstoque struct {
	ID                 string
	ProdutoID          string
	FilialID           string
	Tipo               string // ENTRADA, SAIDA, AJUSTE
	Quantidade         decimal.Decimal
	QuantidadeAnterior decimal.Decimal
	ValorUnitario      decimal.Decimal
	ValorTotal         decimal.Decimal
	Documento          string // NF, pedido, nota de ajuste
	Usuario            string
	CreatedAt          time.Time
}
