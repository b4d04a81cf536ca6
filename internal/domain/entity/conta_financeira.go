package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos e status de conta financeira.
const (
	ContaPagar   = "PAGAR"
	ContaReceber = "RECEBER"

	StatusPendente = "PENDENTE"
	StatusPago     = "PAGO"
	// VENCIDO é uma visão calculada (PENDENTE com vencimento no passado),
	// nunca gravada em banco.
	StatusVencido = "VENCIDO"
)

// ContaFinanceira é uma obrigação a pagar ou a receber, possivelmente uma
// parcela de um total maior. Baixada exatamente uma vez (PENDENTE -> PAGO).
type ContaFinanceira struct {
	ID              string
	Tipo            string // PAGAR | RECEBER
	Descricao       string
	Valor           decimal.Decimal
	Vencimento      time.Time
	ValorPago       decimal.Decimal
	DataPagamento   *time.Time
	Status          string // PENDENTE | PAGO
	ParcelaNumero   int    // 1-based
	ParcelaTotal    int
	FornecedorID    string
	ClienteID       string
	ContaBancariaID string
	CreatedAt       time.Time
}

// Vencida informa se a conta está vencida na data de referência.
// Função pura: nunca altera o status gravado.
func (c *ContaFinanceira) Vencida(ref time.Time) bool {
	return c.Status == StatusPendente && c.Vencimento.Before(ref)
}

// StatusCalculado devolve VENCIDO para contas pendentes com vencimento no
// passado; caso contrário o status gravado.
func (c *ContaFinanceira) StatusCalculado(ref time.Time) string {
	if c.Vencida(ref) {
		return StatusVencido
	}
	return c.Status
}
