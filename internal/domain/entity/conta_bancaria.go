package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContaBancaria guarda o saldo de uma conta da empresa. O saldo só muda como
// efeito da baixa de uma ContaFinanceira (PAGAR subtrai, RECEBER soma).
type ContaBancaria struct {
	ID        string
	Nome      string
	Banco     string
	Agencia   string
	Numero    string
	Saldo     decimal.Decimal
	Ativo     bool
	CreatedAt time.Time
}
