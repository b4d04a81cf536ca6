package financeiro

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReciboDados reúne o que o recibo de pagamento imprime. Contraparte é o
// fornecedor (PAGAR) ou o cliente (RECEBER).
type ReciboDados struct {
	ContaID       string
	Tipo          string
	Descricao     string
	Valor         decimal.Decimal
	ValorPago     decimal.Decimal
	DataPagamento time.Time
	ParcelaNumero int
	ParcelaTotal  int
	Contraparte   string
	Banco         string
	Empresa       string
}

// GeradorRecibo produz o recibo em PDF de uma conta baixada.
type GeradorRecibo interface {
	GerarRecibo(ctx context.Context, dados ReciboDados) ([]byte, error)
}
