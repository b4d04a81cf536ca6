package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumoMensal é uma linha do histórico financeiro agrupado por mês e tipo.
type ResumoMensal struct {
	Ano        int
	Mes        int
	Tipo       string // PAGAR | RECEBER
	Total      decimal.Decimal
	Quantidade int
}

// DashboardResumo agrega os indicadores da tela inicial, todos calculados
// no banco (nenhuma coleção é trazida para memória para somar).
type DashboardResumo struct {
	TotalClientes       int
	TotalFornecedores   int
	TotalProdutos       int
	TotalFiliais        int
	ContasPagarAberto   decimal.Decimal
	ContasReceberAberto decimal.Decimal
	ContasVencidas      int
	SaldoBancos         decimal.Decimal
	ValorEstoque        decimal.Decimal // SUM(quantidade * custo_medio)
}

// AnalyticsRepository define o porto das consultas agregadas de relatório.
type AnalyticsRepository interface {
	Dashboard(ref time.Time) (*DashboardResumo, error)
	HistoricoMensal(meses int) ([]*ResumoMensal, error)
}
