package dto

import (
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// DashboardResponse indicadores da tela inicial.
type DashboardResponse struct {
	TotalClientes       int             `json:"total_clientes"`
	TotalFornecedores   int             `json:"total_fornecedores"`
	TotalProdutos       int             `json:"total_produtos"`
	TotalFiliais        int             `json:"total_filiais"`
	ContasPagarAberto   decimal.Decimal `json:"contas_pagar_aberto"`
	ContasReceberAberto decimal.Decimal `json:"contas_receber_aberto"`
	ContasVencidas      int             `json:"contas_vencidas"`
	SaldoBancos         decimal.Decimal `json:"saldo_bancos"`
	ValorEstoque        decimal.Decimal `json:"valor_estoque"`
}

// NewDashboardResponse converte o resumo agregado na resposta HTTP.
func NewDashboardResponse(d *repository.DashboardResumo) DashboardResponse {
	return DashboardResponse{
		TotalClientes:       d.TotalClientes,
		TotalFornecedores:   d.TotalFornecedores,
		TotalProdutos:       d.TotalProdutos,
		TotalFiliais:        d.TotalFiliais,
		ContasPagarAberto:   d.ContasPagarAberto,
		ContasReceberAberto: d.ContasReceberAberto,
		ContasVencidas:      d.ContasVencidas,
		SaldoBancos:         d.SaldoBancos,
		ValorEstoque:        d.ValorEstoque,
	}
}

// ResumoMensalResponse linha do histórico financeiro mensal.
type ResumoMensalResponse struct {
	Ano        int             `json:"ano"`
	Mes        int             `json:"mes"`
	Tipo       string          `json:"tipo"`
	Total      decimal.Decimal `json:"total"`
	Quantidade int             `json:"quantidade"`
}
