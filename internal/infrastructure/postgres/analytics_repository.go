package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de leitura agregada do dashboard e relatórios.
// Todas as somas acontecem no banco.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// Dashboard devolve os indicadores da tela inicial em uma única passada.
// ContasVencidas conta pendentes com vencimento anterior a ref.
func (r *AnalyticsRepo) Dashboard(ref time.Time) (*repository.DashboardResumo, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM clientes     WHERE ativo)                          AS total_clientes,
	    (SELECT COUNT(*) FROM fornecedores WHERE ativo)                          AS total_fornecedores,
	    (SELECT COUNT(*) FROM produtos     WHERE ativo)                          AS total_produtos,
	    (SELECT COUNT(*) FROM filiais      WHERE ativo)                          AS total_filiais,
	    (SELECT COALESCE(SUM(valor), 0) FROM contas_financeiras
	        WHERE tipo = 'PAGAR'   AND status = 'PENDENTE')                      AS contas_pagar_aberto,
	    (SELECT COALESCE(SUM(valor), 0) FROM contas_financeiras
	        WHERE tipo = 'RECEBER' AND status = 'PENDENTE')                      AS contas_receber_aberto,
	    (SELECT COUNT(*) FROM contas_financeiras
	        WHERE status = 'PENDENTE' AND vencimento < $1)                       AS contas_vencidas,
	    (SELECT COALESCE(SUM(saldo), 0) FROM contas_bancarias WHERE ativo)       AS saldo_bancos,
	    (SELECT COALESCE(SUM(e.quantidade * p.custo_medio), 0)
	        FROM estoque e JOIN produtos p ON p.id = e.produto_id)               AS valor_estoque`

	var d repository.DashboardResumo
	err := r.pool.QueryRow(context.Background(), query, ref).Scan(
		&d.TotalClientes,
		&d.TotalFornecedores,
		&d.TotalProdutos,
		&d.TotalFiliais,
		&d.ContasPagarAberto,
		&d.ContasReceberAberto,
		&d.ContasVencidas,
		&d.SaldoBancos,
		&d.ValorEstoque,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.Dashboard: %w", err)
	}
	return &d, nil
}

// HistoricoMensal agrupa as contas por mês de vencimento e tipo, dos últimos
// N meses, do mais antigo para o mais recente.
func (r *AnalyticsRepo) HistoricoMensal(meses int) ([]*repository.ResumoMensal, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR  FROM vencimento)::INT  AS ano,
	    EXTRACT(MONTH FROM vencimento)::INT  AS mes,
	    tipo,
	    COALESCE(SUM(valor), 0)              AS total,
	    COUNT(*)                             AS quantidade
	FROM contas_financeiras
	WHERE vencimento >= date_trunc('month', now()) - ($1 || ' months')::INTERVAL
	GROUP BY 1, 2, tipo
	ORDER BY 1, 2, tipo`

	rows, err := r.pool.Query(context.Background(), query, meses)
	if err != nil {
		return nil, fmt.Errorf("analytics.HistoricoMensal: %w", err)
	}
	defer rows.Close()

	var results []*repository.ResumoMensal
	for rows.Next() {
		var m repository.ResumoMensal
		if err := rows.Scan(&m.Ano, &m.Mes, &m.Tipo, &m.Total, &m.Quantidade); err != nil {
			return nil, fmt.Errorf("analytics.HistoricoMensal scan: %w", err)
		}
		results = append(results, &m)
	}
	return results, rows.Err()
}
