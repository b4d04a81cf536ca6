package financeiro

import (
	"context"

	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// TxRunner executa a baixa dentro de uma transação: a mudança de status da
// conta e o ajuste do saldo bancário são visíveis juntos ou nenhum é.
type TxRunner interface {
	RunFinanceiro(ctx context.Context, fn func(
		contaRepo repository.ContaFinanceiraRepository,
		bancoRepo repository.ContaBancariaRepository,
	) error) error
}
