package estoque

import (
	"context"

	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados à transação. Garante a atomicidade do lançamento:
// movimento, posição e custo do produto são gravados juntos ou nenhum é.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentoRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
