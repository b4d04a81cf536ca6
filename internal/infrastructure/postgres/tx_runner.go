package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestorlite/erp-api/internal/application/estoque"
	"github.com/gestorlite/erp-api/internal/application/financeiro"
	"github.com/gestorlite/erp-api/internal/application/fiscal"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ estoque.TxRunner = (*TxRunner)(nil)
var _ financeiro.TxRunner = (*TxRunner)(nil)
var _ fiscal.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Usado pelos lançamentos de estoque.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentoRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentoRepository(tx)
	estoqueRepo := NewEstoqueRepository(tx)
	produtoRepo := NewProdutoRepository(tx)

	if err := fn(movRepo, estoqueRepo, produtoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFinanceiro abre uma transação com os repositórios da baixa de conta
// (conta financeira e conta bancária mudam juntas).
func (r *TxRunner) RunFinanceiro(ctx context.Context, fn func(
	contaRepo repository.ContaFinanceiraRepository,
	bancoRepo repository.ContaBancariaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contaRepo := NewContaFinanceiraRepository(tx)
	bancoRepo := NewContaBancariaRepository(tx)

	if err := fn(contaRepo, bancoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFiscal abre a transação do processamento de nota fiscal: entradas de
// estoque, fornecedor, conta a pagar e a virada de status da nota.
func (r *TxRunner) RunFiscal(ctx context.Context, fn func(
	movRepo repository.MovimentoRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	fornecedorRepo repository.FornecedorRepository,
	notaRepo repository.NotaFiscalRepository,
	contaRepo repository.ContaFinanceiraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentoRepository(tx)
	estoqueRepo := NewEstoqueRepository(tx)
	produtoRepo := NewProdutoRepository(tx)
	fornecedorRepo := NewFornecedorRepository(tx)
	notaRepo := NewNotaFiscalRepository(tx)
	contaRepo := NewContaFinanceiraRepository(tx)

	if err := fn(movRepo, estoqueRepo, produtoRepo, fornecedorRepo, notaRepo, contaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
