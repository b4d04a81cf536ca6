package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

const movimentoColunas = `id, produto_id, filial_id, tipo, quantidade, quantidade_anterior, valor_unitario, valor_total, documento, usuario, created_at`

// MovimentoRepo implementação do livro de movimentos sobre PostgreSQL
// (usável com pool ou tx). Append-only: nunca faz UPDATE nem DELETE.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// Create persiste um movimento de estoque.
func (r *MovimentoRepo) Create(mov *entity.MovimentoEstoque) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentos_estoque (` + movimentoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProdutoID, mov.FilialID, mov.Tipo, mov.Quantidade,
		mov.QuantidadeAnterior, mov.ValorUnitario, mov.ValorTotal,
		mov.Documento, mov.Usuario, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimento: %w", err)
	}
	return nil
}

// GetByID obtém um movimento por ID.
func (r *MovimentoRepo) GetByID(id string) (*entity.MovimentoEstoque, error) {
	query := `SELECT ` + movimentoColunas + ` FROM movimentos_estoque WHERE id = $1`
	var m entity.MovimentoEstoque
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProdutoID, &m.FilialID, &m.Tipo, &m.Quantidade,
		&m.QuantidadeAnterior, &m.ValorUnitario, &m.ValorTotal,
		&m.Documento, &m.Usuario, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimento: %w", err)
	}
	return &m, nil
}

// List lista movimentos do filtro, mais recentes primeiro.
func (r *MovimentoRepo) List(filtro repository.MovimentoFiltro) ([]*entity.MovimentoEstoque, error) {
	query := `SELECT ` + movimentoColunas + ` FROM movimentos_estoque WHERE 1=1`
	args, pos := filtroMovimentoArgs(&query, filtro)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentoEstoque
	for rows.Next() {
		var m entity.MovimentoEstoque
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.FilialID, &m.Tipo, &m.Quantidade,
			&m.QuantidadeAnterior, &m.ValorUnitario, &m.ValorTotal,
			&m.Documento, &m.Usuario, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Totais agrega entradas, saídas e saldo do filtro via SUM no banco.
func (r *MovimentoRepo) Totais(filtro repository.MovimentoFiltro) (*repository.MovimentoTotais, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN quantidade > 0 THEN quantidade ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN quantidade < 0 THEN -quantidade ELSE 0 END), 0),
			COALESCE(SUM(quantidade), 0)
		FROM movimentos_estoque WHERE 1=1`
	args, _ := filtroMovimentoArgs(&query, filtro)

	var t repository.MovimentoTotais
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&t.TotalEntradas, &t.TotalSaidas, &t.Saldo,
	)
	if err != nil {
		return nil, fmt.Errorf("totais movimentos: %w", err)
	}
	return &t, nil
}

// filtroMovimentoArgs anexa as cláusulas do filtro em query e devolve os
// argumentos com a próxima posição livre.
func filtroMovimentoArgs(query *string, filtro repository.MovimentoFiltro) ([]any, int) {
	args := []any{}
	pos := 1
	if filtro.ProdutoID != "" {
		*query += fmt.Sprintf(" AND produto_id = $%d", pos)
		args = append(args, filtro.ProdutoID)
		pos++
	}
	if filtro.FilialID != "" {
		*query += fmt.Sprintf(" AND filial_id = $%d", pos)
		args = append(args, filtro.FilialID)
		pos++
	}
	if filtro.De != nil {
		*query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filtro.De)
		pos++
	}
	if filtro.Ate != nil {
		*query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filtro.Ate)
		pos++
	}
	return args, pos
}
