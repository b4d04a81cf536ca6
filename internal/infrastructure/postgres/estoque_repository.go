package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação de EstoqueRepository sobre PostgreSQL (usável
// com pool ou tx).
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

func posicaoZerada(produtoID, filialID string) *entity.Estoque {
	return &entity.Estoque{
		ProdutoID:     produtoID,
		FilialID:      filialID,
		Quantidade:    decimal.Zero,
		QtdReservada:  decimal.Zero,
		EstoqueMinimo: decimal.Zero,
	}
}

// Get obtém a posição de um produto em uma filial. Sem linha devolve posição
// zerada: estoque inexistente não é erro.
func (r *EstoqueRepo) Get(produtoID, filialID string) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, filial_id, quantidade, qtd_reservada, estoque_minimo, updated_at
		FROM estoque WHERE produto_id = $1 AND filial_id = $2`
	var e entity.Estoque
	err := r.q.QueryRow(context.Background(), query, produtoID, filialID).Scan(
		&e.ProdutoID, &e.FilialID, &e.Quantidade, &e.QtdReservada, &e.EstoqueMinimo, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return posicaoZerada(produtoID, filialID), nil
		}
		return nil, fmt.Errorf("get estoque: %w", err)
	}
	return &e, nil
}

// GetForUpdate obtém a posição bloqueando a linha (SELECT FOR UPDATE) para
// serializar lançamentos concorrentes do mesmo par produto/filial.
func (r *EstoqueRepo) GetForUpdate(produtoID, filialID string) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, filial_id, quantidade, qtd_reservada, estoque_minimo, updated_at
		FROM estoque WHERE produto_id = $1 AND filial_id = $2
		FOR UPDATE`
	var e entity.Estoque
	err := r.q.QueryRow(context.Background(), query, produtoID, filialID).Scan(
		&e.ProdutoID, &e.FilialID, &e.Quantidade, &e.QtdReservada, &e.EstoqueMinimo, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return posicaoZerada(produtoID, filialID), nil
		}
		return nil, fmt.Errorf("get estoque for update: %w", err)
	}
	return &e, nil
}

// Upsert insere ou atualiza a posição (por produto e filial). Mantém o
// estoque mínimo já cadastrado quando a linha existe.
func (r *EstoqueRepo) Upsert(estoque *entity.Estoque) error {
	query := `
		INSERT INTO estoque (produto_id, filial_id, quantidade, qtd_reservada, estoque_minimo, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (produto_id, filial_id)
		DO UPDATE SET quantidade = EXCLUDED.quantidade, qtd_reservada = EXCLUDED.qtd_reservada, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		estoque.ProdutoID, estoque.FilialID, estoque.Quantidade, estoque.QtdReservada, estoque.EstoqueMinimo,
	)
	if err != nil {
		return fmt.Errorf("upsert estoque: %w", err)
	}
	return nil
}

// ListByProduto lista as posições de um produto em todas as filiais.
func (r *EstoqueRepo) ListByProduto(produtoID string) ([]*entity.Estoque, error) {
	query := `
		SELECT produto_id, filial_id, quantidade, qtd_reservada, estoque_minimo, updated_at
		FROM estoque WHERE produto_id = $1 ORDER BY filial_id`
	return r.queryPosicoes(query, produtoID)
}

// ListAbaixoMinimo lista posições com quantidade menor ou igual ao mínimo.
// FilialID vazio considera todas as filiais.
func (r *EstoqueRepo) ListAbaixoMinimo(filialID string, limit, offset int) ([]*entity.Estoque, error) {
	query := `
		SELECT produto_id, filial_id, quantidade, qtd_reservada, estoque_minimo, updated_at
		FROM estoque WHERE estoque_minimo > 0 AND quantidade <= estoque_minimo`
	args := []any{}
	pos := 1
	if filialID != "" {
		query += fmt.Sprintf(" AND filial_id = $%d", pos)
		args = append(args, filialID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY quantidade LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryPosicoes(query, args...)
}

func (r *EstoqueRepo) queryPosicoes(query string, args ...any) ([]*entity.Estoque, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list estoque: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estoque
	for rows.Next() {
		var e entity.Estoque
		if err := rows.Scan(&e.ProdutoID, &e.FilialID, &e.Quantidade, &e.QtdReservada, &e.EstoqueMinimo, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
