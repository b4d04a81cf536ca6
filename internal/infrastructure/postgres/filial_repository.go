package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ repository.FilialRepository = (*FilialRepo)(nil)

// FilialRepo implementação de FilialRepository sobre PostgreSQL (usável com
// pool ou tx).
type FilialRepo struct {
	q Querier
}

// NewFilialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFilialRepository(q Querier) *FilialRepo {
	return &FilialRepo{q: q}
}

// Create persiste uma nova filial. CNPJ é único.
func (r *FilialRepo) Create(filial *entity.Filial) error {
	if filial.ID == "" {
		filial.ID = uuid.New().String()
	}
	query := `
		INSERT INTO filiais (id, nome, cnpj, uf, cidade, ativo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		filial.ID, filial.Nome, filial.CNPJ, filial.UF, filial.Cidade,
		filial.Ativo, filial.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert filial: %w", err)
	}
	return nil
}

// GetByID obtém uma filial por ID.
func (r *FilialRepo) GetByID(id string) (*entity.Filial, error) {
	query := `SELECT id, nome, cnpj, uf, cidade, ativo, created_at FROM filiais WHERE id = $1`
	var f entity.Filial
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.UF, &f.Cidade, &f.Ativo, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get filial: %w", err)
	}
	return &f, nil
}

// List lista filiais, por nome.
func (r *FilialRepo) List(somenteAtivas bool) ([]*entity.Filial, error) {
	query := `SELECT id, nome, cnpj, uf, cidade, ativo, created_at FROM filiais`
	if somenteAtivas {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list filiais: %w", err)
	}
	defer rows.Close()
	var list []*entity.Filial
	for rows.Next() {
		var f entity.Filial
		if err := rows.Scan(&f.ID, &f.Nome, &f.CNPJ, &f.UF, &f.Cidade, &f.Ativo, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan filial: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete remove uma filial por ID.
func (r *FilialRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM filiais WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete filial: %w", err)
	}
	return nil
}
