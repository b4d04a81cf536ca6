package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ repository.ContaBancariaRepository = (*ContaBancariaRepo)(nil)

const bancoColunas = `id, nome, banco, agencia, numero, saldo, ativo, created_at`

// ContaBancariaRepo implementação de ContaBancariaRepository sobre PostgreSQL
// (usável com pool ou tx).
type ContaBancariaRepo struct {
	q Querier
}

// NewContaBancariaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewContaBancariaRepository(q Querier) *ContaBancariaRepo {
	return &ContaBancariaRepo{q: q}
}

// Create persiste uma conta bancária.
func (r *ContaBancariaRepo) Create(conta *entity.ContaBancaria) error {
	if conta.ID == "" {
		conta.ID = uuid.New().String()
	}
	query := `
		INSERT INTO contas_bancarias (` + bancoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		conta.ID, conta.Nome, conta.Banco, conta.Agencia, conta.Numero,
		conta.Saldo, conta.Ativo, conta.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("create conta bancaria: %w", err)
	}
	return nil
}

// GetByID obtém uma conta bancária por ID.
func (r *ContaBancariaRepo) GetByID(id string) (*entity.ContaBancaria, error) {
	query := `SELECT ` + bancoColunas + ` FROM contas_bancarias WHERE id = $1`
	return r.scanUma(r.q.QueryRow(context.Background(), query, id), "get conta bancaria")
}

// GetForUpdate obtém a conta bloqueando a linha para o ajuste de saldo.
func (r *ContaBancariaRepo) GetForUpdate(id string) (*entity.ContaBancaria, error) {
	query := `SELECT ` + bancoColunas + ` FROM contas_bancarias WHERE id = $1 FOR UPDATE`
	return r.scanUma(r.q.QueryRow(context.Background(), query, id), "get conta bancaria for update")
}

func (r *ContaBancariaRepo) scanUma(row pgx.Row, op string) (*entity.ContaBancaria, error) {
	var c entity.ContaBancaria
	err := row.Scan(&c.ID, &c.Nome, &c.Banco, &c.Agencia, &c.Numero, &c.Saldo, &c.Ativo, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// UpdateSaldo grava o saldo da conta (usado pela baixa de contas).
func (r *ContaBancariaRepo) UpdateSaldo(id string, saldo decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE contas_bancarias SET saldo = $2 WHERE id = $1`, id, saldo)
	if err != nil {
		return fmt.Errorf("update saldo: %w", err)
	}
	return nil
}

// List lista contas bancárias, por nome.
func (r *ContaBancariaRepo) List(somenteAtivas bool) ([]*entity.ContaBancaria, error) {
	query := `SELECT ` + bancoColunas + ` FROM contas_bancarias`
	if somenteAtivas {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list contas bancarias: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContaBancaria
	for rows.Next() {
		var c entity.ContaBancaria
		if err := rows.Scan(&c.ID, &c.Nome, &c.Banco, &c.Agencia, &c.Numero, &c.Saldo, &c.Ativo, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conta bancaria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete remove uma conta bancária por ID.
func (r *ContaBancariaRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM contas_bancarias WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete conta bancaria: %w", err)
	}
	return nil
}
