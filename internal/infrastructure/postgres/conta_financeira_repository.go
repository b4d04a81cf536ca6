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

var _ repository.ContaFinanceiraRepository = (*ContaFinanceiraRepo)(nil)

const contaColunas = `id, tipo, descricao, valor, vencimento, valor_pago, data_pagamento, status, parcela_numero, parcela_total, fornecedor_id, cliente_id, conta_bancaria_id, created_at`

// ContaFinanceiraRepo implementação de ContaFinanceiraRepository sobre
// PostgreSQL (usável com pool ou tx).
type ContaFinanceiraRepo struct {
	q Querier
}

// NewContaFinanceiraRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewContaFinanceiraRepository(q Querier) *ContaFinanceiraRepo {
	return &ContaFinanceiraRepo{q: q}
}

func scanConta(row pgx.Row) (*entity.ContaFinanceira, error) {
	var c entity.ContaFinanceira
	var fornecedorID, clienteID, bancoID *string
	err := row.Scan(
		&c.ID, &c.Tipo, &c.Descricao, &c.Valor, &c.Vencimento, &c.ValorPago,
		&c.DataPagamento, &c.Status, &c.ParcelaNumero, &c.ParcelaTotal,
		&fornecedorID, &clienteID, &bancoID, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if fornecedorID != nil {
		c.FornecedorID = *fornecedorID
	}
	if clienteID != nil {
		c.ClienteID = *clienteID
	}
	if bancoID != nil {
		c.ContaBancariaID = *bancoID
	}
	return &c, nil
}

func nuloSeVazio(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste uma conta financeira (parcela).
func (r *ContaFinanceiraRepo) Create(conta *entity.ContaFinanceira) error {
	if conta.ID == "" {
		conta.ID = uuid.New().String()
	}
	query := `
		INSERT INTO contas_financeiras (` + contaColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		conta.ID, conta.Tipo, conta.Descricao, conta.Valor, conta.Vencimento,
		conta.ValorPago, conta.DataPagamento, conta.Status,
		conta.ParcelaNumero, conta.ParcelaTotal,
		nuloSeVazio(conta.FornecedorID), nuloSeVazio(conta.ClienteID),
		nuloSeVazio(conta.ContaBancariaID), conta.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create conta financeira: %w", err)
	}
	return nil
}

// GetByID obtém uma conta por ID.
func (r *ContaFinanceiraRepo) GetByID(id string) (*entity.ContaFinanceira, error) {
	query := `SELECT ` + contaColunas + ` FROM contas_financeiras WHERE id = $1`
	c, err := scanConta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta: %w", err)
	}
	return c, nil
}

// GetForUpdate obtém a conta bloqueando a linha (SELECT FOR UPDATE) para
// impedir baixa dupla concorrente.
func (r *ContaFinanceiraRepo) GetForUpdate(id string) (*entity.ContaFinanceira, error) {
	query := `SELECT ` + contaColunas + ` FROM contas_financeiras WHERE id = $1 FOR UPDATE`
	c, err := scanConta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta for update: %w", err)
	}
	return c, nil
}

// Update grava o estado completo da conta (usado pela baixa).
func (r *ContaFinanceiraRepo) Update(conta *entity.ContaFinanceira) error {
	query := `
		UPDATE contas_financeiras
		SET descricao = $2, valor = $3, vencimento = $4, valor_pago = $5,
		    data_pagamento = $6, status = $7, conta_bancaria_id = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		conta.ID, conta.Descricao, conta.Valor, conta.Vencimento,
		conta.ValorPago, conta.DataPagamento, conta.Status,
		nuloSeVazio(conta.ContaBancariaID),
	)
	if err != nil {
		return fmt.Errorf("update conta: %w", err)
	}
	return nil
}

// List lista contas do filtro, vencimento mais próximo primeiro.
func (r *ContaFinanceiraRepo) List(filtro repository.ContaFiltro) ([]*entity.ContaFinanceira, error) {
	query := `SELECT ` + contaColunas + ` FROM contas_financeiras WHERE 1=1`
	args := []any{}
	pos := 1
	add := func(clausula string, valor any) {
		query += fmt.Sprintf(clausula, pos)
		args = append(args, valor)
		pos++
	}
	if filtro.Tipo != "" {
		add(" AND tipo = $%d", filtro.Tipo)
	}
	if filtro.Status != "" {
		add(" AND status = $%d", filtro.Status)
	}
	if filtro.VencidasAte != nil {
		add(" AND vencimento < $%d", *filtro.VencidasAte)
	}
	if filtro.FornecedorID != "" {
		add(" AND fornecedor_id = $%d", filtro.FornecedorID)
	}
	if filtro.ClienteID != "" {
		add(" AND cliente_id = $%d", filtro.ClienteID)
	}
	query += fmt.Sprintf(" ORDER BY vencimento, parcela_numero LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contas: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContaFinanceira
	for rows.Next() {
		c, err := scanConta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conta: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete remove uma conta por ID.
func (r *ContaFinanceiraRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM contas_financeiras WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete conta: %w", err)
	}
	return nil
}
