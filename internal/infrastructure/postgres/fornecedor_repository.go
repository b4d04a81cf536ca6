package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

const fornecedorColunas = `id, nome, cnpj, email, telefone, endereco, cidade, uf, cep, contato, prazo_pagamento, ativo, created_at`

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL
// (usável com pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := row.Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.Email, &f.Telefone, &f.Endereco,
		&f.Cidade, &f.UF, &f.CEP, &f.Contato, &f.PrazoPagamento, &f.Ativo, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste um novo fornecedor. CNPJ é único.
func (r *FornecedorRepo) Create(fornecedor *entity.Fornecedor) error {
	if fornecedor.ID == "" {
		fornecedor.ID = uuid.New().String()
	}
	query := `
		INSERT INTO fornecedores (` + fornecedorColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		fornecedor.ID, fornecedor.Nome, fornecedor.CNPJ, fornecedor.Email,
		fornecedor.Telefone, fornecedor.Endereco, fornecedor.Cidade, fornecedor.UF,
		fornecedor.CEP, fornecedor.Contato, fornecedor.PrazoPagamento,
		fornecedor.Ativo, fornecedor.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE id = $1`
	f, err := scanFornecedor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return f, nil
}

// GetByCNPJ obtém um fornecedor pelo CNPJ (casamento no pipeline fiscal).
func (r *FornecedorRepo) GetByCNPJ(cnpj string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE cnpj = $1`
	f, err := scanFornecedor(r.q.QueryRow(context.Background(), query, cnpj))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor por cnpj: %w", err)
	}
	return f, nil
}

// List lista fornecedores com paginação, por nome.
func (r *FornecedorRepo) List(somenteAtivos bool, limit, offset int) ([]*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		f, err := scanFornecedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Patch aplica atualização parcial. Campos nil ficam como estão.
func (r *FornecedorRepo) Patch(id string, patch entity.FornecedorPatch) error {
	sets := []string{}
	args := []any{id}
	pos := 2
	add := func(coluna string, valor any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", coluna, pos))
		args = append(args, valor)
		pos++
	}
	if patch.Nome != nil {
		add("nome", *patch.Nome)
	}
	if patch.CNPJ != nil {
		add("cnpj", *patch.CNPJ)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Telefone != nil {
		add("telefone", *patch.Telefone)
	}
	if patch.Endereco != nil {
		add("endereco", *patch.Endereco)
	}
	if patch.Cidade != nil {
		add("cidade", *patch.Cidade)
	}
	if patch.UF != nil {
		add("uf", *patch.UF)
	}
	if patch.CEP != nil {
		add("cep", *patch.CEP)
	}
	if patch.Contato != nil {
		add("contato", *patch.Contato)
	}
	if patch.PrazoPagamento != nil {
		add("prazo_pagamento", *patch.PrazoPagamento)
	}
	if patch.Ativo != nil {
		add("ativo", *patch.Ativo)
	}
	if len(sets) == 0 {
		return nil
	}
	query := "UPDATE fornecedores SET " + strings.Join(sets, ", ") + " WHERE id = $1"
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("patch fornecedor: %w", err)
	}
	return nil
}

// Delete remove um fornecedor por ID.
func (r *FornecedorRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	return nil
}
