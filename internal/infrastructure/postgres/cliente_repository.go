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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColunas = `id, nome, email, telefone, cpf_cnpj, endereco, cidade, uf, cep, observacoes, ativo, created_at`

// ClienteRepo implementação de ClienteRepository sobre PostgreSQL (usável
// com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clientes (` + clienteColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, cliente.Email, cliente.Telefone, cliente.CpfCnpj,
		cliente.Endereco, cliente.Cidade, cliente.UF, cliente.CEP,
		cliente.Observacoes, cliente.Ativo, cliente.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.CpfCnpj, &c.Endereco,
		&c.Cidade, &c.UF, &c.CEP, &c.Observacoes, &c.Ativo, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes com paginação, por nome.
func (r *ClienteRepo) List(somenteAtivos bool, limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.CpfCnpj, &c.Endereco,
			&c.Cidade, &c.UF, &c.CEP, &c.Observacoes, &c.Ativo, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Patch aplica atualização parcial. Campos nil ficam como estão.
func (r *ClienteRepo) Patch(id string, patch entity.ClientePatch) error {
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
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Telefone != nil {
		add("telefone", *patch.Telefone)
	}
	if patch.CpfCnpj != nil {
		add("cpf_cnpj", *patch.CpfCnpj)
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
	if patch.Observacoes != nil {
		add("observacoes", *patch.Observacoes)
	}
	if patch.Ativo != nil {
		add("ativo", *patch.Ativo)
	}
	if len(sets) == 0 {
		return nil
	}
	query := "UPDATE clientes SET " + strings.Join(sets, ", ") + " WHERE id = $1"
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("patch cliente: %w", err)
	}
	return nil
}

// Delete remove um cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
