package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColunas = `id, nome, codigo, codigo_barras, categoria, descricao, preco_venda, valor_pago, custo_medio, estoque_total, unidade_medida, fora_do_estado, ativo, created_at, updated_at`

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.ID, &p.Nome, &p.Codigo, &p.CodigoBarras, &p.Categoria, &p.Descricao,
		&p.PrecoVenda, &p.ValorPago, &p.CustoMedio, &p.EstoqueTotal,
		&p.UnidadeMedida, &p.ForaDoEstado, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo produto. Custo médio e estoque iniciam em 0.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	if produto.ID == "" {
		produto.ID = uuid.New().String()
	}
	query := `
		INSERT INTO produtos (` + produtoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Codigo, produto.CodigoBarras,
		produto.Categoria, produto.Descricao, produto.PrecoVenda, produto.ValorPago,
		produto.CustoMedio, produto.EstoqueTotal, produto.UnidadeMedida,
		produto.ForaDoEstado, produto.Ativo, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetForUpdate obtém um produto bloqueando a linha até o fim da transação.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1 FOR UPDATE`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return p, nil
}

// FindByCodigo devolve os produtos ativos com o código interno informado.
func (r *ProdutoRepo) FindByCodigo(codigo string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE codigo = $1 AND ativo ORDER BY created_at`
	return r.queryProdutos(query, codigo)
}

// FindByCodigoBarras devolve os produtos ativos com o EAN informado.
func (r *ProdutoRepo) FindByCodigoBarras(ean string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE codigo_barras = $1 AND ativo ORDER BY created_at`
	return r.queryProdutos(query, ean)
}

// List lista produtos com paginação, mais recentes primeiro.
func (r *ProdutoRepo) List(somenteAtivos bool, limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryProdutos(query, limit, offset)
}

func (r *ProdutoRepo) queryProdutos(query string, args ...any) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Patch aplica atualização parcial. Campos nil ficam como estão; custo médio,
// valor pago e estoque total nunca passam por aqui.
func (r *ProdutoRepo) Patch(id string, patch entity.ProdutoPatch) error {
	sets := []string{"updated_at = now()"}
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
	if patch.Codigo != nil {
		add("codigo", *patch.Codigo)
	}
	if patch.CodigoBarras != nil {
		add("codigo_barras", *patch.CodigoBarras)
	}
	if patch.Categoria != nil {
		add("categoria", *patch.Categoria)
	}
	if patch.Descricao != nil {
		add("descricao", *patch.Descricao)
	}
	if patch.PrecoVenda != nil {
		add("preco_venda", *patch.PrecoVenda)
	}
	if patch.UnidadeMedida != nil {
		add("unidade_medida", *patch.UnidadeMedida)
	}
	if patch.ForaDoEstado != nil {
		add("fora_do_estado", *patch.ForaDoEstado)
	}
	if patch.Ativo != nil {
		add("ativo", *patch.Ativo)
	}

	query := "UPDATE produtos SET " + strings.Join(sets, ", ") + " WHERE id = $1"
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("patch produto: %w", err)
	}
	return nil
}

// UpdateCustos grava custo médio e último valor pago (motor de estoque).
func (r *ProdutoRepo) UpdateCustos(produtoID string, custoMedio, valorPago decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET custo_medio = $2, valor_pago = $3, updated_at = now() WHERE id = $1`,
		produtoID, custoMedio, valorPago,
	)
	if err != nil {
		return fmt.Errorf("update custos: %w", err)
	}
	return nil
}

// RecalcularEstoqueTotal grava a soma das posições por filial, calculada no
// banco. COALESCE cobre produto sem nenhuma posição.
func (r *ProdutoRepo) RecalcularEstoqueTotal(produtoID string) error {
	query := `
		UPDATE produtos SET estoque_total = (
			SELECT COALESCE(SUM(quantidade), 0) FROM estoque WHERE produto_id = $1
		), updated_at = now()
		WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, produtoID); err != nil {
		return fmt.Errorf("recalcular estoque total: %w", err)
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProdutoRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
