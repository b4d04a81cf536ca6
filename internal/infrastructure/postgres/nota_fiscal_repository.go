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

var _ repository.NotaFiscalRepository = (*NotaFiscalRepo)(nil)

const notaColunas = `id, fornecedor_cnpj, fornecedor_nome, numero, valor_produtos, valor_total, valor_icms, status, mensagem_erro, itens_processados, itens_ignorados, xml_conteudo, filial_id, created_at, processado_em`

// NotaFiscalRepo implementação de NotaFiscalRepository sobre PostgreSQL
// (usável com pool ou tx).
type NotaFiscalRepo struct {
	q Querier
}

// NewNotaFiscalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewNotaFiscalRepository(q Querier) *NotaFiscalRepo {
	return &NotaFiscalRepo{q: q}
}

func scanNota(row pgx.Row) (*entity.NotaFiscal, error) {
	var n entity.NotaFiscal
	var filialID *string
	err := row.Scan(
		&n.ID, &n.FornecedorCNPJ, &n.FornecedorNome, &n.Numero,
		&n.ValorProdutos, &n.ValorTotal, &n.ValorICMS, &n.Status,
		&n.MensagemErro, &n.ItensProcessados, &n.ItensIgnorados,
		&n.XMLConteudo, &filialID, &n.CreatedAt, &n.ProcessadoEm,
	)
	if err != nil {
		return nil, err
	}
	if filialID != nil {
		n.FilialID = *filialID
	}
	return &n, nil
}

// Create persiste a nota com status PENDENTE.
func (r *NotaFiscalRepo) Create(nota *entity.NotaFiscal) error {
	if nota.ID == "" {
		nota.ID = uuid.New().String()
	}
	query := `
		INSERT INTO notas_fiscais (` + notaColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		nota.ID, nota.FornecedorCNPJ, nota.FornecedorNome, nota.Numero,
		nota.ValorProdutos, nota.ValorTotal, nota.ValorICMS, nota.Status,
		nota.MensagemErro, nota.ItensProcessados, nota.ItensIgnorados,
		nota.XMLConteudo, nuloSeVazio(nota.FilialID), nota.CreatedAt, nota.ProcessadoEm,
	)
	if err != nil {
		return fmt.Errorf("create nota fiscal: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha da nota.
func (r *NotaFiscalRepo) CreateItem(item *entity.NotaFiscalItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO notas_fiscais_itens (id, nota_id, codigo, codigo_barras, descricao, quantidade, valor_unitario, produto_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.NotaID, item.Codigo, item.CodigoBarras, item.Descricao,
		item.Quantidade, item.ValorUnitario, nuloSeVazio(item.ProdutoID),
	)
	if err != nil {
		return fmt.Errorf("create item de nota: %w", err)
	}
	return nil
}

// GetByID obtém uma nota por ID.
func (r *NotaFiscalRepo) GetByID(id string) (*entity.NotaFiscal, error) {
	query := `SELECT ` + notaColunas + ` FROM notas_fiscais WHERE id = $1`
	n, err := scanNota(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota: %w", err)
	}
	return n, nil
}

// GetForUpdate obtém a nota bloqueando a linha: impede processamento duplo
// concorrente da mesma nota.
func (r *NotaFiscalRepo) GetForUpdate(id string) (*entity.NotaFiscal, error) {
	query := `SELECT ` + notaColunas + ` FROM notas_fiscais WHERE id = $1 FOR UPDATE`
	n, err := scanNota(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota for update: %w", err)
	}
	return n, nil
}

// ListItens lista as linhas de uma nota na ordem de inserção.
func (r *NotaFiscalRepo) ListItens(notaID string) ([]*entity.NotaFiscalItem, error) {
	query := `
		SELECT id, nota_id, codigo, codigo_barras, descricao, quantidade, valor_unitario, produto_id
		FROM notas_fiscais_itens WHERE nota_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, notaID)
	if err != nil {
		return nil, fmt.Errorf("list itens de nota: %w", err)
	}
	defer rows.Close()
	var list []*entity.NotaFiscalItem
	for rows.Next() {
		var i entity.NotaFiscalItem
		var produtoID *string
		if err := rows.Scan(&i.ID, &i.NotaID, &i.Codigo, &i.CodigoBarras, &i.Descricao,
			&i.Quantidade, &i.ValorUnitario, &produtoID); err != nil {
			return nil, fmt.Errorf("scan item de nota: %w", err)
		}
		if produtoID != nil {
			i.ProdutoID = *produtoID
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// UpdateItem grava o vínculo da linha com o catálogo.
func (r *NotaFiscalRepo) UpdateItem(item *entity.NotaFiscalItem) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notas_fiscais_itens SET produto_id = $2 WHERE id = $1`,
		item.ID, nuloSeVazio(item.ProdutoID),
	)
	if err != nil {
		return fmt.Errorf("update item de nota: %w", err)
	}
	return nil
}

// Update grava o estado da nota (virada de status, contadores, erro).
func (r *NotaFiscalRepo) Update(nota *entity.NotaFiscal) error {
	query := `
		UPDATE notas_fiscais
		SET status = $2, mensagem_erro = $3, itens_processados = $4,
		    itens_ignorados = $5, filial_id = $6, processado_em = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		nota.ID, nota.Status, nota.MensagemErro, nota.ItensProcessados,
		nota.ItensIgnorados, nuloSeVazio(nota.FilialID), nota.ProcessadoEm,
	)
	if err != nil {
		return fmt.Errorf("update nota: %w", err)
	}
	return nil
}

// List lista notas, mais recentes primeiro. Status vazio lista todas.
func (r *NotaFiscalRepo) List(status string, limit, offset int) ([]*entity.NotaFiscal, error) {
	query := `SELECT ` + notaColunas + ` FROM notas_fiscais`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notas: %w", err)
	}
	defer rows.Close()
	var list []*entity.NotaFiscal
	for rows.Next() {
		n, err := scanNota(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nota: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}
