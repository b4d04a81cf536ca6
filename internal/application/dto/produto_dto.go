package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// CreateProdutoRequest entrada para criar um produto.
type CreateProdutoRequest struct {
	Nome          string          `json:"nome" validate:"required,min=1,max=200"`
	Codigo        string          `json:"codigo"`
	CodigoBarras  string          `json:"codigo_barras"`
	Categoria     string          `json:"categoria"`
	Descricao     string          `json:"descricao"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	UnidadeMedida string          `json:"unidade_medida"`
	ForaDoEstado  bool            `json:"fora_do_estado"`
}

// UpdateProdutoRequest entrada para atualização parcial (sem custo nem
// estoque: esses só mudam via movimentos).
type UpdateProdutoRequest struct {
	Nome          *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Codigo        *string          `json:"codigo"`
	CodigoBarras  *string          `json:"codigo_barras"`
	Categoria     *string          `json:"categoria"`
	Descricao     *string          `json:"descricao"`
	PrecoVenda    *decimal.Decimal `json:"preco_venda"`
	UnidadeMedida *string          `json:"unidade_medida"`
	ForaDoEstado  *bool            `json:"fora_do_estado"`
	Ativo         *bool            `json:"ativo"`
}

// Patch converte o request no patch de domínio.
func (r UpdateProdutoRequest) Patch() entity.ProdutoPatch {
	return entity.ProdutoPatch{
		Nome:          r.Nome,
		Codigo:        r.Codigo,
		CodigoBarras:  r.CodigoBarras,
		Categoria:     r.Categoria,
		Descricao:     r.Descricao,
		PrecoVenda:    r.PrecoVenda,
		UnidadeMedida: r.UnidadeMedida,
		ForaDoEstado:  r.ForaDoEstado,
		Ativo:         r.Ativo,
	}
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Codigo        string          `json:"codigo"`
	CodigoBarras  string          `json:"codigo_barras"`
	Categoria     string          `json:"categoria"`
	Descricao     string          `json:"descricao"`
	PrecoVenda    decimal.Decimal `json:"preco_venda"`
	ValorPago     decimal.Decimal `json:"valor_pago"`
	CustoMedio    decimal.Decimal `json:"custo_medio"`
	EstoqueTotal  decimal.Decimal `json:"estoque_total"`
	UnidadeMedida string          `json:"unidade_medida"`
	ForaDoEstado  bool            `json:"fora_do_estado"`
	Ativo         bool            `json:"ativo"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProdutoResponse converte a entidade na resposta HTTP.
func NewProdutoResponse(p *entity.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Codigo:        p.Codigo,
		CodigoBarras:  p.CodigoBarras,
		Categoria:     p.Categoria,
		Descricao:     p.Descricao,
		PrecoVenda:    p.PrecoVenda,
		ValorPago:     p.ValorPago,
		CustoMedio:    p.CustoMedio,
		EstoqueTotal:  p.EstoqueTotal,
		UnidadeMedida: p.UnidadeMedida,
		ForaDoEstado:  p.ForaDoEstado,
		Ativo:         p.Ativo,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ProdutoListResponse lista paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
