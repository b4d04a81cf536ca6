package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência de Produto (DIP).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetForUpdate bloqueia a linha do produto: a leitura do custo médio e
	// a gravação do novo custo ficam serializadas por produto, mesmo entre
	// lançamentos em filiais diferentes.
	GetForUpdate(id string) (*entity.Produto, error)
	// FindByCodigo devolve todos os produtos ativos com o código interno
	// informado (pode haver duplicidade de cadastro; o chamador decide).
	FindByCodigo(codigo string) ([]*entity.Produto, error)
	// FindByCodigoBarras devolve todos os produtos ativos com o EAN informado.
	FindByCodigoBarras(ean string) ([]*entity.Produto, error)
	List(somenteAtivos bool, limit, offset int) ([]*entity.Produto, error)
	Patch(id string, patch entity.ProdutoPatch) error
	// UpdateCustos grava custo médio e último valor pago (motor de estoque).
	UpdateCustos(produtoID string, custoMedio, valorPago decimal.Decimal) error
	// RecalcularEstoqueTotal grava em produtos.estoque_total a soma das
	// posições por filial, calculada no banco (SUM em estoque).
	RecalcularEstoqueTotal(produtoID string) error
	Delete(id string) error
}
