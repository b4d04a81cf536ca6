package cadastro

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// ProdutoUseCase operações de catálogo de produtos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// ProdutoInput entrada de criação.
type ProdutoInput struct {
	Nome          string
	Codigo        string
	CodigoBarras  string
	Categoria     string
	Descricao     string
	PrecoVenda    decimal.Decimal
	UnidadeMedida string
	ForaDoEstado  bool
}

// Criar cadastra um produto. Custo médio e estoque iniciam em zero; só o
// motor de estoque os altera depois.
func (uc *ProdutoUseCase) Criar(ctx context.Context, in ProdutoInput) (*entity.Produto, error) {
	if in.Nome == "" || in.PrecoVenda.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	um := in.UnidadeMedida
	if um == "" {
		um = "UN"
	}
	p := &entity.Produto{
		ID:            uuid.New().String(),
		Nome:          in.Nome,
		Codigo:        in.Codigo,
		CodigoBarras:  in.CodigoBarras,
		Categoria:     in.Categoria,
		Descricao:     in.Descricao,
		PrecoVenda:    in.PrecoVenda,
		CustoMedio:    decimal.Zero,
		ValorPago:     decimal.Zero,
		EstoqueTotal:  decimal.Zero,
		UnidadeMedida: um,
		ForaDoEstado:  in.ForaDoEstado,
		Ativo:         true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Buscar devolve um produto por id.
func (uc *ProdutoUseCase) Buscar(ctx context.Context, id string) (*entity.Produto, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Listar pagina o catálogo.
func (uc *ProdutoUseCase) Listar(ctx context.Context, somenteAtivos bool, limit, offset int) ([]*entity.Produto, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.repo.List(somenteAtivos, limit, offset)
}

// Atualizar aplica um patch tipado: só os campos enumerados em ProdutoPatch
// podem mudar por aqui (custos e estoque são do motor de estoque).
func (uc *ProdutoUseCase) Atualizar(ctx context.Context, id string, patch entity.ProdutoPatch) (*entity.Produto, error) {
	if patch.PrecoVenda != nil && patch.PrecoVenda.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if patch.Nome != nil && *patch.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Patch(id, patch); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(id)
}

// Remover apaga o produto do catálogo.
func (uc *ProdutoUseCase) Remover(ctx context.Context, id string) error {
	existente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
