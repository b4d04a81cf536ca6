package cadastro

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
	"github.com/gestorlite/erp-api/pkg/cnpj"
)

// FornecedorUseCase operações de cadastro de fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// FornecedorInput entrada de criação.
type FornecedorInput struct {
	Nome           string
	CNPJ           string
	Email          string
	Telefone       string
	Endereco       string
	Cidade         string
	UF             string
	CEP            string
	Contato        string
	PrazoPagamento int
}

// Criar cadastra um fornecedor. CNPJ, quando informado, precisa ter dígitos
// verificadores válidos e ser inédito.
func (uc *FornecedorUseCase) Criar(ctx context.Context, in FornecedorInput) (*entity.Fornecedor, error) {
	if in.Nome == "" || in.PrazoPagamento < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if in.CNPJ != "" {
		if err := cnpj.Validar(in.CNPJ); err != nil {
			return nil, domain.ErrCNPJInvalido
		}
		existente, err := uc.repo.GetByCNPJ(in.CNPJ)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
	}
	f := &entity.Fornecedor{
		ID:             uuid.New().String(),
		Nome:           in.Nome,
		CNPJ:           in.CNPJ,
		Email:          in.Email,
		Telefone:       in.Telefone,
		Endereco:       in.Endereco,
		Cidade:         in.Cidade,
		UF:             in.UF,
		CEP:            in.CEP,
		Contato:        in.Contato,
		PrazoPagamento: in.PrazoPagamento,
		Ativo:          true,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Buscar devolve um fornecedor por id.
func (uc *FornecedorUseCase) Buscar(ctx context.Context, id string) (*entity.Fornecedor, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

// Listar pagina o cadastro.
func (uc *FornecedorUseCase) Listar(ctx context.Context, somenteAtivos bool, limit, offset int) ([]*entity.Fornecedor, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.repo.List(somenteAtivos, limit, offset)
}

// Atualizar aplica um patch tipado; troca de CNPJ revalida os dígitos.
func (uc *FornecedorUseCase) Atualizar(ctx context.Context, id string, patch entity.FornecedorPatch) (*entity.Fornecedor, error) {
	if patch.Nome != nil && *patch.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if patch.CNPJ != nil && *patch.CNPJ != "" {
		if err := cnpj.Validar(*patch.CNPJ); err != nil {
			return nil, domain.ErrCNPJInvalido
		}
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

// Remover apaga o fornecedor.
func (uc *FornecedorUseCase) Remover(ctx context.Context, id string) error {
	existente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
