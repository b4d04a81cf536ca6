package cadastro

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// ClienteUseCase operações de cadastro de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// ClienteInput entrada de criação.
type ClienteInput struct {
	Nome        string
	Email       string
	Telefone    string
	CpfCnpj     string
	Endereco    string
	Cidade      string
	UF          string
	CEP         string
	Observacoes string
}

// Criar cadastra um cliente.
func (uc *ClienteUseCase) Criar(ctx context.Context, in ClienteInput) (*entity.Cliente, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.Cliente{
		ID:          uuid.New().String(),
		Nome:        in.Nome,
		Email:       in.Email,
		Telefone:    in.Telefone,
		CpfCnpj:     in.CpfCnpj,
		Endereco:    in.Endereco,
		Cidade:      in.Cidade,
		UF:          in.UF,
		CEP:         in.CEP,
		Observacoes: in.Observacoes,
		Ativo:       true,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Buscar devolve um cliente por id.
func (uc *ClienteUseCase) Buscar(ctx context.Context, id string) (*entity.Cliente, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Listar pagina o cadastro.
func (uc *ClienteUseCase) Listar(ctx context.Context, somenteAtivos bool, limit, offset int) ([]*entity.Cliente, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.repo.List(somenteAtivos, limit, offset)
}

// Atualizar aplica um patch tipado.
func (uc *ClienteUseCase) Atualizar(ctx context.Context, id string, patch entity.ClientePatch) (*entity.Cliente, error) {
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

// Remover apaga o cliente.
func (uc *ClienteUseCase) Remover(ctx context.Context, id string) error {
	existente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
