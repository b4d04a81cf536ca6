package cadastro

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
	"github.com/gestorlite/erp-api/pkg/cnpj"
)

// FilialUseCase cadastro de filiais (inscrições estaduais). Filial é entidade
// consultada do banco, não lista compilada: cadastrar uma nova não exige
// redeploy.
type FilialUseCase struct {
	repo repository.FilialRepository
}

// NewFilialUseCase constrói o caso de uso.
func NewFilialUseCase(repo repository.FilialRepository) *FilialUseCase {
	return &FilialUseCase{repo: repo}
}

// FilialInput entrada de criação.
type FilialInput struct {
	Nome   string
	CNPJ   string
	UF     string
	Cidade string
}

// Criar cadastra uma filial.
func (uc *FilialUseCase) Criar(ctx context.Context, in FilialInput) (*entity.Filial, error) {
	if in.Nome == "" || in.UF == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.CNPJ != "" {
		if err := cnpj.Validar(in.CNPJ); err != nil {
			return nil, domain.ErrCNPJInvalido
		}
	}
	f := &entity.Filial{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CNPJ:      in.CNPJ,
		UF:        in.UF,
		Cidade:    in.Cidade,
		Ativo:     true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Listar devolve as filiais cadastradas.
func (uc *FilialUseCase) Listar(ctx context.Context, somenteAtivas bool) ([]*entity.Filial, error) {
	return uc.repo.List(somenteAtivas)
}

// Buscar devolve uma filial por id.
func (uc *FilialUseCase) Buscar(ctx context.Context, id string) (*entity.Filial, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

// ContaBancariaUseCase cadastro de contas bancárias.
type ContaBancariaUseCase struct {
	repo repository.ContaBancariaRepository
}

// NewContaBancariaUseCase constrói o caso de uso.
func NewContaBancariaUseCase(repo repository.ContaBancariaRepository) *ContaBancariaUseCase {
	return &ContaBancariaUseCase{repo: repo}
}

// ContaBancariaInput entrada de criação.
type ContaBancariaInput struct {
	Nome         string
	Banco        string
	Agencia      string
	Numero       string
	SaldoInicial decimal.Decimal
}

// Criar cadastra uma conta bancária com o saldo de abertura. Depois disso o
// saldo só muda pela baixa de contas financeiras.
func (uc *ContaBancariaUseCase) Criar(ctx context.Context, in ContaBancariaInput) (*entity.ContaBancaria, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.ContaBancaria{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Banco:     in.Banco,
		Agencia:   in.Agencia,
		Numero:    in.Numero,
		Saldo:     in.SaldoInicial,
		Ativo:     true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Listar devolve as contas bancárias.
func (uc *ContaBancariaUseCase) Listar(ctx context.Context, somenteAtivas bool) ([]*entity.ContaBancaria, error) {
	return uc.repo.List(somenteAtivas)
}

// Buscar devolve uma conta bancária por id.
func (uc *ContaBancariaUseCase) Buscar(ctx context.Context, id string) (*entity.ContaBancaria, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
