package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// ContaBancariaRepository define o porto de persistência de contas bancárias.
type ContaBancariaRepository interface {
	Create(conta *entity.ContaBancaria) error
	GetByID(id string) (*entity.ContaBancaria, error)
	// GetForUpdate bloqueia a linha para o ajuste de saldo da baixa.
	GetForUpdate(id string) (*entity.ContaBancaria, error)
	UpdateSaldo(id string, saldo decimal.Decimal) error
	List(somenteAtivas bool) ([]*entity.ContaBancaria, error)
	Delete(id string) error
}
