package repository

import (
	"time"

	"github.com/gestorlite/erp-api/internal/domain/entity"
)

// ContaFiltro restringe listagens de contas financeiras.
type ContaFiltro struct {
	Tipo         string // PAGAR | RECEBER | vazio = ambos
	Status       string // PENDENTE | PAGO | vazio = todos
	VencidasAte  *time.Time
	FornecedorID string
	ClienteID    string
	Limit        int
	Offset       int
}

// ContaFinanceiraRepository define o porto de persistência de contas.
type ContaFinanceiraRepository interface {
	Create(conta *entity.ContaFinanceira) error
	GetByID(id string) (*entity.ContaFinanceira, error)
	// GetForUpdate bloqueia a linha para a baixa (evita baixa dupla
	// concorrente).
	GetForUpdate(id string) (*entity.ContaFinanceira, error)
	Update(conta *entity.ContaFinanceira) error
	List(filtro ContaFiltro) ([]*entity.ContaFinanceira, error)
	Delete(id string) error
}
