package repository

import "github.com/gestorlite/erp-api/internal/domain/entity"

// NotaFiscalRepository define o porto de persistência de notas de entrada.
type NotaFiscalRepository interface {
	Create(nota *entity.NotaFiscal) error
	CreateItem(item *entity.NotaFiscalItem) error
	GetByID(id string) (*entity.NotaFiscal, error)
	// GetForUpdate bloqueia a linha da nota: impede processamento duplo
	// concorrente da mesma nota.
	GetForUpdate(id string) (*entity.NotaFiscal, error)
	ListItens(notaID string) ([]*entity.NotaFiscalItem, error)
	UpdateItem(item *entity.NotaFiscalItem) error
	Update(nota *entity.NotaFiscal) error
	List(status string, limit, offset int) ([]*entity.NotaFiscal, error)
}
