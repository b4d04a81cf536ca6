package repository

import "github.com/gestorlite/erp-api/internal/domain/entity"

// EstoqueRepository define o porto de persistência da posição de estoque.
type EstoqueRepository interface {
	// Get devolve a posição; sem linha, devolve posição zerada (estoque
	// inexistente não é erro).
	Get(produtoID, filialID string) (*entity.Estoque, error)
	// GetForUpdate devolve a posição bloqueando a linha (SELECT FOR UPDATE)
	// para serializar lançamentos concorrentes do mesmo par.
	GetForUpdate(produtoID, filialID string) (*entity.Estoque, error)
	Upsert(estoque *entity.Estoque) error
	ListByProduto(produtoID string) ([]*entity.Estoque, error)
	// ListAbaixoMinimo devolve posições com quantidade <= estoque mínimo.
	ListAbaixoMinimo(filialID string, limit, offset int) ([]*entity.Estoque, error)
}
