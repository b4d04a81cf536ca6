package fiscal

import (
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// Resultado do casamento de um item da nota com o catálogo.
const (
	CasamentoUnico         = "UNICO"
	CasamentoAmbiguo       = "AMBIGUO"
	CasamentoNaoEncontrado = "NAO_ENCONTRADO"
)

// Casamento é o desfecho explícito da busca: em vez de pegar o primeiro
// resultado em silêncio, duplicidade de cadastro vira AMBIGUO e a linha é
// ignorada pelo pipeline.
type Casamento struct {
	Desfecho string
	Produto  *entity.Produto
}

// casarProduto tenta o código interno primeiro; um acerto único de código
// encerra a busca sem consultar o código de barras. Sem acerto de código,
// tenta o EAN. Mais de um produto com o mesmo código/EAN é AMBIGUO.
func casarProduto(produtoRepo repository.ProdutoRepository, codigo, ean string) (*Casamento, error) {
	if codigo != "" {
		porCodigo, err := produtoRepo.FindByCodigo(codigo)
		if err != nil {
			return nil, err
		}
		if len(porCodigo) == 1 {
			return &Casamento{Desfecho: CasamentoUnico, Produto: porCodigo[0]}, nil
		}
		if len(porCodigo) > 1 {
			return &Casamento{Desfecho: CasamentoAmbiguo}, nil
		}
	}
	if ean != "" {
		porEAN, err := produtoRepo.FindByCodigoBarras(ean)
		if err != nil {
			return nil, err
		}
		if len(porEAN) == 1 {
			return &Casamento{Desfecho: CasamentoUnico, Produto: porEAN[0]}, nil
		}
		if len(porEAN) > 1 {
			return &Casamento{Desfecho: CasamentoAmbiguo}, nil
		}
	}
	return &Casamento{Desfecho: CasamentoNaoEncontrado}, nil
}
