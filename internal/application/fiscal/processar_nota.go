package fiscal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	appestoque "github.com/gestorlite/erp-api/internal/application/estoque"
	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

// Config do pipeline fiscal.
type Config struct {
	// PrazoPagamentoDias define o vencimento da conta a pagar gerada pela
	// nota quando o fornecedor não tem prazo próprio. 0 = vence na data do
	// processamento.
	PrazoPagamentoDias int
}

// UseCase é o pipeline de entrada de notas fiscais: importa o XML, e em um
// processamento atômico dá entrada no estoque das linhas casadas com o
// catálogo, gera a conta a pagar e vira o status da nota.
// Máquina de estados: PENDENTE -> PROCESSADO ou PENDENTE -> ERRO (terminais).
type UseCase struct {
	txRunner   TxRunner
	parser     ParserNota
	lancador   LancadorEstoque
	notaRepo   repository.NotaFiscalRepository
	filialRepo repository.FilialRepository
	cfg        Config
	agora      func() time.Time
}

// NewUseCase constrói o pipeline.
func NewUseCase(
	txRunner TxRunner,
	parser ParserNota,
	lancador LancadorEstoque,
	notaRepo repository.NotaFiscalRepository,
	filialRepo repository.FilialRepository,
	cfg Config,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		parser:     parser,
		lancador:   lancador,
		notaRepo:   notaRepo,
		filialRepo: filialRepo,
		cfg:        cfg,
		agora:      time.Now,
	}
}

// ComRelogio troca a fonte de tempo (testes determinísticos).
func (uc *UseCase) ComRelogio(agora func() time.Time) *UseCase {
	uc.agora = agora
	return uc
}

// ImportarXML valida e grava a nota com status PENDENTE. Falha de parse não
// grava nada, e nota e itens são gravados na mesma transação: uma falha no
// meio dos itens não deixa uma PENDENTE com a lista pela metade.
func (uc *UseCase) ImportarXML(ctx context.Context, xmlBruto []byte) (*entity.NotaFiscal, error) {
	parseada, err := uc.parser.Parse(xmlBruto)
	if err != nil {
		return nil, err
	}

	agora := uc.agora()
	nota := &entity.NotaFiscal{
		ID:             uuid.New().String(),
		FornecedorCNPJ: parseada.FornecedorCNPJ,
		FornecedorNome: parseada.FornecedorNome,
		Numero:         parseada.Numero,
		ValorProdutos:  parseada.ValorProdutos,
		ValorTotal:     parseada.ValorTotal,
		ValorICMS:      parseada.ValorICMS,
		Status:         entity.NotaPendente,
		XMLConteudo:    string(xmlBruto),
		CreatedAt:      agora,
	}
	err = uc.txRunner.RunFiscal(ctx, func(
		_ repository.MovimentoRepository,
		_ repository.EstoqueRepository,
		_ repository.ProdutoRepository,
		_ repository.FornecedorRepository,
		notaRepo repository.NotaFiscalRepository,
		_ repository.ContaFinanceiraRepository,
	) error {
		if err := notaRepo.Create(nota); err != nil {
			return err
		}
		for _, item := range parseada.Itens {
			nfItem := &entity.NotaFiscalItem{
				ID:            uuid.New().String(),
				NotaID:        nota.ID,
				Codigo:        item.Codigo,
				CodigoBarras:  item.CodigoBarras,
				Descricao:     item.Descricao,
				Quantidade:    item.Quantidade,
				ValorUnitario: item.ValorUnitario,
			}
			if err := notaRepo.CreateItem(nfItem); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nota, nil
}

// ProcessarNota executa o processamento atômico de uma nota PENDENTE:
//
//  1. resolve o fornecedor pelo CNPJ (cria se não existir);
//  2. para cada item, casa o produto por código interno e depois por código
//     de barras; linha sem casamento (ou com casamento ambíguo) é ignorada
//     e contada, não é erro;
//  3. linhas casadas geram ENTRADA no estoque da filial de destino com custo
//     médio recalculado;
//  4. cria UMA conta a pagar pelo valor total declarado da nota;
//  5. vira o status para PROCESSADO.
//
// Qualquer falha pós-parse desfaz a transação inteira e marca a nota como
// ERRO com a mensagem para diagnóstico. Nota fora de PENDENTE é rejeitada.
func (uc *UseCase) ProcessarNota(ctx context.Context, notaID, filialID, usuario string) (*entity.NotaFiscal, error) {
	if notaID == "" || filialID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	filial, err := uc.filialRepo.GetByID(filialID)
	if err != nil {
		return nil, err
	}
	if filial == nil {
		return nil, domain.ErrNotFound
	}

	agora := uc.agora()
	var processada *entity.NotaFiscal

	err = uc.txRunner.RunFiscal(ctx, func(
		movRepo repository.MovimentoRepository,
		estoqueRepo repository.EstoqueRepository,
		produtoRepo repository.ProdutoRepository,
		fornecedorRepo repository.FornecedorRepository,
		notaRepo repository.NotaFiscalRepository,
		contaRepo repository.ContaFinanceiraRepository,
	) error {
		// Bloqueia a nota: dois processamentos concorrentes da mesma nota
		// ficam serializados e o segundo enxerga o status terminal.
		nota, err := notaRepo.GetForUpdate(notaID)
		if err != nil {
			return err
		}
		if nota == nil {
			return domain.ErrNotFound
		}
		if nota.Status != entity.NotaPendente {
			return domain.ErrNotaJaProcessada
		}

		fornecedor, err := uc.resolverFornecedor(fornecedorRepo, nota, agora)
		if err != nil {
			return err
		}

		itens, err := notaRepo.ListItens(notaID)
		if err != nil {
			return err
		}

		processados, ignorados := 0, 0
		for _, item := range itens {
			resultado, err := casarProduto(produtoRepo, item.Codigo, item.CodigoBarras)
			if err != nil {
				return err
			}
			if resultado.Produto == nil {
				// Cobertura parcial do catálogo é tolerada por desenho:
				// linha sem produto (ou ambígua) só é contada.
				ignorados++
				continue
			}
			valorUnitario := item.ValorUnitario
			_, err = uc.lancador.LancarNaTransacao(
				movRepo, estoqueRepo, produtoRepo,
				appestoque.MovimentoInput{
					ProdutoID:     resultado.Produto.ID,
					FilialID:      filialID,
					Tipo:          entity.MovimentoENTRADA,
					Quantidade:    item.Quantidade,
					ValorUnitario: &valorUnitario,
					Documento:     "NF " + nota.Numero,
					Usuario:       usuario,
				},
				agora,
			)
			if err != nil {
				return err
			}
			item.ProdutoID = resultado.Produto.ID
			if err := notaRepo.UpdateItem(item); err != nil {
				return err
			}
			processados++
		}

		// A conta a pagar cobre o total declarado da nota, inclusive o valor
		// das linhas ignoradas: a obrigação com o fornecedor independe da
		// cobertura do catálogo.
		prazo := uc.cfg.PrazoPagamentoDias
		if fornecedor.PrazoPagamento > 0 {
			prazo = fornecedor.PrazoPagamento
		}
		conta := &entity.ContaFinanceira{
			ID:            uuid.New().String(),
			Tipo:          entity.ContaPagar,
			Descricao:     fmt.Sprintf("NF %s - %s", nota.Numero, fornecedor.Nome),
			Valor:         nota.ValorTotal,
			Vencimento:    agora.AddDate(0, 0, prazo),
			Status:        entity.StatusPendente,
			ParcelaNumero: 1,
			ParcelaTotal:  1,
			FornecedorID:  fornecedor.ID,
			CreatedAt:     agora,
		}
		if err := contaRepo.Create(conta); err != nil {
			return err
		}

		nota.Status = entity.NotaProcessado
		nota.FilialID = filialID
		nota.ItensProcessados = processados
		nota.ItensIgnorados = ignorados
		nota.ProcessadoEm = &agora
		if err := notaRepo.Update(nota); err != nil {
			return err
		}
		processada = nota
		return nil
	})
	if err != nil {
		uc.marcarErro(notaID, err)
		return nil, err
	}
	return processada, nil
}

// resolverFornecedor busca o fornecedor pelo CNPJ da nota; sem cadastro, cria
// um novo com o nome parseado (auto-cadastro, não validação).
func (uc *UseCase) resolverFornecedor(fornecedorRepo repository.FornecedorRepository, nota *entity.NotaFiscal, agora time.Time) (*entity.Fornecedor, error) {
	fornecedor, err := fornecedorRepo.GetByCNPJ(nota.FornecedorCNPJ)
	if err != nil {
		return nil, err
	}
	if fornecedor != nil {
		return fornecedor, nil
	}
	fornecedor = &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      nota.FornecedorNome,
		CNPJ:      nota.FornecedorCNPJ,
		Ativo:     true,
		CreatedAt: agora,
	}
	if err := fornecedorRepo.Create(fornecedor); err != nil {
		return nil, err
	}
	return fornecedor, nil
}

// marcarErro grava o estado terminal ERRO com a mensagem, fora da transação
// desfeita. Nota que já saiu de PENDENTE (ex.: rejeição por reprocessamento)
// não é tocada.
func (uc *UseCase) marcarErro(notaID string, causa error) {
	if causa == domain.ErrNotaJaProcessada || causa == domain.ErrNotFound {
		return
	}
	nota, err := uc.notaRepo.GetByID(notaID)
	if err != nil || nota == nil || nota.Status != entity.NotaPendente {
		return
	}
	nota.Status = entity.NotaErro
	nota.MensagemErro = causa.Error()
	_ = uc.notaRepo.Update(nota)
}

// ListarNotas devolve notas por status (vazio = todas), mais recentes primeiro.
func (uc *UseCase) ListarNotas(ctx context.Context, status string, limit, offset int) ([]*entity.NotaFiscal, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.notaRepo.List(status, limit, offset)
}

// BuscarNota devolve a nota e seus itens.
func (uc *UseCase) BuscarNota(ctx context.Context, id string) (*entity.NotaFiscal, []*entity.NotaFiscalItem, error) {
	nota, err := uc.notaRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if nota == nil {
		return nil, nil, domain.ErrNotFound
	}
	itens, err := uc.notaRepo.ListItens(id)
	if err != nil {
		return nil, nil, err
	}
	return nota, itens, nil
}
