package fiscal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appestoque "github.com/gestorlite/erp-api/internal/application/estoque"
	"github.com/gestorlite/erp-api/internal/application/fiscal"
	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/domain/entity"
	"github.com/gestorlite/erp-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type parserFake struct {
	nota *fiscal.NotaParseada
	err  error
}

func (f *parserFake) Parse(xml []byte) (*fiscal.NotaParseada, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.nota, nil
}

type produtoRepoFake struct {
	produtos map[string]*entity.Produto
}

func (f *produtoRepoFake) Create(p *entity.Produto) error {
	f.produtos[p.ID] = p
	return nil
}

func (f *produtoRepoFake) GetByID(id string) (*entity.Produto, error) {
	p, ok := f.produtos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *produtoRepoFake) GetForUpdate(id string) (*entity.Produto, error) {
	return f.GetByID(id)
}

func (f *produtoRepoFake) FindByCodigo(codigo string) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if p.Ativo && p.Codigo == codigo {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *produtoRepoFake) FindByCodigoBarras(ean string) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if p.Ativo && p.CodigoBarras == ean {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *produtoRepoFake) List(somenteAtivos bool, limit, offset int) ([]*entity.Produto, error) {
	return nil, nil
}

func (f *produtoRepoFake) Patch(id string, patch entity.ProdutoPatch) error { return nil }

func (f *produtoRepoFake) UpdateCustos(produtoID string, custoMedio, valorPago decimal.Decimal) error {
	p, ok := f.produtos[produtoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CustoMedio = custoMedio
	p.ValorPago = valorPago
	return nil
}

func (f *produtoRepoFake) RecalcularEstoqueTotal(produtoID string) error { return nil }
func (f *produtoRepoFake) Delete(id string) error                        { return nil }

type estoqueRepoFake struct {
	posicoes map[string]*entity.Estoque
}

func (f *estoqueRepoFake) Get(produtoID, filialID string) (*entity.Estoque, error) {
	if pos, ok := f.posicoes[produtoID+"|"+filialID]; ok {
		copia := *pos
		return &copia, nil
	}
	return &entity.Estoque{ProdutoID: produtoID, FilialID: filialID}, nil
}

func (f *estoqueRepoFake) GetForUpdate(produtoID, filialID string) (*entity.Estoque, error) {
	return f.Get(produtoID, filialID)
}

func (f *estoqueRepoFake) Upsert(e *entity.Estoque) error {
	copia := *e
	f.posicoes[e.ProdutoID+"|"+e.FilialID] = &copia
	return nil
}

func (f *estoqueRepoFake) ListByProduto(produtoID string) ([]*entity.Estoque, error) {
	return nil, nil
}

func (f *estoqueRepoFake) ListAbaixoMinimo(filialID string, limit, offset int) ([]*entity.Estoque, error) {
	return nil, nil
}

type movRepoFake struct {
	movimentos []*entity.MovimentoEstoque
}

func (f *movRepoFake) Create(mov *entity.MovimentoEstoque) error {
	f.movimentos = append(f.movimentos, mov)
	return nil
}

func (f *movRepoFake) GetByID(id string) (*entity.MovimentoEstoque, error) { return nil, nil }

func (f *movRepoFake) List(filtro repository.MovimentoFiltro) ([]*entity.MovimentoEstoque, error) {
	return nil, nil
}

func (f *movRepoFake) Totais(filtro repository.MovimentoFiltro) (*repository.MovimentoTotais, error) {
	return &repository.MovimentoTotais{}, nil
}

type filialRepoFake struct {
	filiais map[string]*entity.Filial
}

func (f *filialRepoFake) Create(fl *entity.Filial) error { return nil }

func (f *filialRepoFake) GetByID(id string) (*entity.Filial, error) {
	fl, ok := f.filiais[id]
	if !ok {
		return nil, nil
	}
	return fl, nil
}

func (f *filialRepoFake) List(somenteAtivas bool) ([]*entity.Filial, error) { return nil, nil }
func (f *filialRepoFake) Delete(id string) error                            { return nil }

type fornecedorRepoFake struct {
	fornecedores map[string]*entity.Fornecedor // por CNPJ
}

func (f *fornecedorRepoFake) Create(fn *entity.Fornecedor) error {
	f.fornecedores[fn.CNPJ] = fn
	return nil
}

func (f *fornecedorRepoFake) GetByID(id string) (*entity.Fornecedor, error) {
	for _, fn := range f.fornecedores {
		if fn.ID == id {
			return fn, nil
		}
	}
	return nil, nil
}

func (f *fornecedorRepoFake) GetByCNPJ(cnpj string) (*entity.Fornecedor, error) {
	fn, ok := f.fornecedores[cnpj]
	if !ok {
		return nil, nil
	}
	return fn, nil
}

func (f *fornecedorRepoFake) List(somenteAtivos bool, limit, offset int) ([]*entity.Fornecedor, error) {
	return nil, nil
}

func (f *fornecedorRepoFake) Patch(id string, patch entity.FornecedorPatch) error { return nil }
func (f *fornecedorRepoFake) Delete(id string) error                              { return nil }

type notaRepoFake struct {
	notas map[string]*entity.NotaFiscal
	itens []*entity.NotaFiscalItem

	// falhaCreateItemNo injeta erro na enésima chamada de CreateItem (1 = primeira).
	falhaCreateItemNo int
	itensCriados      int
}

func (f *notaRepoFake) Create(nota *entity.NotaFiscal) error {
	copia := *nota
	f.notas[nota.ID] = &copia
	return nil
}

func (f *notaRepoFake) CreateItem(item *entity.NotaFiscalItem) error {
	f.itensCriados++
	if f.falhaCreateItemNo > 0 && f.itensCriados == f.falhaCreateItemNo {
		return errors.New("insert item: conexão encerrada")
	}
	copia := *item
	f.itens = append(f.itens, &copia)
	return nil
}

func (f *notaRepoFake) GetByID(id string) (*entity.NotaFiscal, error) {
	nota, ok := f.notas[id]
	if !ok {
		return nil, nil
	}
	copia := *nota
	return &copia, nil
}

func (f *notaRepoFake) GetForUpdate(id string) (*entity.NotaFiscal, error) {
	return f.GetByID(id)
}

func (f *notaRepoFake) ListItens(notaID string) ([]*entity.NotaFiscalItem, error) {
	var out []*entity.NotaFiscalItem
	for _, item := range f.itens {
		if item.NotaID == notaID {
			copia := *item
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *notaRepoFake) UpdateItem(item *entity.NotaFiscalItem) error {
	for i, existente := range f.itens {
		if existente.ID == item.ID {
			copia := *item
			f.itens[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *notaRepoFake) Update(nota *entity.NotaFiscal) error {
	if _, ok := f.notas[nota.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *nota
	f.notas[nota.ID] = &copia
	return nil
}

func (f *notaRepoFake) List(status string, limit, offset int) ([]*entity.NotaFiscal, error) {
	var out []*entity.NotaFiscal
	for _, nota := range f.notas {
		if status == "" || nota.Status == status {
			out = append(out, nota)
		}
	}
	return out, nil
}

type contaRepoFake struct {
	contas      []*entity.ContaFinanceira
	falhaCreate error
}

func (f *contaRepoFake) Create(conta *entity.ContaFinanceira) error {
	if f.falhaCreate != nil {
		return f.falhaCreate
	}
	copia := *conta
	f.contas = append(f.contas, &copia)
	return nil
}

func (f *contaRepoFake) GetByID(id string) (*entity.ContaFinanceira, error)      { return nil, nil }
func (f *contaRepoFake) GetForUpdate(id string) (*entity.ContaFinanceira, error) { return nil, nil }
func (f *contaRepoFake) Update(conta *entity.ContaFinanceira) error              { return nil }

func (f *contaRepoFake) List(filtro repository.ContaFiltro) ([]*entity.ContaFinanceira, error) {
	return nil, nil
}

func (f *contaRepoFake) Delete(id string) error { return nil }

type txRunnerFake struct {
	movRepo        *movRepoFake
	estoqueRepo    *estoqueRepoFake
	produtoRepo    *produtoRepoFake
	fornecedorRepo *fornecedorRepoFake
	notaRepo       *notaRepoFake
	contaRepo      *contaRepoFake
}

func copiaMapa[T any](src map[string]*T) map[string]*T {
	out := make(map[string]*T, len(src))
	for k, v := range src {
		copia := *v
		out[k] = &copia
	}
	return out
}

func copiaLista[T any](src []*T) []*T {
	out := make([]*T, len(src))
	for i, v := range src {
		copia := *v
		out[i] = &copia
	}
	return out
}

// RunFiscal imita a transação de banco: erro devolvido pela função desfaz
// todas as escritas feitas dentro dela.
func (f *txRunnerFake) RunFiscal(ctx context.Context, fn func(
	movRepo repository.MovimentoRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	fornecedorRepo repository.FornecedorRepository,
	notaRepo repository.NotaFiscalRepository,
	contaRepo repository.ContaFinanceiraRepository,
) error) error {
	produtos := copiaMapa(f.produtoRepo.produtos)
	posicoes := copiaMapa(f.estoqueRepo.posicoes)
	movimentos := copiaLista(f.movRepo.movimentos)
	fornecedores := copiaMapa(f.fornecedorRepo.fornecedores)
	notas := copiaMapa(f.notaRepo.notas)
	itens := copiaLista(f.notaRepo.itens)
	contas := copiaLista(f.contaRepo.contas)

	err := fn(f.movRepo, f.estoqueRepo, f.produtoRepo, f.fornecedorRepo, f.notaRepo, f.contaRepo)
	if err != nil {
		f.produtoRepo.produtos = produtos
		f.estoqueRepo.posicoes = posicoes
		f.movRepo.movimentos = movimentos
		f.fornecedorRepo.fornecedores = fornecedores
		f.notaRepo.notas = notas
		f.notaRepo.itens = itens
		f.contaRepo.contas = contas
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const (
	filialID = "fil-1"
	cnpjNota = "12345678000195"
)

var agoraFixo = time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)

type cenario struct {
	uc             *fiscal.UseCase
	parser         *parserFake
	produtoRepo    *produtoRepoFake
	estoqueRepo    *estoqueRepoFake
	movRepo        *movRepoFake
	fornecedorRepo *fornecedorRepoFake
	notaRepo       *notaRepoFake
	contaRepo      *contaRepoFake
}

func novoCenario(parser *parserFake, produtos ...*entity.Produto) *cenario {
	produtoRepo := &produtoRepoFake{produtos: map[string]*entity.Produto{}}
	for _, p := range produtos {
		produtoRepo.produtos[p.ID] = p
	}
	estoqueRepo := &estoqueRepoFake{posicoes: map[string]*entity.Estoque{}}
	movRepo := &movRepoFake{}
	fornecedorRepo := &fornecedorRepoFake{fornecedores: map[string]*entity.Fornecedor{}}
	notaRepo := &notaRepoFake{notas: map[string]*entity.NotaFiscal{}}
	contaRepo := &contaRepoFake{}
	filialRepo := &filialRepoFake{filiais: map[string]*entity.Filial{
		filialID: {ID: filialID, Nome: "Matriz", Ativo: true},
	}}
	tx := &txRunnerFake{
		movRepo: movRepo, estoqueRepo: estoqueRepo, produtoRepo: produtoRepo,
		fornecedorRepo: fornecedorRepo, notaRepo: notaRepo, contaRepo: contaRepo,
	}

	// O lançador real de estoque roda dentro da transação da nota; assim o
	// pipeline é testado com o custo médio de verdade, não com um dublê.
	lancador := appestoque.NewUseCase(nil, produtoRepo, filialRepo, estoqueRepo, movRepo)

	uc := fiscal.NewUseCase(tx, parser, lancador, notaRepo, filialRepo, fiscal.Config{PrazoPagamentoDias: 28}).
		ComRelogio(func() time.Time { return agoraFixo })
	return &cenario{
		uc: uc, parser: parser, produtoRepo: produtoRepo, estoqueRepo: estoqueRepo,
		movRepo: movRepo, fornecedorRepo: fornecedorRepo, notaRepo: notaRepo, contaRepo: contaRepo,
	}
}

func notaDeCompra() *fiscal.NotaParseada {
	return &fiscal.NotaParseada{
		FornecedorCNPJ: cnpjNota,
		FornecedorNome: "Distribuidora Alfa LTDA",
		Numero:         "4512",
		ValorProdutos:  dec("700.00"),
		ValorTotal:     dec("750.00"),
		ValorICMS:      dec("84.00"),
		Itens: []fiscal.ItemParseado{
			{Codigo: "CIM50", Descricao: "Cimento CP-II 50kg", Quantidade: dec("20"), ValorUnitario: dec("30.00")},
			{Codigo: "ZZZ-DESCONHECIDO", Descricao: "Item fora do catálogo", Quantidade: dec("5"), ValorUnitario: dec("20.00")},
		},
	}
}

func produtoCimento() *entity.Produto {
	return &entity.Produto{ID: "prod-1", Nome: "Cimento CP-II 50kg", Codigo: "CIM50", Ativo: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// ImportarXML
// ──────────────────────────────────────────────────────────────────────────────

func TestImportarXML_GravaNotaPendenteComItens(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()})

	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml de teste>"))
	require.NoError(t, err)

	assert.Equal(t, entity.NotaPendente, nota.Status)
	assert.Equal(t, cnpjNota, nota.FornecedorCNPJ)
	assert.Equal(t, "4512", nota.Numero)
	assert.True(t, dec("750").Equal(nota.ValorTotal))
	assert.Equal(t, "<xml de teste>", nota.XMLConteudo, "o XML original fica guardado na nota")

	itens, err := c.notaRepo.ListItens(nota.ID)
	require.NoError(t, err)
	assert.Len(t, itens, 2)
}

func TestImportarXML_ParseInvalidoNadaGrava(t *testing.T) {
	c := novoCenario(&parserFake{err: domain.ErrXMLInvalido})

	_, err := c.uc.ImportarXML(context.Background(), []byte("lixo"))
	require.ErrorIs(t, err, domain.ErrXMLInvalido)
	assert.Empty(t, c.notaRepo.notas, "falha de parse não pode criar nota")
}

func TestImportarXML_FalhaNoMeioDosItensNadaGrava(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()})
	c.notaRepo.falhaCreateItemNo = 2

	_, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.Error(t, err)

	// Nota e itens são gravados na mesma transação: a falha no segundo item
	// não pode deixar uma nota PENDENTE com a lista pela metade.
	assert.Empty(t, c.notaRepo.notas)
	assert.Empty(t, c.notaRepo.itens)
}

// ──────────────────────────────────────────────────────────────────────────────
// ProcessarNota
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessarNota_EntradaContaEStatus(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()}, produtoCimento())
	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.NoError(t, err)

	processada, err := c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.NoError(t, err)

	// Status e contadores: uma linha casa pelo código, a outra é ignorada.
	assert.Equal(t, entity.NotaProcessado, processada.Status)
	assert.Equal(t, 1, processada.ItensProcessados)
	assert.Equal(t, 1, processada.ItensIgnorados)
	assert.Equal(t, filialID, processada.FilialID)
	require.NotNil(t, processada.ProcessadoEm)

	// Entrada no estoque da linha casada, com o número da nota no documento.
	require.Len(t, c.movRepo.movimentos, 1)
	mov := c.movRepo.movimentos[0]
	assert.Equal(t, entity.MovimentoENTRADA, mov.Tipo)
	assert.Equal(t, "prod-1", mov.ProdutoID)
	assert.True(t, dec("20").Equal(mov.Quantidade))
	assert.Equal(t, "NF 4512", mov.Documento)
	assert.Equal(t, "joao@loja.com", mov.Usuario)

	pos, _ := c.estoqueRepo.Get("prod-1", filialID)
	assert.True(t, dec("20").Equal(pos.Quantidade))
	assert.True(t, dec("30").Equal(c.produtoRepo.produtos["prod-1"].CustoMedio),
		"primeira entrada define o custo médio pelo valor da nota")

	// A linha casada aponta para o produto do catálogo.
	itens, _ := c.notaRepo.ListItens(nota.ID)
	var casada, ignorada *entity.NotaFiscalItem
	for _, item := range itens {
		if item.Codigo == "CIM50" {
			casada = item
		} else {
			ignorada = item
		}
	}
	require.NotNil(t, casada)
	assert.Equal(t, "prod-1", casada.ProdutoID)
	require.NotNil(t, ignorada)
	assert.Empty(t, ignorada.ProdutoID)

	// Fornecedor auto-cadastrado pelo CNPJ da nota.
	fornecedor, _ := c.fornecedorRepo.GetByCNPJ(cnpjNota)
	require.NotNil(t, fornecedor)
	assert.Equal(t, "Distribuidora Alfa LTDA", fornecedor.Nome)

	// Uma única conta a pagar pelo total declarado, com o prazo padrão.
	require.Len(t, c.contaRepo.contas, 1)
	conta := c.contaRepo.contas[0]
	assert.Equal(t, entity.ContaPagar, conta.Tipo)
	assert.True(t, dec("750").Equal(conta.Valor), "a conta cobre o total da nota, inclusive linhas ignoradas")
	assert.Equal(t, fornecedor.ID, conta.FornecedorID)
	assert.Equal(t, agoraFixo.AddDate(0, 0, 28), conta.Vencimento)
	assert.Contains(t, conta.Descricao, "NF 4512")
}

func TestProcessarNota_PrazoDoFornecedorPrevalece(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()}, produtoCimento())
	require.NoError(t, c.fornecedorRepo.Create(&entity.Fornecedor{
		ID: "forn-1", Nome: "Distribuidora Alfa LTDA", CNPJ: cnpjNota,
		PrazoPagamento: 45, Ativo: true,
	}))
	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.NoError(t, err)

	_, err = c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.NoError(t, err)

	require.Len(t, c.contaRepo.contas, 1)
	assert.Equal(t, agoraFixo.AddDate(0, 0, 45), c.contaRepo.contas[0].Vencimento)
	assert.Equal(t, "forn-1", c.contaRepo.contas[0].FornecedorID, "fornecedor existente não é recadastrado")
	assert.Len(t, c.fornecedorRepo.fornecedores, 1)
}

func TestProcessarNota_CasamentoPorCodigoDeBarras(t *testing.T) {
	parseada := notaDeCompra()
	parseada.Itens = []fiscal.ItemParseado{
		{Codigo: "COD-DO-FORNECEDOR", CodigoBarras: "7891234567890", Quantidade: dec("6"), ValorUnitario: dec("10.00")},
	}
	p := produtoCimento()
	p.Codigo = "OUTRO"
	p.CodigoBarras = "7891234567890"
	c := novoCenario(&parserFake{nota: parseada}, p)

	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.NoError(t, err)
	processada, err := c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.NoError(t, err)

	assert.Equal(t, 1, processada.ItensProcessados, "sem acerto de código, o EAN deve casar")
	assert.Equal(t, 0, processada.ItensIgnorados)
}

func TestProcessarNota_CodigoAmbiguoIgnoraLinha(t *testing.T) {
	p1 := produtoCimento()
	p2 := produtoCimento()
	p2.ID = "prod-2"
	parseada := notaDeCompra()
	parseada.Itens = parseada.Itens[:1] // só a linha CIM50
	c := novoCenario(&parserFake{nota: parseada}, p1, p2)

	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.NoError(t, err)
	processada, err := c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.NoError(t, err)

	assert.Equal(t, 0, processada.ItensProcessados)
	assert.Equal(t, 1, processada.ItensIgnorados, "código duplicado no catálogo é ambíguo, não entra")
	assert.Empty(t, c.movRepo.movimentos)
}

func TestProcessarNota_ReprocessamentoRejeitado(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()}, produtoCimento())
	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.NoError(t, err)

	_, err = c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.NoError(t, err)

	_, err = c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.ErrorIs(t, err, domain.ErrNotaJaProcessada)

	// A rejeição não degrada o estado terminal nem duplica efeitos.
	atual, _ := c.notaRepo.GetByID(nota.ID)
	assert.Equal(t, entity.NotaProcessado, atual.Status)
	assert.Len(t, c.movRepo.movimentos, 1)
	assert.Len(t, c.contaRepo.contas, 1)
}

func TestProcessarNota_FalhaPosParseMarcaErroEDesfazTudo(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()}, produtoCimento())
	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.NoError(t, err)

	c.contaRepo.falhaCreate = errors.New("insert conta: conexão encerrada")

	_, err = c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.Error(t, err)

	// A nota vira ERRO com a mensagem da causa, fora da transação desfeita.
	atual, _ := c.notaRepo.GetByID(nota.ID)
	require.NotNil(t, atual)
	assert.Equal(t, entity.NotaErro, atual.Status)
	assert.Contains(t, atual.MensagemErro, "conexão encerrada")

	// Nenhum efeito parcial sobrevive ao rollback.
	assert.Empty(t, c.movRepo.movimentos)
	assert.Empty(t, c.contaRepo.contas)
	assert.Empty(t, c.fornecedorRepo.fornecedores)
	pos, _ := c.estoqueRepo.Get("prod-1", filialID)
	assert.True(t, pos.Quantidade.IsZero(), "entrada desfeita não pode aparecer na posição")

	// ERRO é terminal: reprocessar é rejeitado e o estado não muda.
	c.contaRepo.falhaCreate = nil
	_, err = c.uc.ProcessarNota(context.Background(), nota.ID, filialID, "joao@loja.com")
	require.ErrorIs(t, err, domain.ErrNotaJaProcessada)
	depois, _ := c.notaRepo.GetByID(nota.ID)
	assert.Equal(t, entity.NotaErro, depois.Status)
	assert.Equal(t, atual.MensagemErro, depois.MensagemErro)
}

func TestProcessarNota_FilialInexistente(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()})
	nota, err := c.uc.ImportarXML(context.Background(), []byte("<xml>"))
	require.NoError(t, err)

	_, err = c.uc.ProcessarNota(context.Background(), nota.ID, "nao-existe", "joao@loja.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Rejeição por filial não marca a nota como ERRO.
	atual, _ := c.notaRepo.GetByID(nota.ID)
	assert.Equal(t, entity.NotaPendente, atual.Status)
	assert.Empty(t, atual.MensagemErro)
}

func TestProcessarNota_NotaInexistente(t *testing.T) {
	c := novoCenario(&parserFake{nota: notaDeCompra()})
	_, err := c.uc.ProcessarNota(context.Background(), "nao-existe", filialID, "joao@loja.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
