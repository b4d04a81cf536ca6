// Package nfe extrai cabeçalho e itens de uma NF-e de compra (modelo 55).
// Aceita o documento processado (nfeProc) ou a NFe isolada; o pipeline é
// agnóstico à serialização, desde que os campos obrigatórios existam.
package nfe

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/gestorlite/erp-api/internal/application/fiscal"
	"github.com/gestorlite/erp-api/internal/domain"
)

// eanSemGTIN é o marcador oficial para item sem código de barras.
const eanSemGTIN = "SEM GTIN"

// Parser implementa fiscal.ParserNota sobre etree.
type Parser struct{}

// NewParser constrói o parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extrai a NotaParseada do XML. Campo obrigatório ausente (CNPJ do
// emitente, número da nota, itens) devolve ErrXMLInvalido com contexto;
// nunca um zero por omissão.
func (p *Parser) Parse(xmlBruto []byte) (*fiscal.NotaParseada, error) {
	utf8XML, err := paraUTF8(xmlBruto)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrXMLInvalido, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(utf8XML); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrXMLInvalido, err)
	}

	infNFe := localizarInfNFe(doc)
	if infNFe == nil {
		return nil, fmt.Errorf("%w: elemento infNFe não encontrado", domain.ErrXMLInvalido)
	}

	emit := infNFe.FindElement("emit")
	if emit == nil {
		return nil, fmt.Errorf("%w: bloco emit ausente", domain.ErrXMLInvalido)
	}
	cnpj := texto(emit, "CNPJ")
	if cnpj == "" {
		return nil, fmt.Errorf("%w: CNPJ do emitente ausente", domain.ErrXMLInvalido)
	}
	nome := texto(emit, "xNome")

	numero := ""
	if ide := infNFe.FindElement("ide"); ide != nil {
		numero = texto(ide, "nNF")
	}
	if numero == "" {
		return nil, fmt.Errorf("%w: número da nota (nNF) ausente", domain.ErrXMLInvalido)
	}

	nota := &fiscal.NotaParseada{
		FornecedorCNPJ: cnpj,
		FornecedorNome: nome,
		Numero:         numero,
	}

	icmsTot := infNFe.FindElement("total/ICMSTot")
	if icmsTot == nil {
		return nil, fmt.Errorf("%w: bloco total/ICMSTot ausente", domain.ErrXMLInvalido)
	}
	if nota.ValorProdutos, err = valor(icmsTot, "vProd"); err != nil {
		return nil, err
	}
	if nota.ValorTotal, err = valor(icmsTot, "vNF"); err != nil {
		return nil, err
	}
	// vICMS pode faltar em nota de não contribuinte; aí vale zero.
	if v := texto(icmsTot, "vICMS"); v != "" {
		if nota.ValorICMS, err = valor(icmsTot, "vICMS"); err != nil {
			return nil, err
		}
	}

	dets := infNFe.FindElements("det")
	if len(dets) == 0 {
		return nil, fmt.Errorf("%w: nota sem itens (det)", domain.ErrXMLInvalido)
	}
	for i, det := range dets {
		prod := det.FindElement("prod")
		if prod == nil {
			return nil, fmt.Errorf("%w: item %d sem bloco prod", domain.ErrXMLInvalido, i+1)
		}
		item := fiscal.ItemParseado{
			Codigo:       texto(prod, "cProd"),
			CodigoBarras: normalizarEAN(texto(prod, "cEAN")),
			Descricao:    texto(prod, "xProd"),
		}
		if item.Quantidade, err = valor(prod, "qCom"); err != nil {
			return nil, err
		}
		if item.ValorUnitario, err = valor(prod, "vUnCom"); err != nil {
			return nil, err
		}
		if !item.Quantidade.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: item %d com quantidade não positiva", domain.ErrXMLInvalido, i+1)
		}
		nota.Itens = append(nota.Itens, item)
	}
	return nota, nil
}

// localizarInfNFe acha infNFe tanto em nfeProc/NFe quanto em NFe na raiz.
func localizarInfNFe(doc *etree.Document) *etree.Element {
	for _, caminho := range []string{"//nfeProc/NFe/infNFe", "//NFe/infNFe", "//infNFe"} {
		if el := doc.FindElement(caminho); el != nil {
			return el
		}
	}
	return nil
}

// texto devolve o texto do filho, sem espaços nas bordas.
func texto(parent *etree.Element, nome string) string {
	el := parent.FindElement(nome)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// valor converte o texto do filho em decimal; ausência ou lixo é erro de
// parse, não zero.
func valor(parent *etree.Element, nome string) (decimal.Decimal, error) {
	s := texto(parent, nome)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: campo %s ausente", domain.ErrXMLInvalido, nome)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: campo %s com valor %q", domain.ErrXMLInvalido, nome, s)
	}
	return d, nil
}

// normalizarEAN troca o marcador "SEM GTIN" por vazio.
func normalizarEAN(ean string) string {
	if strings.EqualFold(ean, eanSemGTIN) {
		return ""
	}
	return ean
}
