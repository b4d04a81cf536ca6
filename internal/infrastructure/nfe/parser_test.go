package nfe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorlite/erp-api/internal/domain"
	"github.com/gestorlite/erp-api/internal/infrastructure/nfe"
)

// xmlNota monta uma NF-e de teste no envelope nfeProc, com os blocos que o
// parser consome. Os campos variáveis entram por substituição para os casos
// de ausência.
func xmlNota(overrides map[string]string) []byte {
	campos := map[string]string{
		"cnpj":  "<CNPJ>12345678000195</CNPJ>",
		"xNome": "<xNome>Distribuidora Alfa LTDA</xNome>",
		"nNF":   "<nNF>4512</nNF>",
		"vICMS": "<vICMS>84.00</vICMS>",
		"dets": `
			<det nItem="1">
				<prod>
					<cProd>CIM50</cProd>
					<cEAN>7891234567890</cEAN>
					<xProd>Cimento CP-II 50kg</xProd>
					<qCom>20.0000</qCom>
					<vUnCom>30.00</vUnCom>
				</prod>
			</det>
			<det nItem="2">
				<prod>
					<cProd>AREIA-M3</cProd>
					<cEAN>SEM GTIN</cEAN>
					<xProd>Areia media m3</xProd>
					<qCom>2.5000</qCom>
					<vUnCom>40.00</vUnCom>
				</prod>
			</det>`,
	}
	for k, v := range overrides {
		campos[k] = v
	}
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
	<NFe>
		<infNFe Id="NFe35250412345678000195550010000045121000045123" versao="4.00">
			<ide>
				<cUF>35</cUF>
				{nNF}
				<mod>55</mod>
			</ide>
			<emit>
				{cnpj}
				{xNome}
			</emit>
			{dets}
			<total>
				<ICMSTot>
					{vICMS}
					<vProd>700.00</vProd>
					<vNF>750.00</vNF>
				</ICMSTot>
			</total>
		</infNFe>
	</NFe>
</nfeProc>`
	for k, v := range campos {
		doc = strings.ReplaceAll(doc, "{"+k+"}", v)
	}
	return []byte(doc)
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos válidos
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_NotaCompleta(t *testing.T) {
	parser := nfe.NewParser()

	nota, err := parser.Parse(xmlNota(nil))
	require.NoError(t, err)

	assert.Equal(t, "12345678000195", nota.FornecedorCNPJ)
	assert.Equal(t, "Distribuidora Alfa LTDA", nota.FornecedorNome)
	assert.Equal(t, "4512", nota.Numero)
	assert.Equal(t, "700", nota.ValorProdutos.String())
	assert.Equal(t, "750", nota.ValorTotal.String())
	assert.Equal(t, "84", nota.ValorICMS.String())

	require.Len(t, nota.Itens, 2)
	assert.Equal(t, "CIM50", nota.Itens[0].Codigo)
	assert.Equal(t, "7891234567890", nota.Itens[0].CodigoBarras)
	assert.Equal(t, "20", nota.Itens[0].Quantidade.String())
	assert.Equal(t, "30", nota.Itens[0].ValorUnitario.String())

	assert.Equal(t, "AREIA-M3", nota.Itens[1].Codigo)
	assert.Empty(t, nota.Itens[1].CodigoBarras, `o marcador "SEM GTIN" vira código de barras vazio`)
	assert.Equal(t, "2.5", nota.Itens[1].Quantidade.String())
}

// O parser aceita a NFe sem o envelope nfeProc (nota ainda não autorizada).
func TestParse_NFeSemEnvelope(t *testing.T) {
	parser := nfe.NewParser()
	doc := string(xmlNota(nil))
	doc = strings.ReplaceAll(doc, `<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">`, "")
	doc = strings.ReplaceAll(doc, "</nfeProc>", "")
	doc = strings.Replace(doc, "<NFe>", `<NFe xmlns="http://www.portalfiscal.inf.br/nfe">`, 1)

	nota, err := parser.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "4512", nota.Numero)
	assert.Len(t, nota.Itens, 2)
}

// vICMS ausente (nota de não contribuinte) vale zero, não é erro.
func TestParse_ICMSAusenteValeZero(t *testing.T) {
	parser := nfe.NewParser()
	nota, err := parser.Parse(xmlNota(map[string]string{"vICMS": ""}))
	require.NoError(t, err)
	assert.True(t, nota.ValorICMS.IsZero())
}

// Nota antiga em ISO-8859-1 é convertida antes do parse.
func TestParse_Latin1Convertido(t *testing.T) {
	parser := nfe.NewParser()

	doc := string(xmlNota(map[string]string{"xNome": "<xNome>A{CEDILHA}os Beta S.A.</xNome>"}))
	doc = strings.Replace(doc, `encoding="UTF-8"`, `encoding="ISO-8859-1"`, 1)

	antes, depois, ok := strings.Cut(doc, "{CEDILHA}")
	require.True(t, ok)
	raw := append([]byte(antes), 0xE7) // "ç" em ISO-8859-1
	raw = append(raw, []byte(depois)...)

	nota, err := parser.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Aços Beta S.A.", nota.FornecedorNome)
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos obrigatórios ausentes: sempre ErrXMLInvalido, nunca zero por omissão
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_CamposObrigatoriosAusentes(t *testing.T) {
	casos := []struct {
		nome      string
		overrides map[string]string
	}{
		{"sem CNPJ do emitente", map[string]string{"cnpj": ""}},
		{"sem número da nota", map[string]string{"nNF": ""}},
		{"sem itens", map[string]string{"dets": ""}},
		{"item sem quantidade", map[string]string{"dets": `
			<det nItem="1">
				<prod>
					<cProd>CIM50</cProd>
					<vUnCom>30.00</vUnCom>
				</prod>
			</det>`}},
		{"item com quantidade zero", map[string]string{"dets": `
			<det nItem="1">
				<prod>
					<cProd>CIM50</cProd>
					<qCom>0</qCom>
					<vUnCom>30.00</vUnCom>
				</prod>
			</det>`}},
		{"valor com lixo", map[string]string{"vICMS": "<vICMS>abc</vICMS>"}},
	}
	parser := nfe.NewParser()
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			_, err := parser.Parse(xmlNota(caso.overrides))
			assert.ErrorIs(t, err, domain.ErrXMLInvalido)
		})
	}
}

func TestParse_XMLMalformado(t *testing.T) {
	parser := nfe.NewParser()
	_, err := parser.Parse([]byte("<nfeProc><NFe>"))
	assert.ErrorIs(t, err, domain.ErrXMLInvalido)
}

func TestParse_SemInfNFe(t *testing.T) {
	parser := nfe.NewParser()
	_, err := parser.Parse([]byte(`<?xml version="1.0"?><outra_coisa/>`))
	assert.ErrorIs(t, err, domain.ErrXMLInvalido)
}
