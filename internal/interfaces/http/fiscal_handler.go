package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorlite/erp-api/internal/application/dto"
	"github.com/gestorlite/erp-api/internal/application/fiscal"
)

// FiscalHandler trata as rotas do pipeline de notas fiscais (protegido).
type FiscalHandler struct {
	uc *fiscal.UseCase
}

// NewFiscalHandler constrói o handler.
func NewFiscalHandler(uc *fiscal.UseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// Importar godoc
// @Summary      Importar XML de NF-e (multipart "xml" ou corpo bruto)
// @Tags         fiscal
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        xml  formData  file  true  "Arquivo XML da NF-e"
// @Success      201  {object}  dto.NotaFiscalResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/fiscal/notas [post]
func (h *FiscalHandler) Importar(c *fiber.Ctx) error {
	conteudo, err := lerXML(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "envie o XML no campo multipart 'xml' ou no corpo"})
	}
	nota, err := h.uc.ImportarXML(c.Context(), conteudo)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewNotaFiscalResponse(nota))
}

// lerXML aceita upload multipart (campo "xml") ou o corpo bruto da requisição.
func lerXML(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("xml"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	body := c.Body()
	if len(body) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return body, nil
}

// Processar godoc
// @Summary      Processar nota pendente (entradas de estoque + conta a pagar)
// @Tags         fiscal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da nota"
// @Param        body  body  dto.ProcessarNotaRequest  true  "filial_id de destino"
// @Success      200   {object}  dto.NotaFiscalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fiscal/notas/{id}/processar [post]
func (h *FiscalHandler) Processar(c *fiber.Ctx) error {
	var in dto.ProcessarNotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	nota, err := h.uc.ProcessarNota(c.Context(), c.Params("id"), in.FilialID, GetEmail(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewNotaFiscalResponse(nota))
}

// List godoc
// @Summary      Listar notas
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "PENDENTE | PROCESSADO | ERRO"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.NotaFiscalResponse
// @Router       /api/fiscal/notas [get]
func (h *FiscalHandler) List(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	notas, err := h.uc.ListarNotas(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.NotaFiscalResponse, 0, len(notas))
	for _, n := range notas {
		items = append(items, dto.NewNotaFiscalResponse(n))
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obter nota com os itens
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da nota"
// @Success      200  {object}  dto.NotaDetalheResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal/notas/{id} [get]
func (h *FiscalHandler) GetByID(c *fiber.Ctx) error {
	nota, itens, err := h.uc.BuscarNota(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewNotaDetalheResponse(nota, itens))
}
