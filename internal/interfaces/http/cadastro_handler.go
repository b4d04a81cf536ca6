package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorlite/erp-api/internal/application/cadastro"
	"github.com/gestorlite/erp-api/internal/application/dto"
)

// ClienteHandler trata as rotas de clientes (protegido).
type ClienteHandler struct {
	uc *cadastro.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *cadastro.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create godoc
// @Summary      Criar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cliente, err := h.uc.Criar(c.Context(), cadastro.ClienteInput{
		Nome:        in.Nome,
		Email:       in.Email,
		Telefone:    in.Telefone,
		CpfCnpj:     in.CpfCnpj,
		Endereco:    in.Endereco,
		Cidade:      in.Cidade,
		UF:          in.UF,
		CEP:         in.CEP,
		Observacoes: in.Observacoes,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewClienteResponse(cliente))
}

// GetByID godoc
// @Summary      Obter cliente por ID
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	cliente, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewClienteResponse(cliente))
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int   false  "Limite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Success      200     {array}  dto.ClienteResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	clientes, err := h.uc.Listar(c.Context(), c.QueryBool("ativos", false), limit, offset)
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for _, cl := range clientes {
		items = append(items, dto.NewClienteResponse(cl))
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Atualizar cliente (parcial)
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do cliente"
// @Param        body  body  dto.UpdateClienteRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cliente, err := h.uc.Atualizar(c.Context(), c.Params("id"), in.Patch())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewClienteResponse(cliente))
}

// Delete godoc
// @Summary      Remover cliente
// @Tags         clientes
// @Security     Bearer
// @Param        id   path  string  true  "ID do cliente"
// @Success      204  "removido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FornecedorHandler trata as rotas de fornecedores (protegido).
type FornecedorHandler struct {
	uc *cadastro.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *cadastro.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create godoc
// @Summary      Criar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFornecedorRequest  true  "Dados do fornecedor"
// @Success      201   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Criar(c.Context(), cadastro.FornecedorInput{
		Nome:           in.Nome,
		CNPJ:           in.CNPJ,
		Email:          in.Email,
		Telefone:       in.Telefone,
		Endereco:       in.Endereco,
		Cidade:         in.Cidade,
		UF:             in.UF,
		CEP:            in.CEP,
		Contato:        in.Contato,
		PrazoPagamento: in.PrazoPagamento,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewFornecedorResponse(f))
}

// GetByID godoc
// @Summary      Obter fornecedor por ID
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.FornecedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [get]
func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
	f, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewFornecedorResponse(f))
}

// List godoc
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int   false  "Limite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Success      200     {array}  dto.FornecedorResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	fornecedores, err := h.uc.Listar(c.Context(), c.QueryBool("ativos", false), limit, offset)
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		items = append(items, dto.NewFornecedorResponse(f))
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Atualizar fornecedor (parcial)
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do fornecedor"
// @Param        body  body  dto.UpdateFornecedorRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.FornecedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Atualizar(c.Context(), c.Params("id"), in.Patch())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewFornecedorResponse(f))
}

// Delete godoc
// @Summary      Remover fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Param        id   path  string  true  "ID do fornecedor"
// @Success      204  "removido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [delete]
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FilialHandler trata as rotas de filiais (protegido).
type FilialHandler struct {
	uc *cadastro.FilialUseCase
}

// NewFilialHandler constrói o handler.
func NewFilialHandler(uc *cadastro.FilialUseCase) *FilialHandler {
	return &FilialHandler{uc: uc}
}

// Create godoc
// @Summary      Criar filial
// @Tags         filiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFilialRequest  true  "Dados da filial"
// @Success      201   {object}  dto.FilialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/filiais [post]
func (h *FilialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFilialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Criar(c.Context(), cadastro.FilialInput{
		Nome:   in.Nome,
		CNPJ:   in.CNPJ,
		UF:     in.UF,
		Cidade: in.Cidade,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewFilialResponse(f))
}

// GetByID godoc
// @Summary      Obter filial por ID
// @Tags         filiais
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da filial"
// @Success      200  {object}  dto.FilialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/filiais/{id} [get]
func (h *FilialHandler) GetByID(c *fiber.Ctx) error {
	f, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.NewFilialResponse(f))
}

// List godoc
// @Summary      Listar filiais
// @Tags         filiais
// @Security     Bearer
// @Produce      json
// @Param        ativas  query  bool  false  "Somente ativas"
// @Success      200     {array}  dto.FilialResponse
// @Router       /api/filiais [get]
func (h *FilialHandler) List(c *fiber.Ctx) error {
	filiais, err := h.uc.Listar(c.Context(), c.QueryBool("ativas", false))
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.FilialResponse, 0, len(filiais))
	for _, f := range filiais {
		items = append(items, dto.NewFilialResponse(f))
	}
	return c.JSON(items)
}
