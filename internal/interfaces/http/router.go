package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorlite/erp-api/internal/application/analytics"
	"github.com/gestorlite/erp-api/internal/application/auth"
	"github.com/gestorlite/erp-api/internal/application/cadastro"
	"github.com/gestorlite/erp-api/internal/application/estoque"
	"github.com/gestorlite/erp-api/internal/application/financeiro"
	"github.com/gestorlite/erp-api/internal/application/fiscal"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProdutoUC    *cadastro.ProdutoUseCase
	ClienteUC    *cadastro.ClienteUseCase
	FornecedorUC *cadastro.FornecedorUseCase
	FilialUC     *cadastro.FilialUseCase
	BancoUC      *cadastro.ContaBancariaUseCase
	EstoqueUC    *estoque.UseCase
	FinanceiroUC *financeiro.UseCase
	FiscalUC     *fiscal.UseCase
	DashboardUC  *analytics.DashboardUseCase
	Recibos      financeiro.GeradorRecibo
	JWTSecret    string
	Empresa      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Fornecedores
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	// Filiais
	filiais := protected.Group("/filiais")
	filialHandler := NewFilialHandler(deps.FilialUC)
	filiais.Post("/", filialHandler.Create)
	filiais.Get("/", filialHandler.List)
	filiais.Get("/:id", filialHandler.GetByID)

	// Livro de estoque
	estoqueGroup := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	estoqueGroup.Post("/movimentos", estoqueHandler.RegistrarMovimento)
	estoqueGroup.Get("/movimentos", estoqueHandler.Historico)
	estoqueGroup.Get("/posicoes/:produto_id", estoqueHandler.Posicao)
	estoqueGroup.Get("/abaixo-minimo", estoqueHandler.AbaixoDoMinimo)

	// Contas a pagar/receber
	financeiroGroup := protected.Group("/financeiro")
	financeiroHandler := NewFinanceiroHandler(deps.FinanceiroUC, deps.FornecedorUC, deps.ClienteUC, deps.BancoUC, deps.Recibos, deps.Empresa)
	financeiroGroup.Post("/contas", financeiroHandler.Create)
	financeiroGroup.Get("/contas", financeiroHandler.List)
	financeiroGroup.Get("/contas/:id", financeiroHandler.GetByID)
	financeiroGroup.Post("/contas/:id/baixa", financeiroHandler.Baixar)
	financeiroGroup.Get("/contas/:id/recibo", financeiroHandler.Recibo)

	// Contas bancárias
	bancos := protected.Group("/contas-banco")
	bancoHandler := NewContaBancariaHandler(deps.BancoUC)
	bancos.Post("/", bancoHandler.Create)
	bancos.Get("/", bancoHandler.List)
	bancos.Get("/:id", bancoHandler.GetByID)

	// Pipeline fiscal (NF-e de entrada)
	fiscalGroup := protected.Group("/fiscal")
	fiscalHandler := NewFiscalHandler(deps.FiscalUC)
	fiscalGroup.Post("/notas", fiscalHandler.Importar)
	fiscalGroup.Get("/notas", fiscalHandler.List)
	fiscalGroup.Get("/notas/:id", fiscalHandler.GetByID)
	fiscalGroup.Post("/notas/:id/processar", fiscalHandler.Processar)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Resumo)
	dashboard.Get("/historico", dashboardHandler.Historico)
}
