package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestorlite/erp-api/internal/application/analytics"
	"github.com/gestorlite/erp-api/internal/application/auth"
	"github.com/gestorlite/erp-api/internal/application/cadastro"
	"github.com/gestorlite/erp-api/internal/application/estoque"
	"github.com/gestorlite/erp-api/internal/application/financeiro"
	"github.com/gestorlite/erp-api/internal/application/fiscal"
	infranfe "github.com/gestorlite/erp-api/internal/infrastructure/nfe"
	infrapdf "github.com/gestorlite/erp-api/internal/infrastructure/pdf"
	"github.com/gestorlite/erp-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorlite/erp-api/internal/interfaces/http"
	"github.com/gestorlite/erp-api/pkg/config"
	"github.com/gestorlite/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	filialRepo := postgres.NewFilialRepository(pool)
	bancoRepo := postgres.NewContaBancariaRepository(pool)
	contaRepo := postgres.NewContaFinanceiraRepository(pool)
	notaRepo := postgres.NewNotaFiscalRepository(pool)
	estoqueRepo := postgres.NewEstoqueRepository(pool)
	movRepo := postgres.NewMovimentoRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produtoUC := cadastro.NewProdutoUseCase(produtoRepo)
	clienteUC := cadastro.NewClienteUseCase(clienteRepo)
	fornecedorUC := cadastro.NewFornecedorUseCase(fornecedorRepo)
	filialUC := cadastro.NewFilialUseCase(filialRepo)
	bancoUC := cadastro.NewContaBancariaUseCase(bancoRepo)

	estoqueUC := estoque.NewUseCase(txRunner, produtoRepo, filialRepo, estoqueRepo, movRepo)
	financeiroUC := financeiro.NewUseCase(txRunner, contaRepo)

	// O caso de uso de estoque também serve de lançador para o pipeline
	// fiscal: a entrada de nota reaproveita a mesma trilha transacional.
	fiscalUC := fiscal.NewUseCase(
		txRunner, infranfe.NewParser(), estoqueUC, notaRepo, filialRepo,
		fiscal.Config{PrazoPagamentoDias: cfg.Fiscal.PrazoPagamentoDias},
	)

	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err := authUC.SeedAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminSenha); err != nil {
		log.Fatal().Err(err).Msg("seed do usuário administrador")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProdutoUC:    produtoUC,
		ClienteUC:    clienteUC,
		FornecedorUC: fornecedorUC,
		FilialUC:     filialUC,
		BancoUC:      bancoUC,
		EstoqueUC:    estoqueUC,
		FinanceiroUC: financeiroUC,
		FiscalUC:     fiscalUC,
		DashboardUC:  dashboardUC,
		Recibos:      infrapdf.NewReciboMaroto(),
		JWTSecret:    cfg.JWT.Secret,
		Empresa:      cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
