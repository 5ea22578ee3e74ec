package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/produtivi/financeiro-backend/docs"
	httphandlers "github.com/produtivi/financeiro-backend/internal/handlers/http"
	"github.com/produtivi/financeiro-backend/internal/handlers/ws"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/agentapi"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/chartimg"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/logging"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/storage"
	"github.com/produtivi/financeiro-backend/internal/services"
)

func main() {
	// .env é opcional; em produção tudo vem do ambiente
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("falha ao carregar configuração: ", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("iniciando financeiro backend", "env", cfg.Env)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("falha ao conectar no banco", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("falha ao migrar o schema", "error", err)
		log.Fatal(err)
	}

	// Repositories
	adminRepo := postgres.NewAdminRepository(db)
	vinculoRepo := postgres.NewAdminAgenteRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	grupoRepo := postgres.NewGrupoRepository(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	transacaoRepo := postgres.NewTransacaoRepository(db)
	metaRepo := postgres.NewMetaRepository(db)
	questionarioRepo := postgres.NewQuestionarioRepository(db)
	latenciaRepo := postgres.NewLatenciaRepository(db)
	relatorioRepo := postgres.NewRelatorioRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Clientes externos
	agenteClient := agentapi.NewClient(&cfg.Agente, logger)
	chartClient := chartimg.NewClient(&cfg.Chart)
	uploader, err := storage.NewS3Uploader(&cfg.Storage)
	if err != nil {
		logger.Error("falha ao configurar o bucket de relatórios", "error", err)
		log.Fatal(err)
	}

	// Hub de eventos do painel
	hub := ws.NewHub()

	// Services
	authService := services.NewAuthService(adminRepo, vinculoRepo, cfg.Auth.SessionSecret, cfg.Auth.SessionExpiry, logger)
	adminService := services.NewAdminService(adminRepo, uow, logger)
	vinculoService := services.NewAdminAgenteService(vinculoRepo, adminRepo, logger)
	categoriaService := services.NewCategoriaService(categoriaRepo, logger)
	grupoService := services.NewGrupoService(grupoRepo, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, grupoRepo, uow, logger)
	transacaoService := services.NewTransacaoService(transacaoRepo, usuarioRepo, categoriaRepo, hub, logger)
	metaService := services.NewMetaService(metaRepo, usuarioRepo, logger)
	questionarioService := services.NewQuestionarioService(questionarioRepo, usuarioRepo, logger)
	latenciaService := services.NewLatenciaService(latenciaRepo, usuarioRepo, logger)
	dashboardService := services.NewDashboardService(usuarioRepo, transacaoRepo, metaRepo, latenciaRepo, questionarioRepo, grupoRepo, agenteClient, logger)
	relatorioService := services.NewRelatorioService(relatorioRepo, transacaoRepo, categoriaRepo, usuarioRepo, chartClient, uploader, logger)

	// Handlers
	handlers := httphandlers.Handlers{
		Auth:         httphandlers.NewAuthHandler(authService, cfg.Env == "production"),
		Admin:        httphandlers.NewAdminHandler(adminService),
		AdminAgente:  httphandlers.NewAdminAgenteHandler(vinculoService),
		Categoria:    httphandlers.NewCategoriaHandler(categoriaService),
		Grupo:        httphandlers.NewGrupoHandler(grupoService),
		Usuario:      httphandlers.NewUsuarioHandler(usuarioService),
		Transacao:    httphandlers.NewTransacaoHandler(transacaoService, usuarioService, categoriaService),
		Meta:         httphandlers.NewMetaHandler(metaService),
		Questionario: httphandlers.NewQuestionarioHandler(questionarioService, usuarioService),
		Latencia:     httphandlers.NewLatenciaHandler(latenciaService, usuarioService),
		Dashboard:    httphandlers.NewDashboardHandler(dashboardService),
		Relatorio:    httphandlers.NewRelatorioHandler(relatorioService),
	}

	router := httphandlers.NewRouter(cfg, authService, handlers, hub)

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("servidor iniciando", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("servidor falhou", "error", err)
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("encerrando servidor")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha no shutdown", "error", err)
	}
	logger.Info("servidor encerrado")
}
