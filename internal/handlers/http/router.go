package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/handlers/ws"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// Handlers reúne todos os handlers da API para o registro de rotas
type Handlers struct {
	Auth         *AuthHandler
	Admin        *AdminHandler
	AdminAgente  *AdminAgenteHandler
	Categoria    *CategoriaHandler
	Grupo        *GrupoHandler
	Usuario      *UsuarioHandler
	Transacao    *TransacaoHandler
	Meta         *MetaHandler
	Questionario *QuestionarioHandler
	Latencia     *LatenciaHandler
	Dashboard    *DashboardHandler
	Relatorio    *RelatorioHandler
}

// NewRouter monta o roteador completo da aplicação.
// Política de autenticação: login é público; admins e vínculos exigem
// sessão master; todas as demais rotas de negócio aceitam API key
// (máquina, sem escopo) ou sessão (escopo de agentes do papel).
func NewRouter(
	cfg *config.Config,
	authService *services.AuthService,
	handlers Handlers,
	hub *ws.Hub,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Metrics())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protegido := middleware.APIKeyOuSessao(authService, cfg.Auth.APIKeySecret)
	master := middleware.RequireSessao(authService, string(entities.PapelMaster))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", handlers.Auth.Login)
			auth.POST("/logout", handlers.Auth.Logout)
			auth.GET("/me", middleware.RequireSessao(authService), handlers.Auth.Me)
		}

		admins := v1.Group("/admins", master)
		{
			admins.POST("", handlers.Admin.Create)
			admins.GET("", handlers.Admin.List)
			admins.GET("/:id", handlers.Admin.Get)
			admins.PUT("/:id", handlers.Admin.Update)
			admins.DELETE("/:id", handlers.Admin.Delete)
		}

		vinculos := v1.Group("/admin-agentes", master)
		{
			vinculos.POST("", handlers.AdminAgente.Create)
			vinculos.GET("", handlers.AdminAgente.List)
			vinculos.DELETE("/:id", handlers.AdminAgente.Delete)
		}

		categorias := v1.Group("/categorias", protegido)
		{
			categorias.POST("", handlers.Categoria.Create)
			categorias.GET("", handlers.Categoria.List)
			categorias.GET("/:id", handlers.Categoria.Get)
			categorias.PUT("/:id", handlers.Categoria.Update)
			categorias.DELETE("/:id", handlers.Categoria.Delete)
		}

		grupos := v1.Group("/grupos", protegido)
		{
			grupos.POST("", handlers.Grupo.Create)
			grupos.GET("", handlers.Grupo.List)
			grupos.GET("/:id", handlers.Grupo.Get)
			grupos.PUT("/:id", handlers.Grupo.Update)
			grupos.DELETE("/:id", handlers.Grupo.Delete)
		}

		usuarios := v1.Group("/usuarios", protegido)
		{
			usuarios.POST("", handlers.Usuario.Create)
			usuarios.GET("", handlers.Usuario.List)
			usuarios.POST("/importar", handlers.Usuario.Importar)
			usuarios.GET("/:id", handlers.Usuario.Get)
			usuarios.PUT("/:id", handlers.Usuario.Update)
			usuarios.DELETE("/:id", handlers.Usuario.Delete)
		}

		transacoes := v1.Group("/transacoes", protegido)
		{
			transacoes.POST("", handlers.Transacao.Create)
			transacoes.GET("", handlers.Transacao.List)
			transacoes.GET("/exportar", handlers.Transacao.Exportar)
			transacoes.GET("/:id", handlers.Transacao.Get)
			transacoes.PUT("/:id", handlers.Transacao.Update)
			transacoes.DELETE("/:id", handlers.Transacao.Delete)
		}

		metas := v1.Group("/metas", protegido)
		{
			metas.POST("", handlers.Meta.Create)
			metas.GET("", handlers.Meta.List)
			metas.GET("/:id", handlers.Meta.Get)
			metas.PUT("/:id", handlers.Meta.Update)
			metas.PUT("/:id/cumprida", handlers.Meta.MarcarCumprida)
			metas.DELETE("/:id", handlers.Meta.Delete)
		}

		questionarios := v1.Group("/questionarios", protegido)
		{
			questionarios.POST("", handlers.Questionario.Create)
			questionarios.GET("", handlers.Questionario.List)
			questionarios.GET("/exportar", handlers.Questionario.Exportar)
			questionarios.GET("/:id", handlers.Questionario.Get)
		}

		latencias := v1.Group("/latencias", protegido)
		{
			latencias.POST("", handlers.Latencia.Registrar)
			latencias.GET("", handlers.Latencia.List)
			latencias.GET("/exportar", handlers.Latencia.Exportar)
		}

		dashboard := v1.Group("/dashboard", protegido)
		{
			dashboard.GET("", handlers.Dashboard.Agregar)
			dashboard.GET("/exportar", handlers.Dashboard.Exportar)
			dashboard.GET("/ws", func(c *gin.Context) {
				ws.ServeWS(c.Writer, c.Request, hub, middleware.EscopoAgentes(c))
			})
		}

		relatorios := v1.Group("/relatorios", protegido)
		{
			relatorios.POST("", handlers.Relatorio.Gerar)
			relatorios.GET("", handlers.Relatorio.Historico)
		}
	}

	return router
}
