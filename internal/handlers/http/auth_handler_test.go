package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/handlers/middleware"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
	"github.com/produtivi/financeiro-backend/internal/services"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

func (l noopLogger) With(args ...any) ports.Logger { return l }

func novoAuthHandler(t *testing.T, expiryHoras int) *AuthHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite em memória: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}

	adminRepo := postgres.NewAdminRepository(db)
	vinculoRepo := postgres.NewAdminAgenteRepository(db)
	uow := postgres.NewUnitOfWork(db)

	adminService := services.NewAdminService(adminRepo, uow, noopLogger{})
	if _, err := adminService.Create(context.Background(), services.CreateAdminInput{
		Nome:  "Master",
		Email: "master@produtivi.com",
		Senha: "senha-forte-123",
		Papel: entities.PapelMaster,
		Ativo: true,
	}); err != nil {
		t.Fatalf("falha ao criar admin: %v", err)
	}

	authService := services.NewAuthService(adminRepo, vinculoRepo, "segredo-de-teste", expiryHoras, noopLogger{})
	return NewAuthHandler(authService, false)
}

func fazerLogin(handler *AuthHandler) *httptest.ResponseRecorder {
	router := gin.New()
	router.POST("/login", handler.Login)

	body := `{"email":"master@produtivi.com","senha":"senha-forte-123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("cookie de sessão acompanha a validade configurada", func(t *testing.T) {
		handler := novoAuthHandler(t, 2)
		w := fazerLogin(handler)

		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, veio %d: %s", w.Code, w.Body.String())
		}

		setCookie := w.Header().Get("Set-Cookie")
		if !strings.Contains(setCookie, middleware.CookieSessao+"=") {
			t.Fatalf("cookie de sessão ausente: %q", setCookie)
		}
		if !strings.Contains(setCookie, "Max-Age=7200") {
			t.Errorf("Max-Age deveria ser 7200 para expiração de 2h: %q", setCookie)
		}
	})

	t.Run("expiração não configurada cai no padrão de 12h", func(t *testing.T) {
		handler := novoAuthHandler(t, 0)
		w := fazerLogin(handler)

		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, veio %d: %s", w.Code, w.Body.String())
		}
		if setCookie := w.Header().Get("Set-Cookie"); !strings.Contains(setCookie, "Max-Age=43200") {
			t.Errorf("Max-Age deveria ser 43200 no padrão: %q", setCookie)
		}
	})

	t.Run("credenciais erradas respondem 401 sem cookie", func(t *testing.T) {
		handler := novoAuthHandler(t, 2)
		router := gin.New()
		router.POST("/login", handler.Login)

		body := `{"email":"master@produtivi.com","senha":"senha-errada-123"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperado 401, veio %d", w.Code)
		}
		if w.Header().Get("Set-Cookie") != "" {
			t.Error("login rejeitado não pode gravar cookie")
		}
	})
}
