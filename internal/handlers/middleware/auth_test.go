package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
	"github.com/produtivi/financeiro-backend/internal/services"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

func (l noopLogger) With(args ...any) ports.Logger { return l }

// tokensDeTeste sobe um banco em memória com um master e um admin
// comum já autenticados
func tokensDeTeste(t *testing.T) (authService *services.AuthService, tokenMaster, tokenAdmin string) {
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
	authService = services.NewAuthService(adminRepo, vinculoRepo, "segredo-de-teste", 1, noopLogger{})

	ctx := context.Background()
	contas := []struct {
		email string
		papel entities.Papel
	}{
		{"master@produtivi.com", entities.PapelMaster},
		{"admin@produtivi.com", entities.PapelAdmin},
	}
	tokens := make([]string, 0, 2)
	for _, conta := range contas {
		if _, err := adminService.Create(ctx, services.CreateAdminInput{
			Nome:  "Conta de Teste",
			Email: conta.email,
			Senha: "senha-forte-123",
			Papel: conta.papel,
			Ativo: true,
		}); err != nil {
			t.Fatalf("falha ao criar admin: %v", err)
		}
		token, _, err := authService.Login(ctx, conta.email, "senha-forte-123")
		if err != nil {
			t.Fatalf("falha no login: %v", err)
		}
		tokens = append(tokens, token)
	}
	return authService, tokens[0], tokens[1]
}

func requisicao(handler gin.HandlerFunc, ajustar func(*http.Request)) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/protegida", handler, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if ajustar != nil {
		ajustar(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidarAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	casos := []struct {
		nome    string
		secret  string
		headers map[string]string
		espera  bool
	}{
		{"X-Api-Key exata passa", "chave-secreta", map[string]string{"X-Api-Key": "chave-secreta"}, true},
		{"Bearer no Authorization passa", "chave-secreta", map[string]string{"Authorization": "Bearer chave-secreta"}, true},
		{"caixa diferente não passa", "chave-secreta", map[string]string{"X-Api-Key": "Chave-Secreta"}, false},
		{"sem header não passa", "chave-secreta", nil, false},
		{"segredo vazio nunca passa", "", map[string]string{"X-Api-Key": ""}, false},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range caso.headers {
				c.Request.Header.Set(k, v)
			}
			if got := ValidarAPIKey(c, caso.secret); got != caso.espera {
				t.Errorf("esperado %v, veio %v", caso.espera, got)
			}
		})
	}
}

func TestRequireSessao(t *testing.T) {
	authService, tokenMaster, tokenAdmin := tokensDeTeste(t)
	somenteMaster := RequireSessao(authService, string(entities.PapelMaster))

	t.Run("sem token responde 401", func(t *testing.T) {
		w := requisicao(somenteMaster, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperado 401, veio %d", w.Code)
		}
	})

	t.Run("token inválido responde 401", func(t *testing.T) {
		w := requisicao(somenteMaster, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer token-qualquer")
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperado 401, veio %d", w.Code)
		}
	})

	t.Run("papel sem permissão responde 403", func(t *testing.T) {
		w := requisicao(somenteMaster, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+tokenAdmin)
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("esperado 403, veio %d", w.Code)
		}
	})

	t.Run("master passa pelo cookie de sessão", func(t *testing.T) {
		w := requisicao(somenteMaster, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieSessao, Value: tokenMaster})
		})
		if w.Code != http.StatusOK {
			t.Errorf("esperado 200, veio %d", w.Code)
		}
	})
}

func TestAPIKeyOuSessao(t *testing.T) {
	authService, tokenMaster, _ := tokensDeTeste(t)
	protegido := APIKeyOuSessao(authService, "chave-secreta")

	t.Run("API key válida passa sem sessão", func(t *testing.T) {
		w := requisicao(protegido, func(r *http.Request) {
			r.Header.Set("X-Api-Key", "chave-secreta")
		})
		if w.Code != http.StatusOK {
			t.Errorf("esperado 200, veio %d", w.Code)
		}
	})

	t.Run("sessão válida passa sem API key", func(t *testing.T) {
		w := requisicao(protegido, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+tokenMaster)
		})
		if w.Code != http.StatusOK {
			t.Errorf("esperado 200, veio %d", w.Code)
		}
	})

	t.Run("sem credenciais responde 401", func(t *testing.T) {
		w := requisicao(protegido, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperado 401, veio %d", w.Code)
		}
	})
}
