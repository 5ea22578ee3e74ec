package agentapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

func (l noopLogger) With(args ...any) ports.Logger { return l }

func novoCliente(baseURL string) *Client {
	return NewClient(&config.AgenteConfig{
		BaseURL: baseURL,
		Token:   "token-do-agente",
		Timeout: 5,
	}, noopLogger{})
}

func TestClient_MetricasDoUsuario(t *testing.T) {
	ctx := context.Background()
	inicio := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 0, 30)

	t.Run("decodifica a resposta e envia período e token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/agentes/7/usuarios/chat-1/metricas" {
				t.Errorf("path inesperado: %s", r.URL.Path)
			}
			if r.URL.Query().Get("inicio") != "2025-06-01" || r.URL.Query().Get("fim") != "2025-07-01" {
				t.Errorf("período inesperado: %s", r.URL.RawQuery)
			}
			if r.Header.Get("Authorization") != "Bearer token-do-agente" {
				t.Errorf("token não enviado: %q", r.Header.Get("Authorization"))
			}
			json.NewEncoder(w).Encode(MetricasUsuario{
				ChatID:         "chat-1",
				AgentID:        7,
				MensagensTotal: 42,
				MensagensTexto: 30,
			})
		}))
		defer server.Close()

		metricas, err := novoCliente(server.URL).MetricasDoUsuario(ctx, "chat-1", 7, inicio, fim)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if metricas.MensagensTotal != 42 || metricas.MensagensTexto != 30 {
			t.Errorf("métricas erradas: %+v", metricas)
		}
	})

	t.Run("status não-200 vira erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		if _, err := novoCliente(server.URL).MetricasDoUsuario(ctx, "chat-1", 7, inicio, fim); err == nil {
			t.Error("esperado erro para status 500")
		}
	})

	t.Run("usuário sem métricas vira erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		if _, err := novoCliente(server.URL).MetricasDoUsuario(ctx, "chat-1", 7, inicio, fim); err == nil {
			t.Error("esperado erro para 404")
		}
	})
}
