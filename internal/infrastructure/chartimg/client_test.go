package chartimg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
)

func novoCliente(renderURL string) *Client {
	return NewClient(&config.ChartConfig{
		RenderURL: renderURL,
		RenderKey: "chave-render",
		Timeout:   5,
	})
}

func TestClient_Render(t *testing.T) {
	ctx := context.Background()
	chart := json.RawMessage(`{"type":"pie"}`)

	t.Run("devolve os bytes da imagem", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Api-Key") != "chave-render" {
				t.Errorf("chave não enviada: %q", r.Header.Get("X-Api-Key"))
			}
			var body RenderRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("corpo inválido: %v", err)
			}
			if body.Width != 900 || body.Height != 600 || body.Formato != "png" {
				t.Errorf("parâmetros errados: %+v", body)
			}
			w.Write([]byte("bytes-da-imagem"))
		}))
		defer server.Close()

		imagem, err := novoCliente(server.URL).Render(ctx, chart, "png", 900, 600)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if string(imagem) != "bytes-da-imagem" {
			t.Errorf("imagem errada: %q", imagem)
		}
	})

	t.Run("status não-200 vira erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		if _, err := novoCliente(server.URL).Render(ctx, chart, "png", 900, 600); err == nil {
			t.Error("esperado erro para status 502")
		}
	})

	t.Run("imagem vazia vira erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		if _, err := novoCliente(server.URL).Render(ctx, chart, "png", 900, 600); err == nil {
			t.Error("esperado erro para corpo vazio")
		}
	})
}
