// Pacote chartimg fornece o cliente do serviço externo de renderização
// de gráficos: recebe uma configuração Chart.js e devolve os bytes da
// imagem renderizada.
package chartimg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
)

// RenderRequest é o corpo enviado ao serviço de renderização
type RenderRequest struct {
	Chart   json.RawMessage `json:"chart"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Formato string          `json:"format"`
	Fundo   string          `json:"backgroundColor,omitempty"`
}

// Client chama o serviço de renderização de gráficos
type Client struct {
	httpClient *http.Client
	renderURL  string
	renderKey  string
}

// NewClient cria um novo cliente do serviço de renderização
func NewClient(cfg *config.ChartConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		renderURL:  cfg.RenderURL,
		renderKey:  cfg.RenderKey,
	}
}

// Render envia a configuração Chart.js e devolve os bytes da imagem.
// Diferente do enriquecimento de métricas, falha aqui propaga: um
// relatório sem imagem não tem valor parcial.
func (c *Client) Render(ctx context.Context, chartConfig json.RawMessage, formato string, width, height int) ([]byte, error) {
	payload := RenderRequest{
		Chart:   chartConfig,
		Width:   width,
		Height:  height,
		Formato: formato,
		Fundo:   "white",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar configuração do gráfico: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.renderURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("falha ao montar requisição de render: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.renderKey != "" {
		req.Header.Set("X-Api-Key", c.renderKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao chamar serviço de renderização: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serviço de renderização respondeu status %d", resp.StatusCode)
	}

	imagem, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler imagem renderizada: %w", err)
	}

	if len(imagem) == 0 {
		return nil, fmt.Errorf("serviço de renderização devolveu imagem vazia")
	}

	return imagem, nil
}
