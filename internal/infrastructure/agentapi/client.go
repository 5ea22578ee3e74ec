// Pacote agentapi fornece o cliente da API externa de métricas do agente
// de mensageria. Ele busca contagens de mensagens por canal e métricas de
// engajamento de cada usuário, autenticando por token quando configurado.
package agentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
)

// MetricasUsuario é a resposta da API externa para um usuário
type MetricasUsuario struct {
	ChatID          string         `json:"chat_id"`
	AgentID         int64          `json:"agent_id"`
	MensagensTotal  int            `json:"mensagens_total"`
	MensagensTexto  int            `json:"mensagens_texto"`
	MensagensAudio  int            `json:"mensagens_audio"`
	MensagensFoto   int            `json:"mensagens_foto"`
	UltimaInteracao *time.Time     `json:"ultima_interacao,omitempty"`
	PorDia          map[string]int `json:"por_dia,omitempty"`
}

// Client chama a API externa de métricas do agente
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     ports.Logger
}

// NewClient cria um novo cliente da API do agente
func NewClient(cfg *config.AgenteConfig, logger ports.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		logger:     logger,
	}
}

// MetricasDoUsuario busca as métricas de mensagens de um usuário no
// período informado
func (c *Client) MetricasDoUsuario(ctx context.Context, chatID string, agentID int64, inicio, fim time.Time) (*MetricasUsuario, error) {
	endpoint := fmt.Sprintf("%s/v1/agentes/%d/usuarios/%s/metricas", c.baseURL, agentID, url.PathEscape(chatID))

	query := url.Values{}
	query.Set("inicio", inicio.Format("2006-01-02"))
	query.Set("fim", fim.Format("2006-01-02"))
	fullURL := endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("falha ao montar requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao chamar API do agente: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Usuário sem métricas registradas não é erro do chamador
		return nil, fmt.Errorf("usuário %s sem métricas no agente", chatID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API do agente respondeu status %d", resp.StatusCode)
	}

	var metricas MetricasUsuario
	if err := json.NewDecoder(resp.Body).Decode(&metricas); err != nil {
		return nil, fmt.Errorf("falha ao decodificar resposta do agente: %w", err)
	}

	return &metricas, nil
}
