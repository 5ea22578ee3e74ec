// Pacote ws difunde eventos de transações criadas para os painéis
// conectados por websocket, respeitando o escopo de agentes de cada
// sessão.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// EventoTransacao é a mensagem enviada aos painéis quando uma transação
// é criada
type EventoTransacao struct {
	Evento        string          `json:"evento"`
	TransacaoID   uint            `json:"transacao_id"`
	UsuarioID     uint            `json:"usuario_id"`
	AgentID       int64           `json:"agent_id"`
	Tipo          string          `json:"tipo"`
	TipoCaixa     string          `json:"tipo_caixa"`
	Valor         decimal.Decimal `json:"valor"`
	DataTransacao time.Time       `json:"data_transacao"`
}

// Hub mantém os clientes conectados e difunde eventos para aqueles cujo
// escopo cobre o agente da transação
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// NewHub cria um hub vazio
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// TransacaoCriada implementa services.TransacaoCriadaListener: difunde a
// transação para os painéis cujo escopo cobre o agent_id do dono.
// Cliente com buffer cheio perde o evento em vez de travar o hub.
func (h *Hub) TransacaoCriada(transacao *entities.Transacao, agentID int64) {
	payload, _ := json.Marshal(EventoTransacao{
		Evento:        "transacao_criada",
		TransacaoID:   transacao.ID,
		UsuarioID:     transacao.UsuarioID,
		AgentID:       agentID,
		Tipo:          string(transacao.Tipo),
		TipoCaixa:     string(transacao.TipoCaixa),
		Valor:         transacao.Valor,
		DataTransacao: transacao.DataTransacao,
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if !client.cobre(agentID) {
			continue
		}
		select {
		case client.send <- payload:
		default:
		}
	}
}
