package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

func clienteDeTeste(hub *Hub, agentIDs []int64) *Client {
	client := &Client{
		send:     make(chan []byte, 16),
		agentIDs: agentIDs,
	}
	hub.register(client)
	return client
}

func transacaoDeTeste() *entities.Transacao {
	return &entities.Transacao{
		ID:            1,
		UsuarioID:     5,
		Tipo:          entities.TipoTransacaoReceita,
		TipoCaixa:     entities.TipoCaixaNegocio,
		Valor:         decimal.NewFromInt(100),
		DataTransacao: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestHub_TransacaoCriada(t *testing.T) {
	hub := NewHub()
	master := clienteDeTeste(hub, nil)
	noEscopo := clienteDeTeste(hub, []int64{7})
	foraDoEscopo := clienteDeTeste(hub, []int64{9})

	hub.TransacaoCriada(transacaoDeTeste(), 7)

	t.Run("escopo nil recebe tudo", func(t *testing.T) {
		select {
		case payload := <-master.send:
			var evento EventoTransacao
			if err := json.Unmarshal(payload, &evento); err != nil {
				t.Fatalf("payload inválido: %v", err)
			}
			if evento.Evento != "transacao_criada" || evento.AgentID != 7 {
				t.Errorf("evento errado: %+v", evento)
			}
		default:
			t.Fatal("cliente master deveria ter recebido o evento")
		}
	})

	t.Run("escopo que cobre o agente recebe", func(t *testing.T) {
		if len(noEscopo.send) != 1 {
			t.Errorf("esperado 1 evento, veio %d", len(noEscopo.send))
		}
	})

	t.Run("escopo que não cobre não recebe", func(t *testing.T) {
		if len(foraDoEscopo.send) != 0 {
			t.Errorf("cliente fora do escopo recebeu %d eventos", len(foraDoEscopo.send))
		}
	})

	t.Run("buffer cheio descarta em vez de travar", func(t *testing.T) {
		lotado := clienteDeTeste(hub, nil)
		for i := 0; i < cap(lotado.send); i++ {
			lotado.send <- []byte("ocupado")
		}

		pronto := make(chan struct{})
		go func() {
			hub.TransacaoCriada(transacaoDeTeste(), 7)
			close(pronto)
		}()
		select {
		case <-pronto:
		case <-time.After(time.Second):
			t.Fatal("difusão travou com buffer cheio")
		}
	})

	t.Run("cliente desregistrado para de receber", func(t *testing.T) {
		hub.unregister(noEscopo)
		antes := len(noEscopo.send)
		hub.TransacaoCriada(transacaoDeTeste(), 7)
		if len(noEscopo.send) != antes {
			t.Error("cliente desregistrado recebeu evento")
		}
	})
}
