package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Client é uma conexão de painel. agentIDs nil significa escopo total
// (sessão master).
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	agentIDs []int64
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// cobre verifica se o escopo do cliente alcança o agente do evento
func (c *Client) cobre(agentID int64) bool {
	if c.agentIDs == nil {
		return true
	}
	for _, id := range c.agentIDs {
		if id == agentID {
			return true
		}
	}
	return false
}

// ServeWS faz o upgrade da conexão e prende a goroutine na leitura até
// o cliente desconectar
func ServeWS(w http.ResponseWriter, r *http.Request, hub *Hub, agentIDs []int64) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "falha no upgrade do websocket", http.StatusBadRequest)
		return
	}

	client := &Client{
		conn:     conn,
		send:     make(chan []byte, 16),
		agentIDs: agentIDs,
	}
	hub.register(client)
	go client.writePump(hub)
	client.readPump(hub)
}

func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump(hub *Hub) {
	ticker := time.NewTicker(50 * time.Second)
	defer func() {
		ticker.Stop()
		hub.unregister(c)
		_ = c.conn.Close()
	}()
	for {
		select {
		case mensagem, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, mensagem); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
