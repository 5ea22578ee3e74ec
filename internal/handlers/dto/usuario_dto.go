package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/services"
)

// CreateUsuarioRequest é o corpo de criação de usuário
type CreateUsuarioRequest struct {
	ChatID   string `json:"chat_id"`
	AgentID  int64  `json:"agent_id" binding:"required,gt=0"`
	Nome     string `json:"nome" binding:"required"`
	Telefone string `json:"telefone" binding:"required"`
	GrupoID  *uint  `json:"grupo_id"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive deleted"`
}

// UpdateUsuarioRequest é o corpo de atualização parcial de usuário
type UpdateUsuarioRequest struct {
	ChatID   *string `json:"chat_id"`
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	GrupoID  *uint   `json:"grupo_id"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive deleted"`
}

// UsuarioResponse é a visão pública de um usuário
type UsuarioResponse struct {
	ID           uint      `json:"id"`
	ChatID       string    `json:"chat_id"`
	AgentID      int64     `json:"agent_id"`
	Nome         string    `json:"nome"`
	Telefone     string    `json:"telefone"`
	GrupoID      *uint     `json:"grupo_id,omitempty"`
	Status       string    `json:"status"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// ImportacaoResponse é o desfecho da importação em lote
type ImportacaoResponse struct {
	Criados     int                       `json:"criados"`
	Atualizados int                       `json:"atualizados"`
	Erros       []services.ErroImportacao `json:"erros"`
}

// ToUsuarioResponse converte a entidade para a visão pública
func ToUsuarioResponse(usuario *entities.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:           usuario.ID,
		ChatID:       usuario.ChatID,
		AgentID:      usuario.AgentID,
		Nome:         usuario.Nome,
		Telefone:     usuario.Telefone,
		GrupoID:      usuario.GrupoID,
		Status:       string(usuario.Status),
		CriadoEm:     usuario.CriadoEm,
		AtualizadoEm: usuario.AtualizadoEm,
	}
}

// ToUsuarioResponses converte uma lista de usuários
func ToUsuarioResponses(usuarios []*entities.Usuario) []UsuarioResponse {
	saida := make([]UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		saida = append(saida, ToUsuarioResponse(u))
	}
	return saida
}
