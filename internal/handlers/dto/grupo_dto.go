package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// CreateGrupoRequest é o corpo de criação de grupo
type CreateGrupoRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao"`
	Ativo     *bool  `json:"ativo"`
}

// UpdateGrupoRequest é o corpo de atualização parcial de grupo
type UpdateGrupoRequest struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
}

// GrupoResponse é a visão pública de um grupo
type GrupoResponse struct {
	ID           uint      `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao"`
	Ativo        bool      `json:"ativo"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// ToGrupoResponse converte a entidade para a visão pública
func ToGrupoResponse(grupo *entities.Grupo) GrupoResponse {
	return GrupoResponse{
		ID:           grupo.ID,
		Nome:         grupo.Nome,
		Descricao:    grupo.Descricao,
		Ativo:        grupo.Ativo,
		CriadoEm:     grupo.CriadoEm,
		AtualizadoEm: grupo.AtualizadoEm,
	}
}

// ToGrupoResponses converte uma lista de grupos
func ToGrupoResponses(grupos []*entities.Grupo) []GrupoResponse {
	saida := make([]GrupoResponse, 0, len(grupos))
	for _, g := range grupos {
		saida = append(saida, ToGrupoResponse(g))
	}
	return saida
}
