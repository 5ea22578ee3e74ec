package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// CreateAdminRequest é o corpo de criação de admin
type CreateAdminRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=8"`
	Papel string `json:"papel" binding:"required,oneof=master admin user"`
	Ativo *bool  `json:"ativo"`
}

// UpdateAdminRequest é o corpo de atualização parcial de admin.
// Senha ausente mantém o hash atual.
type UpdateAdminRequest struct {
	Nome  *string `json:"nome"`
	Senha *string `json:"senha" binding:"omitempty,min=8"`
	Papel *string `json:"papel" binding:"omitempty,oneof=master admin user"`
	Ativo *bool   `json:"ativo"`
}

// CreateAdminAgenteRequest vincula um admin a um agente
type CreateAdminAgenteRequest struct {
	AdminID uint  `json:"admin_id" binding:"required"`
	AgentID int64 `json:"agent_id" binding:"required,gt=0"`
}

// AdminAgenteResponse é a visão pública de um vínculo admin-agente
type AdminAgenteResponse struct {
	ID       uint      `json:"id"`
	AdminID  uint      `json:"admin_id"`
	AgentID  int64     `json:"agent_id"`
	CriadoEm time.Time `json:"criado_em"`
}

// ToAdminAgenteResponse converte a entidade para a visão pública
func ToAdminAgenteResponse(vinculo *entities.AdminAgente) AdminAgenteResponse {
	return AdminAgenteResponse{
		ID:       vinculo.ID,
		AdminID:  vinculo.AdminID,
		AgentID:  vinculo.AgentID,
		CriadoEm: vinculo.CriadoEm,
	}
}

// ToAdminAgenteResponses converte uma lista de vínculos
func ToAdminAgenteResponses(vinculos []*entities.AdminAgente) []AdminAgenteResponse {
	saida := make([]AdminAgenteResponse, 0, len(vinculos))
	for _, v := range vinculos {
		saida = append(saida, ToAdminAgenteResponse(v))
	}
	return saida
}
