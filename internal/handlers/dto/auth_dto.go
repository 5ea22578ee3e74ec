package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// LoginRequest é o corpo do login de admin
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse devolve o token de sessão e o admin autenticado
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// AdminResponse é a visão pública de um admin
type AdminResponse struct {
	ID           uint      `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Papel        string    `json:"papel"`
	Ativo        bool      `json:"ativo"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// ToAdminResponse converte a entidade para a visão pública
func ToAdminResponse(admin *entities.Admin) AdminResponse {
	return AdminResponse{
		ID:           admin.ID,
		Nome:         admin.Nome,
		Email:        admin.Email.String(),
		Papel:        string(admin.Papel),
		Ativo:        admin.Ativo,
		CriadoEm:     admin.CriadoEm,
		AtualizadoEm: admin.AtualizadoEm,
	}
}

// ToAdminResponses converte uma lista de admins
func ToAdminResponses(admins []*entities.Admin) []AdminResponse {
	saida := make([]AdminResponse, 0, len(admins))
	for _, admin := range admins {
		saida = append(saida, ToAdminResponse(admin))
	}
	return saida
}
