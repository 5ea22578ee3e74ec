package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// RegistrarLatenciaRequest é o corpo de registro de uma medição.
// A latência em segundos é derivada no servidor, nunca aceita aqui.
type RegistrarLatenciaRequest struct {
	UsuarioID       uint      `json:"usuario_id" binding:"required"`
	MomentoLembrete time.Time `json:"momento_lembrete" binding:"required"`
	MomentoResposta time.Time `json:"momento_resposta" binding:"required"`
	TipoLembrete    string    `json:"tipo_lembrete"`
	Respondeu       *bool     `json:"respondeu"`
}

// LatenciaResponse é a visão pública de uma medição
type LatenciaResponse struct {
	ID               uint      `json:"id"`
	UsuarioID        uint      `json:"usuario_id"`
	AgentID          int64     `json:"agent_id"`
	MomentoLembrete  time.Time `json:"momento_lembrete"`
	MomentoResposta  time.Time `json:"momento_resposta"`
	LatenciaSegundos int64     `json:"latencia_segundos"`
	TipoLembrete     string    `json:"tipo_lembrete"`
	Respondeu        bool      `json:"respondeu"`
	CriadoEm         time.Time `json:"criado_em"`
}

// ToLatenciaResponse converte a entidade para a visão pública
func ToLatenciaResponse(latencia *entities.Latencia) LatenciaResponse {
	return LatenciaResponse{
		ID:               latencia.ID,
		UsuarioID:        latencia.UsuarioID,
		AgentID:          latencia.AgentID,
		MomentoLembrete:  latencia.MomentoLembrete,
		MomentoResposta:  latencia.MomentoResposta,
		LatenciaSegundos: latencia.LatenciaSegundos,
		TipoLembrete:     latencia.TipoLembrete,
		Respondeu:        latencia.Respondeu,
		CriadoEm:         latencia.CriadoEm,
	}
}

// ToLatenciaResponses converte uma lista de medições
func ToLatenciaResponses(latencias []*entities.Latencia) []LatenciaResponse {
	saida := make([]LatenciaResponse, 0, len(latencias))
	for _, l := range latencias {
		saida = append(saida, ToLatenciaResponse(l))
	}
	return saida
}
