package entities

import (
	"errors"
	"time"
)

// AdminAgente vincula um admin a um agente externo de mensageria.
// Admins não-master só enxergam dados de usuários cujos agent_ids
// estão vinculados aqui. Tabela de vínculo pura: usa hard delete.
type AdminAgente struct {
	ID           uint
	AdminID      uint
	AgentID      int64
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// Validate valida regras de negócio do vínculo
func (aa *AdminAgente) Validate() error {
	if aa.AdminID == 0 {
		return errors.New("admin_id é obrigatório")
	}

	if aa.AgentID <= 0 {
		return errors.New("agent_id deve ser positivo")
	}

	return nil
}
