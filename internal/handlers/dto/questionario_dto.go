package dto

import (
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// CreateQuestionarioRequest carrega as respostas do onboarding.
// Respostas individuais podem ficar em branco.
type CreateQuestionarioRequest struct {
	UsuarioID uint     `json:"usuario_id" binding:"required"`
	Respostas []string `json:"respostas" binding:"required,max=13"`
}

// QuestionarioResponse é a visão pública de um questionário
type QuestionarioResponse struct {
	ID        uint      `json:"id"`
	UsuarioID uint      `json:"usuario_id"`
	Respostas []string  `json:"respostas"`
	CriadoEm  time.Time `json:"criado_em"`
}

// ToQuestionarioResponse converte a entidade para a visão pública
func ToQuestionarioResponse(questionario *entities.Questionario) QuestionarioResponse {
	return QuestionarioResponse{
		ID:        questionario.ID,
		UsuarioID: questionario.UsuarioID,
		Respostas: questionario.Respostas(),
		CriadoEm:  questionario.CriadoEm,
	}
}

// ToQuestionarioResponses converte uma lista de questionários
func ToQuestionarioResponses(questionarios []*entities.Questionario) []QuestionarioResponse {
	saida := make([]QuestionarioResponse, 0, len(questionarios))
	for _, q := range questionarios {
		saida = append(saida, ToQuestionarioResponse(q))
	}
	return saida
}
