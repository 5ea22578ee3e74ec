package repositories

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// QuestionarioRepository define a interface para persistência dos
// questionários de onboarding
type QuestionarioRepository interface {
	Create(ctx context.Context, questionario *entities.Questionario) error
	FindByID(ctx context.Context, id uint) (*entities.Questionario, error)
	// List ordena por criado_em decrescente
	List(ctx context.Context, filters QuestionarioFilters) ([]*entities.Questionario, error)
}

// QuestionarioFilters contém filtros para listagem de questionários
type QuestionarioFilters struct {
	AgentIDs  []int64
	UsuarioID *uint
}
