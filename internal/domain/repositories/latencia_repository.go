package repositories

import (
	"context"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// LatenciaRepository define a interface para persistência das métricas
// de latência de resposta
type LatenciaRepository interface {
	Create(ctx context.Context, latencia *entities.Latencia) error
	FindByID(ctx context.Context, id uint) (*entities.Latencia, error)
	// List ordena por criado_em decrescente
	List(ctx context.Context, filters LatenciaFilters) ([]*entities.Latencia, error)
}

// LatenciaFilters contém filtros para listagem de latências
type LatenciaFilters struct {
	AgentIDs   []int64
	UsuarioID  *uint
	AgentID    *int64
	DataInicio *time.Time
	DataFim    *time.Time
}
