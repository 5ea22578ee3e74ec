package repositories

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// AdminAgenteRepository define a interface para persistência dos
// vínculos admin-agente. Única exceção ao soft delete: a remoção do
// vínculo é física, pois não há requisito de auditoria.
type AdminAgenteRepository interface {
	Create(ctx context.Context, vinculo *entities.AdminAgente) error
	FindByID(ctx context.Context, id uint) (*entities.AdminAgente, error)
	FindByAdminEAgente(ctx context.Context, adminID uint, agentID int64) (*entities.AdminAgente, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]*entities.AdminAgente, error)
	List(ctx context.Context) ([]*entities.AdminAgente, error)
	Delete(ctx context.Context, id uint) error
}
