package repositories

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// RelatorioRepository define a interface para o histórico de relatórios
// gerados
type RelatorioRepository interface {
	Create(ctx context.Context, relatorio *entities.Relatorio) error
	// ListByUsuario ordena por criado_em decrescente
	ListByUsuario(ctx context.Context, usuarioID uint) ([]*entities.Relatorio, error)
}
