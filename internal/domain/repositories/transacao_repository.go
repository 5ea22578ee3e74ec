package repositories

import (
	"context"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// TransacaoRepository define a interface para persistência de transações
type TransacaoRepository interface {
	Create(ctx context.Context, transacao *entities.Transacao) error
	FindByID(ctx context.Context, id uint) (*entities.Transacao, error)
	Update(ctx context.Context, transacao *entities.Transacao) error
	Delete(ctx context.Context, id uint) error
	// List ordena por data_transacao decrescente. O escopo por agente é
	// resolvido via join com a tabela de usuários.
	List(ctx context.Context, filters TransacaoFilters) ([]*entities.Transacao, error)
}

// TransacaoFilters contém filtros para listagem de transações.
// AgentIDs segue a mesma semântica de UsuarioFilters.
type TransacaoFilters struct {
	AgentIDs    []int64
	UsuarioID   *uint
	Tipo        *entities.TipoTransacao
	TipoCaixa   *entities.TipoCaixa
	CategoriaID *uint
	DataInicio  *time.Time
	DataFim     *time.Time
}
