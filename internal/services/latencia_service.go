package services

import (
	"context"
	"time"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// LatenciaService contém a lógica de negócio para métricas de latência
// de resposta a lembretes
type LatenciaService struct {
	latenciaRepo repositories.LatenciaRepository
	usuarioRepo  repositories.UsuarioRepository
	logger       ports.Logger
}

// NewLatenciaService cria um novo LatenciaService
func NewLatenciaService(
	latenciaRepo repositories.LatenciaRepository,
	usuarioRepo repositories.UsuarioRepository,
	logger ports.Logger,
) *LatenciaService {
	return &LatenciaService{
		latenciaRepo: latenciaRepo,
		usuarioRepo:  usuarioRepo,
		logger:       logger,
	}
}

// RegistrarLatenciaInput representa os dados de uma medição.
// LatenciaSegundos é sempre derivado dos dois momentos, nunca aceito
// do chamador.
type RegistrarLatenciaInput struct {
	UsuarioID       uint
	MomentoLembrete time.Time
	MomentoResposta time.Time
	TipoLembrete    string
	Respondeu       bool
}

// Registrar grava uma medição de latência. O agent_id é copiado do
// usuário dono para permitir filtragem direta.
func (s *LatenciaService) Registrar(ctx context.Context, agentIDs []int64, input RegistrarLatenciaInput) (*entities.Latencia, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, input.UsuarioID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return nil, errors.NotFound("usuário")
	}

	latencia := &entities.Latencia{
		UsuarioID:       input.UsuarioID,
		AgentID:         usuario.AgentID,
		MomentoLembrete: input.MomentoLembrete,
		MomentoResposta: input.MomentoResposta,
		TipoLembrete:    input.TipoLembrete,
		Respondeu:       input.Respondeu,
	}
	latencia.CalcularSegundos()

	if err := latencia.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.latenciaRepo.Create(ctx, latencia); err != nil {
		return nil, errors.Internal("falha ao registrar latência", err)
	}

	s.logger.Info("latência registrada",
		"latencia_id", latencia.ID,
		"usuario_id", latencia.UsuarioID,
		"segundos", latencia.LatenciaSegundos,
	)
	return latencia, nil
}

// List lista medições respeitando o escopo de agentes do chamador
func (s *LatenciaService) List(ctx context.Context, filters repositories.LatenciaFilters) ([]*entities.Latencia, error) {
	return s.latenciaRepo.List(ctx, filters)
}
