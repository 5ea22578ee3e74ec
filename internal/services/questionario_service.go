package services

import (
	"context"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// QuestionarioService contém a lógica de negócio para os questionários
// de onboarding
type QuestionarioService struct {
	questionarioRepo repositories.QuestionarioRepository
	usuarioRepo      repositories.UsuarioRepository
	logger           ports.Logger
}

// NewQuestionarioService cria um novo QuestionarioService
func NewQuestionarioService(
	questionarioRepo repositories.QuestionarioRepository,
	usuarioRepo repositories.UsuarioRepository,
	logger ports.Logger,
) *QuestionarioService {
	return &QuestionarioService{
		questionarioRepo: questionarioRepo,
		usuarioRepo:      usuarioRepo,
		logger:           logger,
	}
}

// CreateQuestionarioInput carrega as 13 respostas do formulário.
// Respostas vazias são permitidas.
type CreateQuestionarioInput struct {
	UsuarioID uint
	Respostas [13]string
}

// Create registra um questionário respondido
func (s *QuestionarioService) Create(ctx context.Context, agentIDs []int64, input CreateQuestionarioInput) (*entities.Questionario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, input.UsuarioID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return nil, errors.NotFound("usuário")
	}

	r := input.Respostas
	questionario := &entities.Questionario{
		UsuarioID:  input.UsuarioID,
		Resposta1:  r[0],
		Resposta2:  r[1],
		Resposta3:  r[2],
		Resposta4:  r[3],
		Resposta5:  r[4],
		Resposta6:  r[5],
		Resposta7:  r[6],
		Resposta8:  r[7],
		Resposta9:  r[8],
		Resposta10: r[9],
		Resposta11: r[10],
		Resposta12: r[11],
		Resposta13: r[12],
	}

	if err := questionario.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.questionarioRepo.Create(ctx, questionario); err != nil {
		return nil, errors.Internal("falha ao criar questionário", err)
	}

	s.logger.Info("questionário registrado", "questionario_id", questionario.ID, "usuario_id", questionario.UsuarioID)
	return questionario, nil
}

// Get busca um questionário por ID dentro do escopo de agentes
func (s *QuestionarioService) Get(ctx context.Context, id uint, agentIDs []int64) (*entities.Questionario, error) {
	questionario, err := s.questionarioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar questionário", err)
	}
	if questionario == nil {
		return nil, errors.NotFound("questionário")
	}

	usuario, err := s.usuarioRepo.FindByID(ctx, questionario.UsuarioID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return nil, errors.NotFound("questionário")
	}
	return questionario, nil
}

// List lista questionários respeitando o escopo de agentes do chamador
func (s *QuestionarioService) List(ctx context.Context, filters repositories.QuestionarioFilters) ([]*entities.Questionario, error) {
	return s.questionarioRepo.List(ctx, filters)
}
