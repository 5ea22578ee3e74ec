package services

import (
	"context"
	"fmt"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// UsuarioService contém a lógica de negócio para usuários finais
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
	grupoRepo   repositories.GrupoRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepository,
	grupoRepo repositories.GrupoRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		grupoRepo:   grupoRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreateUsuarioInput representa os dados para criar um usuário
type CreateUsuarioInput struct {
	ChatID   string
	AgentID  int64
	Nome     string
	Telefone string
	GrupoID  *uint
	Status   entities.StatusUsuario
}

// UpdateUsuarioInput representa uma atualização parcial de usuário
type UpdateUsuarioInput struct {
	ChatID   *string
	Nome     *string
	Telefone *string
	GrupoID  *uint
	Status   *entities.StatusUsuario
}

// LinhaImportacao é uma linha já lida da planilha de importação
type LinhaImportacao struct {
	Linha    int // número da linha no arquivo, para mensagens de erro
	Nome     string
	Telefone string
	AgentID  int64
	GrupoID  *uint
}

// ErroImportacao descreve a falha de uma linha individual
type ErroImportacao struct {
	Linha    int    `json:"linha"`
	Mensagem string `json:"mensagem"`
}

// ResultadoImportacao acumula o desfecho do lote
type ResultadoImportacao struct {
	Criados     int              `json:"criados"`
	Atualizados int              `json:"atualizados"`
	Erros       []ErroImportacao `json:"erros"`
}

// Create cria um novo usuário
func (s *UsuarioService) Create(ctx context.Context, input CreateUsuarioInput) (*entities.Usuario, error) {
	if input.GrupoID != nil {
		if err := s.verificarGrupo(ctx, *input.GrupoID); err != nil {
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = entities.StatusUsuarioAtivo
	}

	usuario := &entities.Usuario{
		ChatID:   input.ChatID,
		AgentID:  input.AgentID,
		Nome:     input.Nome,
		Telefone: input.Telefone,
		GrupoID:  input.GrupoID,
		Status:   status,
	}

	if err := usuario.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, errors.Internal("falha ao criar usuário", err)
	}

	s.logger.Info("usuário criado", "usuario_id", usuario.ID, "agent_id", usuario.AgentID)
	return usuario, nil
}

// Get busca um usuário por ID, opcionalmente restrito ao escopo de agentes
func (s *UsuarioService) Get(ctx context.Context, id uint, agentIDs []int64) (*entities.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return nil, errors.NotFound("usuário")
	}
	return usuario, nil
}

// List lista usuários respeitando o escopo de agentes do chamador
func (s *UsuarioService) List(ctx context.Context, filters repositories.UsuarioFilters) ([]*entities.Usuario, error) {
	return s.usuarioRepo.List(ctx, filters)
}

// Update aplica uma atualização parcial
func (s *UsuarioService) Update(ctx context.Context, id uint, agentIDs []int64, input UpdateUsuarioInput) (*entities.Usuario, error) {
	usuario, err := s.Get(ctx, id, agentIDs)
	if err != nil {
		return nil, err
	}

	if input.GrupoID != nil {
		if err := s.verificarGrupo(ctx, *input.GrupoID); err != nil {
			return nil, err
		}
		usuario.GrupoID = input.GrupoID
	}
	if input.ChatID != nil {
		usuario.ChatID = *input.ChatID
	}
	if input.Nome != nil {
		usuario.Nome = *input.Nome
	}
	if input.Telefone != nil {
		usuario.Telefone = *input.Telefone
	}
	if input.Status != nil {
		usuario.Status = *input.Status
	}

	if err := usuario.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		return nil, errors.Internal("falha ao atualizar usuário", err)
	}

	return usuario, nil
}

// Delete faz o soft delete de um usuário
func (s *UsuarioService) Delete(ctx context.Context, id uint, agentIDs []int64) error {
	if _, err := s.Get(ctx, id, agentIDs); err != nil {
		return err
	}

	if err := s.usuarioRepo.Delete(ctx, id); err != nil {
		return errors.Internal("falha ao deletar usuário", err)
	}

	s.logger.Info("usuário deletado", "usuario_id", id)
	return nil
}

// ImportarEmLote faz o upsert de cada linha pela chave natural
// (telefone, agent_id): atualiza o grupo se o par existe, senão cria um
// usuário ativo. Falhas individuais entram em Erros e o lote continua.
func (s *UsuarioService) ImportarEmLote(ctx context.Context, linhas []LinhaImportacao) *ResultadoImportacao {
	resultado := &ResultadoImportacao{Erros: []ErroImportacao{}}

	for _, linha := range linhas {
		if err := s.importarLinha(ctx, linha, resultado); err != nil {
			resultado.Erros = append(resultado.Erros, ErroImportacao{
				Linha:    linha.Linha,
				Mensagem: err.Error(),
			})
		}
	}

	s.logger.Info("importação em lote concluída",
		"criados", resultado.Criados,
		"atualizados", resultado.Atualizados,
		"erros", len(resultado.Erros),
	)
	return resultado
}

func (s *UsuarioService) importarLinha(ctx context.Context, linha LinhaImportacao, resultado *ResultadoImportacao) error {
	if linha.Nome == "" {
		return fmt.Errorf("nome é obrigatório")
	}
	if linha.Telefone == "" {
		return fmt.Errorf("telefone é obrigatório")
	}
	if linha.AgentID <= 0 {
		return fmt.Errorf("agent_id deve ser positivo")
	}

	// Cada linha roda na própria transação para que uma falha não
	// derrube as demais
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existente, err := s.usuarioRepo.FindByTelefoneEAgente(txCtx, linha.Telefone, linha.AgentID)
		if err != nil {
			return fmt.Errorf("falha ao buscar usuário: %w", err)
		}

		if existente != nil {
			existente.GrupoID = linha.GrupoID
			if linha.Nome != "" {
				existente.Nome = linha.Nome
			}
			if err := s.usuarioRepo.Update(txCtx, existente); err != nil {
				return fmt.Errorf("falha ao atualizar usuário: %w", err)
			}
			resultado.Atualizados++
			return nil
		}

		novo := &entities.Usuario{
			AgentID:  linha.AgentID,
			Nome:     linha.Nome,
			Telefone: linha.Telefone,
			GrupoID:  linha.GrupoID,
			Status:   entities.StatusUsuarioAtivo,
		}
		if err := s.usuarioRepo.Create(txCtx, novo); err != nil {
			return fmt.Errorf("falha ao criar usuário: %w", err)
		}
		resultado.Criados++
		return nil
	})
}

func (s *UsuarioService) verificarGrupo(ctx context.Context, grupoID uint) error {
	grupo, err := s.grupoRepo.FindByID(ctx, grupoID)
	if err != nil {
		return errors.Internal("falha ao buscar grupo", err)
	}
	if grupo == nil {
		return errors.Validation("grupo informado não existe")
	}
	return nil
}

// AgenteVisivel aplica a regra de escopo: agentIDs nil (master) enxerga
// tudo; caso contrário o agente precisa estar na lista
func AgenteVisivel(agentIDs []int64, agentID int64) bool {
	if agentIDs == nil {
		return true
	}
	for _, id := range agentIDs {
		if id == agentID {
			return true
		}
	}
	return false
}
