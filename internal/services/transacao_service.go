package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/errors"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
)

// TransacaoCriadaListener recebe transações recém criadas junto com o
// agent_id do usuário dono, para difusão em tempo real
type TransacaoCriadaListener interface {
	TransacaoCriada(transacao *entities.Transacao, agentID int64)
}

// TransacaoService contém a lógica de negócio para transações financeiras
type TransacaoService struct {
	transacaoRepo repositories.TransacaoRepository
	usuarioRepo   repositories.UsuarioRepository
	categoriaRepo repositories.CategoriaRepository
	listener      TransacaoCriadaListener
	logger        ports.Logger
}

// NewTransacaoService cria um novo TransacaoService.
// listener pode ser nil quando não há difusão em tempo real.
func NewTransacaoService(
	transacaoRepo repositories.TransacaoRepository,
	usuarioRepo repositories.UsuarioRepository,
	categoriaRepo repositories.CategoriaRepository,
	listener TransacaoCriadaListener,
	logger ports.Logger,
) *TransacaoService {
	return &TransacaoService{
		transacaoRepo: transacaoRepo,
		usuarioRepo:   usuarioRepo,
		categoriaRepo: categoriaRepo,
		listener:      listener,
		logger:        logger,
	}
}

// CreateTransacaoInput representa os dados para criar uma transação
type CreateTransacaoInput struct {
	UsuarioID     uint
	Tipo          entities.TipoTransacao
	TipoCaixa     entities.TipoCaixa
	Valor         decimal.Decimal
	CategoriaID   *uint
	Descricao     string
	DataTransacao time.Time
	TipoEntrada   entities.TipoEntrada
}

// UpdateTransacaoInput representa uma atualização parcial de transação
type UpdateTransacaoInput struct {
	Tipo          *entities.TipoTransacao
	TipoCaixa     *entities.TipoCaixa
	Valor         *decimal.Decimal
	CategoriaID   *uint
	Descricao     *string
	DataTransacao *time.Time
	TipoEntrada   *entities.TipoEntrada
}

// Create cria uma nova transação para um usuário dentro do escopo
func (s *TransacaoService) Create(ctx context.Context, agentIDs []int64, input CreateTransacaoInput) (*entities.Transacao, error) {
	usuario, err := s.usuarioDoEscopo(ctx, input.UsuarioID, agentIDs)
	if err != nil {
		return nil, err
	}

	if input.CategoriaID != nil {
		if err := s.verificarCategoria(ctx, *input.CategoriaID); err != nil {
			return nil, err
		}
	}

	tipoEntrada := input.TipoEntrada
	if tipoEntrada == "" {
		tipoEntrada = entities.TipoEntradaManual
	}

	transacao := &entities.Transacao{
		UsuarioID:     input.UsuarioID,
		Tipo:          input.Tipo,
		TipoCaixa:     input.TipoCaixa,
		Valor:         input.Valor,
		CategoriaID:   input.CategoriaID,
		Descricao:     input.Descricao,
		DataTransacao: input.DataTransacao,
		TipoEntrada:   tipoEntrada,
	}

	if err := transacao.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.transacaoRepo.Create(ctx, transacao); err != nil {
		return nil, errors.Internal("falha ao criar transação", err)
	}

	s.logger.Info("transação criada",
		"transacao_id", transacao.ID,
		"usuario_id", transacao.UsuarioID,
		"tipo", transacao.Tipo,
		"valor", transacao.Valor.String(),
	)

	if s.listener != nil {
		s.listener.TransacaoCriada(transacao, usuario.AgentID)
	}

	return transacao, nil
}

// Get busca uma transação por ID dentro do escopo de agentes
func (s *TransacaoService) Get(ctx context.Context, id uint, agentIDs []int64) (*entities.Transacao, error) {
	transacao, err := s.transacaoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("falha ao buscar transação", err)
	}
	if transacao == nil {
		return nil, errors.NotFound("transação")
	}
	if _, err := s.usuarioDoEscopo(ctx, transacao.UsuarioID, agentIDs); err != nil {
		return nil, errors.NotFound("transação")
	}
	return transacao, nil
}

// List lista transações respeitando o escopo de agentes do chamador
func (s *TransacaoService) List(ctx context.Context, filters repositories.TransacaoFilters) ([]*entities.Transacao, error) {
	return s.transacaoRepo.List(ctx, filters)
}

// Update aplica uma atualização parcial
func (s *TransacaoService) Update(ctx context.Context, id uint, agentIDs []int64, input UpdateTransacaoInput) (*entities.Transacao, error) {
	transacao, err := s.Get(ctx, id, agentIDs)
	if err != nil {
		return nil, err
	}

	if input.CategoriaID != nil {
		if err := s.verificarCategoria(ctx, *input.CategoriaID); err != nil {
			return nil, err
		}
		transacao.CategoriaID = input.CategoriaID
	}
	if input.Tipo != nil {
		transacao.Tipo = *input.Tipo
	}
	if input.TipoCaixa != nil {
		transacao.TipoCaixa = *input.TipoCaixa
	}
	if input.Valor != nil {
		transacao.Valor = *input.Valor
	}
	if input.Descricao != nil {
		transacao.Descricao = *input.Descricao
	}
	if input.DataTransacao != nil {
		transacao.DataTransacao = *input.DataTransacao
	}
	if input.TipoEntrada != nil {
		transacao.TipoEntrada = *input.TipoEntrada
	}

	if err := transacao.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	if err := s.transacaoRepo.Update(ctx, transacao); err != nil {
		return nil, errors.Internal("falha ao atualizar transação", err)
	}

	return transacao, nil
}

// Delete faz o soft delete de uma transação
func (s *TransacaoService) Delete(ctx context.Context, id uint, agentIDs []int64) error {
	if _, err := s.Get(ctx, id, agentIDs); err != nil {
		return err
	}

	if err := s.transacaoRepo.Delete(ctx, id); err != nil {
		return errors.Internal("falha ao deletar transação", err)
	}

	s.logger.Info("transação deletada", "transacao_id", id)
	return nil
}

func (s *TransacaoService) usuarioDoEscopo(ctx context.Context, usuarioID uint, agentIDs []int64) (*entities.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, errors.Internal("falha ao buscar usuário", err)
	}
	if usuario == nil || !AgenteVisivel(agentIDs, usuario.AgentID) {
		return nil, errors.NotFound("usuário")
	}
	return usuario, nil
}

func (s *TransacaoService) verificarCategoria(ctx context.Context, categoriaID uint) error {
	categoria, err := s.categoriaRepo.FindByID(ctx, categoriaID)
	if err != nil {
		return errors.Internal("falha ao buscar categoria", err)
	}
	if categoria == nil {
		return errors.Validation("categoria informada não existe")
	}
	return nil
}
