package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

func novoTransacaoService(t *testing.T) (*TransacaoService, *UsuarioService, *MetaService) {
	t.Helper()
	db := setupDB(t)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	grupoRepo := postgres.NewGrupoRepository(db)
	transacaoRepo := postgres.NewTransacaoRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	metaRepo := postgres.NewMetaRepository(db)
	uow := postgres.NewUnitOfWork(db)

	usuarios := NewUsuarioService(usuarioRepo, grupoRepo, uow, testLogger)
	transacoes := NewTransacaoService(transacaoRepo, usuarioRepo, categoriaRepo, nil, testLogger)
	metas := NewMetaService(metaRepo, usuarioRepo, testLogger)
	return transacoes, usuarios, metas
}

func TestTransacaoService_ListEscopoDeAgentes(t *testing.T) {
	ctx := context.Background()
	service, usuarios, metas := novoTransacaoService(t)

	dia := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	donos := map[int64]*entities.Usuario{}
	for _, agentID := range []int64{1, 2} {
		usuario, err := usuarios.Create(ctx, CreateUsuarioInput{
			AgentID:  agentID,
			Nome:     "Dono",
			Telefone: fmt.Sprintf("110%d", agentID),
		})
		if err != nil {
			t.Fatalf("erro ao criar usuário: %v", err)
		}
		donos[agentID] = usuario

		if _, err := service.Create(ctx, nil, CreateTransacaoInput{
			UsuarioID:     usuario.ID,
			Tipo:          entities.TipoTransacaoReceita,
			TipoCaixa:     entities.TipoCaixaNegocio,
			Valor:         decimal.NewFromInt(100),
			DataTransacao: dia,
		}); err != nil {
			t.Fatalf("erro ao criar transação: %v", err)
		}

		if _, err := metas.Create(ctx, nil, CreateMetaInput{
			UsuarioID:  usuario.ID,
			Descricao:  "meta do agente",
			TipoMeta:   entities.TipoMetaVendas,
			DataInicio: dia,
			DataFim:    dia.AddDate(0, 0, 7),
		}); err != nil {
			t.Fatalf("erro ao criar meta: %v", err)
		}
	}

	t.Run("escopo devolve apenas transações do agente", func(t *testing.T) {
		resultado, err := service.List(ctx, repositories.TransacaoFilters{AgentIDs: []int64{1}})
		if err != nil {
			t.Fatalf("erro ao listar: %v", err)
		}
		if len(resultado) != 1 {
			t.Fatalf("esperada 1 transação do agente 1, veio %d", len(resultado))
		}
		if resultado[0].UsuarioID != donos[1].ID {
			t.Errorf("transação de outro agente vazou no escopo: %+v", resultado[0])
		}
	})

	t.Run("escopo vazio devolve zero linhas", func(t *testing.T) {
		resultado, err := service.List(ctx, repositories.TransacaoFilters{AgentIDs: []int64{}})
		if err != nil {
			t.Fatalf("erro ao listar: %v", err)
		}
		if len(resultado) != 0 {
			t.Errorf("escopo vazio deveria devolver zero linhas, veio %d", len(resultado))
		}
	})

	t.Run("escopo nil devolve tudo", func(t *testing.T) {
		resultado, err := service.List(ctx, repositories.TransacaoFilters{})
		if err != nil {
			t.Fatalf("erro ao listar: %v", err)
		}
		if len(resultado) != 2 {
			t.Errorf("sem escopo deveriam vir as 2 transações, veio %d", len(resultado))
		}
	})

	t.Run("metas seguem o mesmo escopo por dono", func(t *testing.T) {
		escopadas, err := metas.List(ctx, repositories.MetaFilters{AgentIDs: []int64{2}})
		if err != nil {
			t.Fatalf("erro ao listar metas: %v", err)
		}
		if len(escopadas) != 1 || escopadas[0].UsuarioID != donos[2].ID {
			t.Errorf("escopo de metas errado: %d metas", len(escopadas))
		}

		vazias, err := metas.List(ctx, repositories.MetaFilters{AgentIDs: []int64{}})
		if err != nil {
			t.Fatalf("erro ao listar metas: %v", err)
		}
		if len(vazias) != 0 {
			t.Errorf("escopo vazio de metas deveria devolver zero linhas, veio %d", len(vazias))
		}
	})
}
