package services

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/agentapi"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/persistence/postgres"
)

// agenteStub responde métricas fixas e falha para chat_ids com prefixo "erro"
type agenteStub struct{}

func (agenteStub) MetricasDoUsuario(ctx context.Context, chatID string, agentID int64, inicio, fim time.Time) (*agentapi.MetricasUsuario, error) {
	if strings.HasPrefix(chatID, "erro") {
		return nil, stderrors.New("agente indisponível")
	}
	return &agentapi.MetricasUsuario{
		ChatID:         chatID,
		AgentID:        agentID,
		MensagensTotal: 10,
		MensagensTexto: 6,
		MensagensAudio: 3,
		MensagensFoto:  1,
	}, nil
}

type dashboardFixture struct {
	service       *DashboardService
	usuarios      *UsuarioService
	metaRepo      func(ctx context.Context, meta *entities.Meta) error
	transacaoRepo func(ctx context.Context, transacao *entities.Transacao) error
}

func novoDashboardService(t *testing.T) dashboardFixture {
	t.Helper()
	db := setupDB(t)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	grupoRepo := postgres.NewGrupoRepository(db)
	transacaoRepo := postgres.NewTransacaoRepository(db)
	metaRepo := postgres.NewMetaRepository(db)
	latenciaRepo := postgres.NewLatenciaRepository(db)
	questionarioRepo := postgres.NewQuestionarioRepository(db)
	uow := postgres.NewUnitOfWork(db)

	service := NewDashboardService(
		usuarioRepo, transacaoRepo, metaRepo, latenciaRepo,
		questionarioRepo, grupoRepo, agenteStub{}, testLogger,
	)
	return dashboardFixture{
		service:       service,
		usuarios:      NewUsuarioService(usuarioRepo, grupoRepo, uow, testLogger),
		metaRepo:      metaRepo.Create,
		transacaoRepo: transacaoRepo.Create,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestDashboardService_Agregar(t *testing.T) {
	ctx := context.Background()
	fx := novoDashboardService(t)

	usuario, err := fx.usuarios.Create(ctx, CreateUsuarioInput{
		AgentID:  1,
		Nome:     "Maria",
		Telefone: "1101",
	})
	if err != nil {
		t.Fatalf("erro ao criar usuário: %v", err)
	}

	t.Run("taxa de cumprimento ignora metas pendentes", func(t *testing.T) {
		inicio := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		respostas := []*bool{boolPtr(true), boolPtr(true), boolPtr(true), boolPtr(false), nil, nil}
		for _, resposta := range respostas {
			if err := fx.metaRepo(ctx, &entities.Meta{
				UsuarioID:  usuario.ID,
				Descricao:  "meta",
				TipoMeta:   entities.TipoMetaVendas,
				DataInicio: inicio,
				DataFim:    inicio.AddDate(0, 0, 7),
				Cumprida:   resposta,
			}); err != nil {
				t.Fatalf("erro ao criar meta: %v", err)
			}
		}

		dashboard, err := fx.service.Agregar(ctx, nil, PeriodoFiltro{})
		if err != nil {
			t.Fatalf("erro ao agregar: %v", err)
		}

		metas := dashboard.Metas
		if metas.Cumpridas != 3 || metas.NaoCumpridas != 1 || metas.Pendentes != 2 {
			t.Fatalf("contagem de metas errada: %+v", metas)
		}
		if metas.TaxaCumprimento != 75 {
			t.Errorf("taxa esperada 75, veio %v", metas.TaxaCumprimento)
		}
	})

	t.Run("receitas e despesas são separadas e o caixa é proporcional", func(t *testing.T) {
		dia := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
		transacoes := []*entities.Transacao{
			{UsuarioID: usuario.ID, Tipo: entities.TipoTransacaoReceita, TipoCaixa: entities.TipoCaixaNegocio, Valor: decimal.NewFromInt(300), DataTransacao: dia, TipoEntrada: entities.TipoEntradaManual},
			{UsuarioID: usuario.ID, Tipo: entities.TipoTransacaoDespesa, TipoCaixa: entities.TipoCaixaPessoal, Valor: decimal.NewFromInt(100), DataTransacao: dia, TipoEntrada: entities.TipoEntradaManual},
		}
		for _, transacao := range transacoes {
			if err := fx.transacaoRepo(ctx, transacao); err != nil {
				t.Fatalf("erro ao criar transação: %v", err)
			}
		}

		dashboard, err := fx.service.Agregar(ctx, nil, PeriodoFiltro{})
		if err != nil {
			t.Fatalf("erro ao agregar: %v", err)
		}

		if !dashboard.Receitas.Total.Equal(decimal.NewFromInt(300)) || dashboard.Receitas.Quantidade != 1 {
			t.Errorf("receitas erradas: %+v", dashboard.Receitas)
		}
		if !dashboard.Despesas.Total.Equal(decimal.NewFromInt(100)) || dashboard.Despesas.Quantidade != 1 {
			t.Errorf("despesas erradas: %+v", dashboard.Despesas)
		}
		if dashboard.Caixa.PercentualPessoal != 25 || dashboard.Caixa.PercentualNegocio != 75 {
			t.Errorf("percentuais errados: %+v", dashboard.Caixa)
		}
	})
}

func TestDashboardService_Mensagens(t *testing.T) {
	ctx := context.Background()
	fx := novoDashboardService(t)

	entradas := []CreateUsuarioInput{
		{AgentID: 1, Nome: "A", Telefone: "1101", ChatID: "chat-a"},
		{AgentID: 1, Nome: "B", Telefone: "1102", ChatID: "chat-b"},
		{AgentID: 1, Nome: "C", Telefone: "1103", ChatID: "erro-c"},
		{AgentID: 1, Nome: "D", Telefone: "1104"}, // sem chat_id, fica fora do fan-out
	}
	for _, entrada := range entradas {
		if _, err := fx.usuarios.Create(ctx, entrada); err != nil {
			t.Fatalf("erro ao criar usuário: %v", err)
		}
	}

	t.Run("falhas individuais não abortam a agregação", func(t *testing.T) {
		dashboard, err := fx.service.Agregar(ctx, nil, PeriodoFiltro{})
		if err != nil {
			t.Fatalf("erro ao agregar: %v", err)
		}

		mensagens := dashboard.Mensagens
		if mensagens.Sucessos != 2 || mensagens.Falhas != 1 {
			t.Fatalf("esperado 2 sucessos e 1 falha, veio %+v", mensagens)
		}
		if mensagens.Total != 20 || mensagens.Texto != 12 || mensagens.Audio != 6 || mensagens.Foto != 2 {
			t.Errorf("totais errados: %+v", mensagens)
		}
	})

	t.Run("exportação enriquece apenas os usuários com métricas", func(t *testing.T) {
		dados, err := fx.service.Exportar(ctx, nil, PeriodoFiltro{})
		if err != nil {
			t.Fatalf("erro ao exportar: %v", err)
		}
		if len(dados.Usuarios) != 4 {
			t.Fatalf("esperados 4 usuários, veio %d", len(dados.Usuarios))
		}
		if len(dados.Mensagens) != 2 {
			t.Errorf("esperadas métricas de 2 usuários, veio %d", len(dados.Mensagens))
		}
	})
}
