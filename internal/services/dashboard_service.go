package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
	"github.com/produtivi/financeiro-backend/internal/domain/ports"
	"github.com/produtivi/financeiro-backend/internal/domain/repositories"
	"github.com/produtivi/financeiro-backend/internal/infrastructure/agentapi"
)

// maxConsultasAgente limita o fan-out concorrente à API externa do agente
const maxConsultasAgente = 8

// MetricasAgente consulta a API externa de métricas por usuário
type MetricasAgente interface {
	MetricasDoUsuario(ctx context.Context, chatID string, agentID int64, inicio, fim time.Time) (*agentapi.MetricasUsuario, error)
}

// DashboardService agrega as métricas exibidas no painel administrativo
type DashboardService struct {
	usuarioRepo      repositories.UsuarioRepository
	transacaoRepo    repositories.TransacaoRepository
	metaRepo         repositories.MetaRepository
	latenciaRepo     repositories.LatenciaRepository
	questionarioRepo repositories.QuestionarioRepository
	grupoRepo        repositories.GrupoRepository
	agente           MetricasAgente
	logger           ports.Logger
}

// NewDashboardService cria um novo DashboardService
func NewDashboardService(
	usuarioRepo repositories.UsuarioRepository,
	transacaoRepo repositories.TransacaoRepository,
	metaRepo repositories.MetaRepository,
	latenciaRepo repositories.LatenciaRepository,
	questionarioRepo repositories.QuestionarioRepository,
	grupoRepo repositories.GrupoRepository,
	agente MetricasAgente,
	logger ports.Logger,
) *DashboardService {
	return &DashboardService{
		usuarioRepo:      usuarioRepo,
		transacaoRepo:    transacaoRepo,
		metaRepo:         metaRepo,
		latenciaRepo:     latenciaRepo,
		questionarioRepo: questionarioRepo,
		grupoRepo:        grupoRepo,
		agente:           agente,
		logger:           logger,
	}
}

// UsuariosPorGrupo agrupa as contagens de usuários pelo nome do grupo
type UsuariosPorGrupo struct {
	Grupo  string `json:"grupo"`
	Ativos int    `json:"ativos"`
	Total  int    `json:"total"`
}

// ResumoFinanceiro é o total e a contagem de um corte de transações
type ResumoFinanceiro struct {
	Total      decimal.Decimal `json:"total"`
	Quantidade int             `json:"quantidade"`
}

// ResumoCaixa divide um corte entre caixa pessoal e de negócio
type ResumoCaixa struct {
	Pessoal           ResumoFinanceiro `json:"pessoal"`
	Negocio           ResumoFinanceiro `json:"negocio"`
	PercentualPessoal float64          `json:"percentual_pessoal"`
	PercentualNegocio float64          `json:"percentual_negocio"`
}

// ResumoMetas consolida a situação das metas do período
type ResumoMetas struct {
	Cumpridas       int     `json:"cumpridas"`
	NaoCumpridas    int     `json:"nao_cumpridas"`
	Pendentes       int     `json:"pendentes"`
	TaxaCumprimento float64 `json:"taxa_cumprimento"`
}

// MensagensPorCanal acumula os totais de mensagens da API do agente
type MensagensPorCanal struct {
	Total    int `json:"total"`
	Texto    int `json:"texto"`
	Audio    int `json:"audio"`
	Foto     int `json:"foto"`
	Sucessos int `json:"sucessos"`
	Falhas   int `json:"falhas"`
}

// Dashboard é a resposta agregada do painel
type Dashboard struct {
	UsuariosPorGrupo []UsuariosPorGrupo `json:"usuarios_por_grupo"`
	Receitas         ResumoFinanceiro   `json:"receitas"`
	Despesas         ResumoFinanceiro   `json:"despesas"`
	Caixa            ResumoCaixa        `json:"caixa"`
	Metas            ResumoMetas        `json:"metas"`
	Mensagens        MensagensPorCanal  `json:"mensagens"`
}

// DadosExportacao reúne os conjuntos brutos usados na exportação CSV do
// painel, com o mesmo escopo da agregação
type DadosExportacao struct {
	Usuarios      []*entities.Usuario
	Transacoes    []*entities.Transacao
	Metas         []*entities.Meta
	Latencias     []*entities.Latencia
	Questionarios []*entities.Questionario
	Mensagens     map[uint]*agentapi.MetricasUsuario // por usuario_id, best-effort
}

// PeriodoFiltro delimita a janela temporal da agregação
type PeriodoFiltro struct {
	DataInicio *time.Time
	DataFim    *time.Time
}

// Agregar monta o dashboard completo para o escopo de agentes informado
func (s *DashboardService) Agregar(ctx context.Context, agentIDs []int64, periodo PeriodoFiltro) (*Dashboard, error) {
	usuarios, err := s.usuarioRepo.List(ctx, repositories.UsuarioFilters{AgentIDs: agentIDs})
	if err != nil {
		return nil, err
	}

	transacoes, err := s.transacaoRepo.List(ctx, repositories.TransacaoFilters{
		AgentIDs:   agentIDs,
		DataInicio: periodo.DataInicio,
		DataFim:    periodo.DataFim,
	})
	if err != nil {
		return nil, err
	}

	metas, err := s.metaRepo.List(ctx, repositories.MetaFilters{
		AgentIDs:   agentIDs,
		DataInicio: periodo.DataInicio,
		DataFim:    periodo.DataFim,
	})
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		UsuariosPorGrupo: s.agruparUsuarios(ctx, usuarios),
		Metas:            resumirMetas(metas),
		Mensagens:        s.coletarMensagens(ctx, usuarios, periodo),
	}
	dashboard.Receitas, dashboard.Despesas, dashboard.Caixa = resumirTransacoes(transacoes)

	return dashboard, nil
}

// Exportar devolve os conjuntos brutos do período, com enriquecimento
// best-effort das métricas de mensagens por usuário
func (s *DashboardService) Exportar(ctx context.Context, agentIDs []int64, periodo PeriodoFiltro) (*DadosExportacao, error) {
	usuarios, err := s.usuarioRepo.List(ctx, repositories.UsuarioFilters{AgentIDs: agentIDs})
	if err != nil {
		return nil, err
	}

	transacoes, err := s.transacaoRepo.List(ctx, repositories.TransacaoFilters{
		AgentIDs:   agentIDs,
		DataInicio: periodo.DataInicio,
		DataFim:    periodo.DataFim,
	})
	if err != nil {
		return nil, err
	}

	metas, err := s.metaRepo.List(ctx, repositories.MetaFilters{
		AgentIDs:   agentIDs,
		DataInicio: periodo.DataInicio,
		DataFim:    periodo.DataFim,
	})
	if err != nil {
		return nil, err
	}

	latencias, err := s.latenciaRepo.List(ctx, repositories.LatenciaFilters{
		AgentIDs:   agentIDs,
		DataInicio: periodo.DataInicio,
		DataFim:    periodo.DataFim,
	})
	if err != nil {
		return nil, err
	}

	questionarios, err := s.questionarioRepo.List(ctx, repositories.QuestionarioFilters{AgentIDs: agentIDs})
	if err != nil {
		return nil, err
	}

	return &DadosExportacao{
		Usuarios:      usuarios,
		Transacoes:    transacoes,
		Metas:         metas,
		Latencias:     latencias,
		Questionarios: questionarios,
		Mensagens:     s.enriquecerMensagens(ctx, usuarios, periodo),
	}, nil
}

func (s *DashboardService) agruparUsuarios(ctx context.Context, usuarios []*entities.Usuario) []UsuariosPorGrupo {
	nomes := map[uint]string{}
	if grupos, err := s.grupoRepo.List(ctx); err == nil {
		for _, g := range grupos {
			nomes[g.ID] = g.Nome
		}
	}

	const semGrupo = "sem grupo"
	indice := map[string]*UsuariosPorGrupo{}
	ordem := []string{}

	for _, u := range usuarios {
		nome := semGrupo
		if u.GrupoID != nil {
			if n, ok := nomes[*u.GrupoID]; ok {
				nome = n
			}
		}

		grupo, ok := indice[nome]
		if !ok {
			grupo = &UsuariosPorGrupo{Grupo: nome}
			indice[nome] = grupo
			ordem = append(ordem, nome)
		}

		grupo.Total++
		if u.Status == entities.StatusUsuarioAtivo {
			grupo.Ativos++
		}
	}

	resultado := make([]UsuariosPorGrupo, 0, len(ordem))
	for _, nome := range ordem {
		resultado = append(resultado, *indice[nome])
	}
	return resultado
}

func resumirTransacoes(transacoes []*entities.Transacao) (receitas, despesas ResumoFinanceiro, caixa ResumoCaixa) {
	receitas.Total = decimal.Zero
	despesas.Total = decimal.Zero
	caixa.Pessoal.Total = decimal.Zero
	caixa.Negocio.Total = decimal.Zero

	for _, t := range transacoes {
		switch t.Tipo {
		case entities.TipoTransacaoReceita:
			receitas.Total = receitas.Total.Add(t.Valor)
			receitas.Quantidade++
		case entities.TipoTransacaoDespesa:
			despesas.Total = despesas.Total.Add(t.Valor)
			despesas.Quantidade++
		}

		switch t.TipoCaixa {
		case entities.TipoCaixaPessoal:
			caixa.Pessoal.Total = caixa.Pessoal.Total.Add(t.Valor)
			caixa.Pessoal.Quantidade++
		case entities.TipoCaixaNegocio:
			caixa.Negocio.Total = caixa.Negocio.Total.Add(t.Valor)
			caixa.Negocio.Quantidade++
		}
	}

	volume := caixa.Pessoal.Total.Add(caixa.Negocio.Total)
	if volume.IsPositive() {
		caixa.PercentualPessoal, _ = caixa.Pessoal.Total.Div(volume).Mul(decimal.NewFromInt(100)).Round(2).Float64()
		caixa.PercentualNegocio, _ = caixa.Negocio.Total.Div(volume).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	}
	return receitas, despesas, caixa
}

func resumirMetas(metas []*entities.Meta) ResumoMetas {
	resumo := ResumoMetas{}
	for _, m := range metas {
		switch {
		case m.Cumprida == nil:
			resumo.Pendentes++
		case *m.Cumprida:
			resumo.Cumpridas++
		default:
			resumo.NaoCumpridas++
		}
	}

	respondidas := resumo.Cumpridas + resumo.NaoCumpridas
	if respondidas > 0 {
		resumo.TaxaCumprimento = float64(resumo.Cumpridas) / float64(respondidas) * 100
	}
	return resumo
}

// coletarMensagens faz o fan-out concorrente à API do agente, uma
// chamada por usuário, limitado por semáforo. Falhas individuais entram
// na contagem de falhas e não abortam a agregação.
func (s *DashboardService) coletarMensagens(ctx context.Context, usuarios []*entities.Usuario, periodo PeriodoFiltro) MensagensPorCanal {
	inicio, fim := janelaPadrao(periodo)

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		semaforo  = make(chan struct{}, maxConsultasAgente)
		mensagens MensagensPorCanal
	)

	for _, usuario := range usuarios {
		if usuario.ChatID == "" {
			continue
		}

		wg.Add(1)
		go func(u *entities.Usuario) {
			defer wg.Done()
			semaforo <- struct{}{}
			defer func() { <-semaforo }()

			metricas, err := s.agente.MetricasDoUsuario(ctx, u.ChatID, u.AgentID, inicio, fim)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				mensagens.Falhas++
				s.logger.Warn("falha ao buscar métricas do agente", "usuario_id", u.ID, "error", err.Error())
				return
			}
			mensagens.Sucessos++
			mensagens.Total += metricas.MensagensTotal
			mensagens.Texto += metricas.MensagensTexto
			mensagens.Audio += metricas.MensagensAudio
			mensagens.Foto += metricas.MensagensFoto
		}(usuario)
	}

	wg.Wait()
	return mensagens
}

// enriquecerMensagens busca as métricas por usuário para a exportação.
// Usuários cuja chamada falha simplesmente ficam fora do mapa.
func (s *DashboardService) enriquecerMensagens(ctx context.Context, usuarios []*entities.Usuario, periodo PeriodoFiltro) map[uint]*agentapi.MetricasUsuario {
	inicio, fim := janelaPadrao(periodo)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		semaforo = make(chan struct{}, maxConsultasAgente)
		porID    = make(map[uint]*agentapi.MetricasUsuario)
	)

	for _, usuario := range usuarios {
		if usuario.ChatID == "" {
			continue
		}

		wg.Add(1)
		go func(u *entities.Usuario) {
			defer wg.Done()
			semaforo <- struct{}{}
			defer func() { <-semaforo }()

			metricas, err := s.agente.MetricasDoUsuario(ctx, u.ChatID, u.AgentID, inicio, fim)
			if err != nil {
				return
			}
			mu.Lock()
			porID[u.ID] = metricas
			mu.Unlock()
		}(usuario)
	}

	wg.Wait()
	return porID
}

// janelaPadrao devolve os 30 dias anteriores quando o filtro não informa
// o período
func janelaPadrao(periodo PeriodoFiltro) (time.Time, time.Time) {
	fim := time.Now()
	if periodo.DataFim != nil {
		fim = *periodo.DataFim
	}
	inicio := fim.AddDate(0, 0, -30)
	if periodo.DataInicio != nil {
		inicio = *periodo.DataInicio
	}
	return inicio, fim
}
