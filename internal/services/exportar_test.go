package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

func TestCSVTransacoes(t *testing.T) {
	categoriaID := uint(3)
	transacoes := []*entities.Transacao{
		{
			ID:            1,
			UsuarioID:     5,
			Tipo:          entities.TipoTransacaoReceita,
			TipoCaixa:     entities.TipoCaixaNegocio,
			Valor:         decimal.NewFromFloat(150.5),
			CategoriaID:   &categoriaID,
			Descricao:     "venda de bolo, entrega\nno centro",
			DataTransacao: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			TipoEntrada:   entities.TipoEntradaAudio,
		},
	}
	nomesUsuarios := map[uint]string{5: "Maria"}
	nomesCategorias := map[uint]string{3: "Vendas"}

	csv := CSVTransacoes(transacoes, nomesUsuarios, nomesCategorias)

	t.Run("arquivo começa com BOM UTF-8", func(t *testing.T) {
		if !strings.HasPrefix(csv, "\uFEFF") {
			t.Error("CSV deveria começar com BOM")
		}
	})

	t.Run("vírgulas e quebras de linha são neutralizadas", func(t *testing.T) {
		linhas := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\n")
		if len(linhas) < 2 {
			t.Fatalf("CSV sem linha de dados: %q", csv)
		}
		if !strings.Contains(linhas[1], "venda de bolo; entrega no centro") {
			t.Errorf("descrição não foi sanitizada: %q", linhas[1])
		}
		if campos := strings.Split(linhas[1], ","); len(campos) != 9 {
			t.Errorf("esperadas 9 colunas, veio %d: %q", len(campos), linhas[1])
		}
	})

	t.Run("valor sai com duas casas e nomes resolvidos", func(t *testing.T) {
		if !strings.Contains(csv, "150.50") {
			t.Error("valor deveria sair com duas casas decimais")
		}
		if !strings.Contains(csv, "Maria") || !strings.Contains(csv, "Vendas") {
			t.Error("nomes de usuário e categoria deveriam estar resolvidos")
		}
	})
}

func TestCSVLatencias(t *testing.T) {
	lembrete := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	latencias := []*entities.Latencia{
		{
			ID:               1,
			UsuarioID:        5,
			AgentID:          7,
			MomentoLembrete:  lembrete,
			MomentoResposta:  lembrete.Add(125 * time.Second),
			LatenciaSegundos: 125,
			TipoLembrete:     "meta_semanal",
			Respondeu:        true,
		},
	}

	csv := CSVLatencias(latencias, map[uint]string{5: "Maria"})

	linhas := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\n")
	if len(linhas) < 2 {
		t.Fatalf("CSV sem linha de dados: %q", csv)
	}
	if !strings.Contains(linhas[1], "125") || !strings.Contains(linhas[1], "sim") {
		t.Errorf("linha de latência errada: %q", linhas[1])
	}
}

func TestCSVQuestionarios(t *testing.T) {
	questionario := &entities.Questionario{
		ID:        1,
		UsuarioID: 5,
		CriadoEm:  time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}

	csv := CSVQuestionarios([]*entities.Questionario{questionario}, map[uint]string{5: "Maria"})

	linhas := strings.Split(strings.TrimPrefix(csv, "\uFEFF"), "\n")
	if campos := strings.Split(linhas[0], ","); len(campos) != 16 {
		t.Fatalf("cabeçalho deveria ter 16 colunas (id, usuario, 13 respostas, criado_em), veio %d", len(campos))
	}
	if campos := strings.Split(linhas[1], ","); len(campos) != 16 {
		t.Errorf("linha de dados deveria ter 16 colunas, veio %d", len(campos))
	}
}
