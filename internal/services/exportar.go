package services

import (
	"fmt"
	"strings"

	"github.com/produtivi/financeiro-backend/internal/domain/entities"
)

// bomUTF8 na frente do arquivo faz o Excel abrir o CSV como UTF-8
const bomUTF8 = "\uFEFF"

// sanitizarCampo prepara um campo de texto livre para o CSV: vírgulas
// viram ponto e vírgula e quebras de linha viram espaço. Compatível com
// as planilhas que os operadores já usam; não há quoting RFC 4180.
func sanitizarCampo(campo string) string {
	campo = strings.ReplaceAll(campo, ",", ";")
	campo = strings.ReplaceAll(campo, "\r\n", " ")
	campo = strings.ReplaceAll(campo, "\n", " ")
	campo = strings.ReplaceAll(campo, "\r", " ")
	return campo
}

func escreverLinha(b *strings.Builder, campos ...string) {
	for i, campo := range campos {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(sanitizarCampo(campo))
	}
	b.WriteByte('\n')
}

// CSVTransacoes serializa transações com o nome do usuário e da
// categoria já resolvidos pelos mapas recebidos
func CSVTransacoes(transacoes []*entities.Transacao, nomesUsuarios map[uint]string, nomesCategorias map[uint]string) string {
	var b strings.Builder
	b.WriteString(bomUTF8)
	escreverLinha(&b, "id", "usuario", "tipo", "tipo_caixa", "valor", "categoria", "descricao", "data_transacao", "tipo_entrada")

	for _, t := range transacoes {
		categoria := ""
		if t.CategoriaID != nil {
			categoria = nomesCategorias[*t.CategoriaID]
		}
		escreverLinha(&b,
			fmt.Sprintf("%d", t.ID),
			nomesUsuarios[t.UsuarioID],
			string(t.Tipo),
			string(t.TipoCaixa),
			t.Valor.StringFixed(2),
			categoria,
			t.Descricao,
			t.DataTransacao.Format("2006-01-02"),
			string(t.TipoEntrada),
		)
	}
	return b.String()
}

// CSVLatencias serializa as medições de latência
func CSVLatencias(latencias []*entities.Latencia, nomesUsuarios map[uint]string) string {
	var b strings.Builder
	b.WriteString(bomUTF8)
	escreverLinha(&b, "id", "usuario", "agent_id", "momento_lembrete", "momento_resposta", "latencia_segundos", "tipo_lembrete", "respondeu")

	for _, l := range latencias {
		respondeu := "nao"
		if l.Respondeu {
			respondeu = "sim"
		}
		escreverLinha(&b,
			fmt.Sprintf("%d", l.ID),
			nomesUsuarios[l.UsuarioID],
			fmt.Sprintf("%d", l.AgentID),
			l.MomentoLembrete.Format("2006-01-02 15:04:05"),
			l.MomentoResposta.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", l.LatenciaSegundos),
			l.TipoLembrete,
			respondeu,
		)
	}
	return b.String()
}

// CSVQuestionarios serializa os questionários com uma coluna por resposta
func CSVQuestionarios(questionarios []*entities.Questionario, nomesUsuarios map[uint]string) string {
	var b strings.Builder
	b.WriteString(bomUTF8)

	cabecalho := []string{"id", "usuario"}
	for i := 1; i <= 13; i++ {
		cabecalho = append(cabecalho, fmt.Sprintf("resposta_%d", i))
	}
	cabecalho = append(cabecalho, "criado_em")
	escreverLinha(&b, cabecalho...)

	for _, q := range questionarios {
		campos := []string{fmt.Sprintf("%d", q.ID), nomesUsuarios[q.UsuarioID]}
		campos = append(campos, q.Respostas()...)
		campos = append(campos, q.CriadoEm.Format("2006-01-02 15:04:05"))
		escreverLinha(&b, campos...)
	}
	return b.String()
}

// NomesUsuarios monta o mapa id → nome usado pelos CSVs
func NomesUsuarios(usuarios []*entities.Usuario) map[uint]string {
	nomes := make(map[uint]string, len(usuarios))
	for _, u := range usuarios {
		nomes[u.ID] = u.Nome
	}
	return nomes
}

// NomesCategorias monta o mapa id → nome usado pelos CSVs
func NomesCategorias(categorias []*entities.Categoria) map[uint]string {
	nomes := make(map[uint]string, len(categorias))
	for _, c := range categorias {
		nomes[c.ID] = c.Nome
	}
	return nomes
}
