package entities

import (
	"errors"
	"time"
)

// Latencia mede o tempo entre um lembrete enviado pelo agente e a
// resposta do usuário, em segundos inteiros (floor).
type Latencia struct {
	ID               uint
	UsuarioID        uint
	AgentID          int64
	MomentoLembrete  time.Time
	MomentoResposta  time.Time
	LatenciaSegundos int64
	TipoLembrete     string
	Respondeu        bool
	CriadoEm         time.Time
}

// CalcularSegundos deriva LatenciaSegundos dos dois momentos.
// Divisão inteira de Duration por time.Second já trunca para baixo.
func (l *Latencia) CalcularSegundos() {
	l.LatenciaSegundos = int64(l.MomentoResposta.Sub(l.MomentoLembrete) / time.Second)
}

// Validate valida regras de negócio da entidade Latencia
func (l *Latencia) Validate() error {
	if l.UsuarioID == 0 {
		return errors.New("usuario_id é obrigatório")
	}

	if l.MomentoLembrete.IsZero() || l.MomentoResposta.IsZero() {
		return errors.New("momento_lembrete e momento_resposta são obrigatórios")
	}

	if l.MomentoResposta.Before(l.MomentoLembrete) {
		return errors.New("momento_resposta deve ser posterior ao momento_lembrete")
	}

	return nil
}
