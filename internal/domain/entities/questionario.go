package entities

import (
	"errors"
	"time"
)

// Questionario guarda as 13 respostas do questionário de onboarding
// de um usuário. Um usuário pode ter zero ou mais questionários.
type Questionario struct {
	ID         uint
	UsuarioID  uint
	Resposta1  string
	Resposta2  string
	Resposta3  string
	Resposta4  string
	Resposta5  string
	Resposta6  string
	Resposta7  string
	Resposta8  string
	Resposta9  string
	Resposta10 string
	Resposta11 string
	Resposta12 string
	Resposta13 string
	CriadoEm   time.Time
}

// Respostas devolve as respostas na ordem do formulário
func (q *Questionario) Respostas() []string {
	return []string{
		q.Resposta1, q.Resposta2, q.Resposta3, q.Resposta4, q.Resposta5,
		q.Resposta6, q.Resposta7, q.Resposta8, q.Resposta9, q.Resposta10,
		q.Resposta11, q.Resposta12, q.Resposta13,
	}
}

// Validate valida regras de negócio da entidade Questionario
func (q *Questionario) Validate() error {
	if q.UsuarioID == 0 {
		return errors.New("usuario_id é obrigatório")
	}

	return nil
}
