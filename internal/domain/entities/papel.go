package entities

// Papel representa o papel de um administrador no sistema
type Papel string

const (
	PapelMaster Papel = "master"
	PapelAdmin  Papel = "admin"
	PapelUser   Papel = "user"
)

// Valido verifica se o papel é um dos papéis conhecidos
func (p Papel) Valido() bool {
	return p == PapelMaster || p == PapelAdmin || p == PapelUser
}

// PodeGerenciarAdmins indica se o papel pode criar/editar admins e
// vínculos admin-agente
func (p Papel) PodeGerenciarAdmins() bool {
	return p == PapelMaster
}

// VisibilidadeTotal indica se o papel enxerga todos os agentes sem filtro
func (p Papel) VisibilidadeTotal() bool {
	return p == PapelMaster
}
