package perfil

// ===============================
// Perfil de acesso
// ===============================

type Perfil string

const (
	Admin     Perfil = "admin"
	Gerente   Perfil = "gerente"
	Atendente Perfil = "atendente"
)

var nivel = map[Perfil]int{
	Atendente: 1,
	Gerente:   2,
	Admin:     3,
}

// Parse normaliza o valor vindo do banco ou do token.
// "funcionario" é aceito como sinônimo legado de atendente.
func Parse(s string) Perfil {
	switch Perfil(s) {
	case Admin, Gerente, Atendente:
		return Perfil(s)
	}
	if s == "funcionario" {
		return Atendente
	}
	return ""
}

func (p Perfil) Valido() bool {
	_, ok := nivel[p]
	return ok
}

// Permite implementa a hierarquia admin ⊇ gerente ⊇ atendente.
func (p Perfil) Permite(minimo Perfil) bool {
	np, ok := nivel[p]
	if !ok {
		return false
	}
	nm, ok := nivel[minimo]
	if !ok {
		return false
	}
	return np >= nm
}
