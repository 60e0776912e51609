package entity

// Roles (tipo de acceso) presentes en el claim "role" del token.
// La emisión de tokens y la gestión de cuentas son externas a este servicio.
const (
	RoleAdmin       = "admin"
	RoleResponsavel = "responsavel"
	RoleOperador    = "operador"
)

// ValidRole indica si role es un tipo de acceso conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleResponsavel, RoleOperador:
		return true
	}
	return false
}
