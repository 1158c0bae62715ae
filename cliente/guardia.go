package cliente

// Decision resultado de evaluar un guardia de ruta
type Decision int

const (
	// DecisionCargando la sesión aún se está resolviendo: mostrar un
	// estado neutro, no redirigir
	DecisionCargando Decision = iota
	// DecisionRedirigir sin sesión: ir al punto de entrada de login
	DecisionRedirigir
	// DecisionDenegada autenticado pero sin los requisitos: aviso en el
	// propio lugar, sin redirección
	DecisionDenegada
	// DecisionPermitida la página puede mostrarse
	DecisionPermitida
)

// Guardia requisitos de acceso de una página. Sin requisitos, basta estar
// autenticado. Con RequerirTodos, deben cumplirse todos los permisos y
// roles listados; si no, basta cualquiera de ellos.
type Guardia struct {
	Permisos      []string
	Roles         []string
	RequerirTodos bool
}

// Evaluar decide el acceso y, en caso de denegación, nombra el primer
// requisito faltante.
func (g Guardia) Evaluar(s *Sesion) (Decision, string) {
	if s.Resolviendo() {
		return DecisionCargando, ""
	}
	if !s.Autenticado() {
		return DecisionRedirigir, ""
	}
	if len(g.Permisos) == 0 && len(g.Roles) == 0 {
		return DecisionPermitida, ""
	}

	if g.RequerirTodos {
		for _, p := range g.Permisos {
			if !s.TienePermiso(p) {
				return DecisionDenegada, "falta el permiso: " + p
			}
		}
		for _, r := range g.Roles {
			if !s.TieneRol(r) {
				return DecisionDenegada, "falta el rol: " + r
			}
		}
		return DecisionPermitida, ""
	}

	if s.TieneAlgunPermiso(g.Permisos...) || s.TieneAlgunRol(g.Roles...) {
		return DecisionPermitida, ""
	}
	if len(g.Permisos) > 0 {
		return DecisionDenegada, "falta el permiso: " + g.Permisos[0]
	}
	return DecisionDenegada, "falta el rol: " + g.Roles[0]
}
