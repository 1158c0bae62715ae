package cliente

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/forms"
)

// camposLogin descriptor del formulario de ingreso
var camposLogin = []forms.Campo{
	{Nombre: "username", Etiqueta: "Usuario", Tipo: forms.Texto, Requerido: true},
	{Nombre: "password", Etiqueta: "Contraseña", Tipo: forms.Password, Requerido: true},
}

// ErrCredencialesInvalidas el formulario de ingreso no pasó la validación local
var ErrCredencialesInvalidas = errors.New("credenciales incompletas")

// Sesion identidad autenticada del proceso. Se construye una sola vez al
// arranque; el guardia de rutas y las páginas la reciben por referencia.
type Sesion struct {
	cli *Cliente

	usuario     *dto.UsuarioResponse
	resolviendo bool
}

// NewSesion enlaza la sesión al cliente: cualquier 401 la deja sin identidad
func NewSesion(cli *Cliente) *Sesion {
	s := &Sesion{cli: cli}
	cli.AlExpirar(func() { s.usuario = nil })
	return s
}

// Login valida el formulario localmente, solicita el token, lo persiste y
// carga el perfil del usuario autenticado.
func (s *Sesion) Login(ctx context.Context, username, password string) error {
	valores := map[string]string{"username": username, "password": password}
	if errores := forms.Validar(camposLogin, valores, nil); !errores.Vacio() {
		return fmt.Errorf("%w: %v", ErrCredencialesInvalidas, errores)
	}

	s.resolviendo = true
	defer func() { s.resolviendo = false }()

	var resp dto.LoginResponse
	req := dto.LoginRequest{Username: username, Password: password}
	if err := s.cli.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return err
	}

	s.cli.fijarToken(resp.Token)
	if err := s.cli.almacen.Guardar(resp.Token); err != nil {
		return err
	}

	usuario, err := s.cli.Perfil(ctx)
	if err != nil {
		s.cli.limpiarSesion()
		return err
	}
	s.usuario = usuario
	return nil
}

// Logout revoca el token en el servidor (mejor esfuerzo) y limpia la sesión
func (s *Sesion) Logout(ctx context.Context) {
	if s.cli.Token() != "" {
		s.cli.post(ctx, "/api/auth/logout", nil, nil)
	}
	s.cli.limpiarSesion()
	s.usuario = nil
}

// Restaurar intenta reanudar la sesión desde el token persistido. Un token
// ausente, expirado o rechazado por el servidor deja la sesión sin
// autenticar y sin cabecera Authorization en las llamadas siguientes.
func (s *Sesion) Restaurar(ctx context.Context) error {
	s.resolviendo = true
	defer func() { s.resolviendo = false }()

	token, err := s.cli.almacen.Cargar()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	exp, err := expiraToken(token)
	if err != nil || !exp.After(time.Now()) {
		s.cli.almacen.Borrar()
		return nil
	}

	s.cli.fijarToken(token)
	usuario, err := s.cli.Perfil(ctx)
	if err != nil {
		// el servidor pudo haberlo revocado: se descarta sin propagar
		s.cli.fijarToken("")
		s.cli.almacen.Borrar()
		s.usuario = nil
		return nil
	}
	s.usuario = usuario
	return nil
}

// Autenticado indica si hay una identidad cargada
func (s *Sesion) Autenticado() bool { return s.usuario != nil }

// Resolviendo indica si un Login o Restaurar está en curso
func (s *Sesion) Resolviendo() bool { return s.resolviendo }

// Usuario devuelve la identidad de sesión, nil si no hay
func (s *Sesion) Usuario() *dto.UsuarioResponse { return s.usuario }

// TienePermiso pertenencia al conjunto efectivo de permisos
func (s *Sesion) TienePermiso(permiso string) bool {
	if s.usuario == nil {
		return false
	}
	return contiene(s.usuario.Permisos, permiso)
}

// TieneRol pertenencia al conjunto de roles asignados
func (s *Sesion) TieneRol(rol string) bool {
	if s.usuario == nil {
		return false
	}
	return contiene(s.usuario.Roles, rol)
}

// TieneAlgunPermiso verdadero si al menos uno de los permisos está presente
func (s *Sesion) TieneAlgunPermiso(permisos ...string) bool {
	for _, p := range permisos {
		if s.TienePermiso(p) {
			return true
		}
	}
	return false
}

// TieneAlgunRol verdadero si al menos uno de los roles está presente
func (s *Sesion) TieneAlgunRol(roles ...string) bool {
	for _, r := range roles {
		if s.TieneRol(r) {
			return true
		}
	}
	return false
}

func contiene(lista []string, valor string) bool {
	for _, v := range lista {
		if v == valor {
			return true
		}
	}
	return false
}

// expiraToken decodifica la expiración del token sin verificar la firma;
// la verificación real es del servidor, aquí solo se evita adjuntar un
// token ya vencido.
func expiraToken(token string) (time.Time, error) {
	partes := strings.Split(token, ".")
	if len(partes) != 3 {
		return time.Time{}, errors.New("token malformado")
	}
	datos, err := base64.RawURLEncoding.DecodeString(partes[1])
	if err != nil {
		return time.Time{}, err
	}
	var reclamos struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(datos, &reclamos); err != nil {
		return time.Time{}, err
	}
	if reclamos.Exp == 0 {
		return time.Time{}, errors.New("token sin expiración")
	}
	return time.Unix(reclamos.Exp, 0), nil
}
