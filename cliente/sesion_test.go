package cliente

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
)

// tokenConExp arma un JWT sin firma válida, suficiente para la lectura
// local de la expiración (la firma solo la verifica el servidor)
func tokenConExp(t *testing.T, exp time.Time) string {
	t.Helper()
	cabecera := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	cuerpo, err := json.Marshal(map[string]any{"exp": exp.Unix(), "sub": "1"})
	if err != nil {
		t.Fatalf("marshal reclamos: %v", err)
	}
	carga := base64.RawURLEncoding.EncodeToString(cuerpo)
	return fmt.Sprintf("%s.%s.firma", cabecera, carga)
}

func escribirOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"code": 0, "message": "success", "data": data})
}

func escribirError(w http.ResponseWriter, estado, codigo int, mensaje string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(estado)
	json.NewEncoder(w).Encode(map[string]any{"code": codigo, "message": mensaje})
}

func TestRestaurarTokenExpiradoQuedaSinAutenticar(t *testing.T) {
	peticiones := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		peticiones++
		escribirOK(w, nil)
	}))
	defer srv.Close()

	almacen := &AlmacenMemoria{}
	almacen.Guardar(tokenConExp(t, time.Now().Add(-time.Hour)))

	cli := NewCliente(srv.URL, almacen)
	sesion := NewSesion(cli)

	if err := sesion.Restaurar(context.Background()); err != nil {
		t.Fatalf("Restaurar: %v", err)
	}
	if sesion.Autenticado() {
		t.Fatal("la sesión no debe quedar autenticada con un token vencido")
	}
	if cli.Token() != "" {
		t.Fatal("el token vencido no debe quedar adjunto a las llamadas")
	}
	if guardado, _ := almacen.Cargar(); guardado != "" {
		t.Fatal("el token vencido debe borrarse del almacén")
	}
	if peticiones != 0 {
		t.Fatalf("no debe salir ninguna petición con un token vencido, hubo %d", peticiones)
	}
}

func TestRestaurarTokenValidoCargaPerfil(t *testing.T) {
	token := tokenConExp(t, time.Now().Add(time.Hour))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/usuarios/perfil" {
			escribirError(w, http.StatusNotFound, 10001, "ruta desconocida")
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+token {
			escribirError(w, http.StatusUnauthorized, 10002, "sin token")
			return
		}
		escribirOK(w, dto.UsuarioResponse{
			ID:       1,
			Username: "coord",
			Roles:    []string{"coordinador"},
			Permisos: []string{"gestion_horarios", "consultar_horarios"},
		})
	}))
	defer srv.Close()

	almacen := &AlmacenMemoria{}
	almacen.Guardar(token)

	cli := NewCliente(srv.URL, almacen)
	sesion := NewSesion(cli)

	if err := sesion.Restaurar(context.Background()); err != nil {
		t.Fatalf("Restaurar: %v", err)
	}
	if !sesion.Autenticado() {
		t.Fatal("la sesión debe quedar autenticada")
	}
	if !sesion.TienePermiso("gestion_horarios") {
		t.Fatal("el permiso gestion_horarios debe estar presente")
	}
	if sesion.TienePermiso("gestion_usuarios") {
		t.Fatal("gestion_usuarios no fue otorgado")
	}
	if !sesion.TieneRol("coordinador") || sesion.TieneRol("administrador") {
		t.Fatal("los roles no coinciden con la identidad servida")
	}
	if !sesion.TieneAlgunPermiso("gestion_usuarios", "consultar_horarios") {
		t.Fatal("TieneAlgunPermiso debe aceptar con un solo acierto")
	}
}

func TestRestaurarPerfilRechazadoDescartaToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escribirError(w, http.StatusUnauthorized, 10002, "token revocado")
	}))
	defer srv.Close()

	almacen := &AlmacenMemoria{}
	almacen.Guardar(tokenConExp(t, time.Now().Add(time.Hour)))

	cli := NewCliente(srv.URL, almacen)
	sesion := NewSesion(cli)

	if err := sesion.Restaurar(context.Background()); err != nil {
		t.Fatalf("Restaurar: %v", err)
	}
	if sesion.Autenticado() {
		t.Fatal("un perfil rechazado debe dejar la sesión sin autenticar")
	}
	if cli.Token() != "" {
		t.Fatal("el token rechazado debe descartarse")
	}
	if guardado, _ := almacen.Cargar(); guardado != "" {
		t.Fatal("el token rechazado debe borrarse del almacén")
	}
}

func TestLoginValidaFormularioLocalmente(t *testing.T) {
	peticiones := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		peticiones++
		escribirOK(w, nil)
	}))
	defer srv.Close()

	sesion := NewSesion(NewCliente(srv.URL, nil))
	if err := sesion.Login(context.Background(), "admin", ""); err == nil {
		t.Fatal("la contraseña vacía debe rechazarse antes de llamar al servidor")
	}
	if peticiones != 0 {
		t.Fatalf("no debe salir ninguna petición con el formulario inválido, hubo %d", peticiones)
	}
}

func TestLoginYLogout(t *testing.T) {
	token := tokenConExp(t, time.Now().Add(time.Hour))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			escribirOK(w, dto.LoginResponse{Token: token})
		case "/api/usuarios/perfil":
			escribirOK(w, dto.UsuarioResponse{ID: 1, Username: "admin", Roles: []string{"administrador"}})
		case "/api/auth/logout":
			escribirOK(w, nil)
		default:
			escribirError(w, http.StatusNotFound, 10001, "ruta desconocida")
		}
	}))
	defer srv.Close()

	almacen := &AlmacenMemoria{}
	cli := NewCliente(srv.URL, almacen)
	sesion := NewSesion(cli)

	if err := sesion.Login(context.Background(), "admin", "admin"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !sesion.Autenticado() {
		t.Fatal("debe quedar autenticado tras el login")
	}
	if cli.Token() != token {
		t.Fatal("el token emitido debe quedar adjunto")
	}
	if guardado, _ := almacen.Cargar(); guardado != token {
		t.Fatal("el token debe persistirse en el almacén")
	}

	sesion.Logout(context.Background())
	if sesion.Autenticado() || cli.Token() != "" {
		t.Fatal("el logout debe limpiar identidad y token")
	}
	if guardado, _ := almacen.Cargar(); guardado != "" {
		t.Fatal("el logout debe borrar el token persistido")
	}
}

func TestRespuesta401LimpiaLaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escribirError(w, http.StatusUnauthorized, 10002, "token expirado")
	}))
	defer srv.Close()

	almacen := &AlmacenMemoria{}
	almacen.Guardar("cualquier-token")
	cli := NewCliente(srv.URL, almacen)
	cli.fijarToken("cualquier-token")
	sesion := NewSesion(cli)

	if _, err := cli.ListarAulas(context.Background()); err != ErrSesionExpirada {
		t.Fatalf("se esperaba ErrSesionExpirada, llegó %v", err)
	}
	if cli.Token() != "" || sesion.Autenticado() {
		t.Fatal("un 401 en cualquier llamada debe limpiar la sesión")
	}
	if guardado, _ := almacen.Cargar(); guardado != "" {
		t.Fatal("un 401 debe borrar el token persistido")
	}
}
