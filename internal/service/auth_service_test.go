package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wolf0dev/gestion-horario-sub000/config"
	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
)

func authDePrueba(t *testing.T) (AuthService, *repository.Repository, *jwt.Manager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "secreto-de-prueba-suficiente"
	cfg.Auth.TokenTTL = time.Hour

	repo := repoDePrueba()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop()), repo, jwtMgr
}

func sembrarUsuario(t *testing.T, repo *repository.Repository, username, password string, activo bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generando hash: %v", err)
	}
	u := &model.Usuario{
		Username:     username,
		PasswordHash: string(hash),
		Nombre:       "Ana",
		Apellido:     "Pérez",
		Activo:       activo,
		Roles: []model.Rol{{
			ID:     1,
			Nombre: "coordinador",
			Permisos: []model.Permiso{
				{ID: 1, Nombre: "gestion_horarios"},
				{ID: 2, Nombre: "consultar_horarios"},
			},
		}},
	}
	if err := repo.Usuario.Create(context.Background(), u); err != nil {
		t.Fatalf("sembrando usuario: %v", err)
	}
	return u
}

func TestLoginEmiteTokenConRolesYPermisos(t *testing.T) {
	svc, repo, jwtMgr := authDePrueba(t)
	sembrarUsuario(t, repo, "coord", "clave123", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "coord", Password: "clave123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("debe emitirse un token")
	}

	claims, err := jwtMgr.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("el token emitido debe ser válido: %v", err)
	}
	if claims.Username != "coord" {
		t.Fatalf("username inesperado en los reclamos: %q", claims.Username)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "coordinador" {
		t.Fatalf("roles inesperados: %v", claims.Roles)
	}
	if len(claims.Permisos) != 2 {
		t.Fatalf("los permisos efectivos deben viajar en el token: %v", claims.Permisos)
	}
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	svc, repo, _ := authDePrueba(t)
	sembrarUsuario(t, repo, "coord", "clave123", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "coord", Password: "otra"})
	if !errors.Is(err, ErrCredencialesInvalidas) {
		t.Fatalf("se esperaba ErrCredencialesInvalidas, llegó %v", err)
	}
}

func TestLoginUsuarioDesconocido(t *testing.T) {
	svc, _, _ := authDePrueba(t)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nadie", Password: "x"})
	if !errors.Is(err, ErrCredencialesInvalidas) {
		t.Fatalf("un usuario desconocido no debe distinguirse de una clave errada, llegó %v", err)
	}
}

func TestLoginUsuarioInactivo(t *testing.T) {
	svc, repo, _ := authDePrueba(t)
	sembrarUsuario(t, repo, "coord", "clave123", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "coord", Password: "clave123"})
	if !errors.Is(err, ErrUsuarioInactivo) {
		t.Fatalf("se esperaba ErrUsuarioInactivo, llegó %v", err)
	}
}

func TestRegistroUsernameDuplicado(t *testing.T) {
	svc, repo, _ := authDePrueba(t)
	sembrarUsuario(t, repo, "coord", "clave123", true)

	_, err := svc.Registro(context.Background(), &dto.RegistroUsuarioRequest{
		Username: "coord", Password: "clave456", Nombre: "Otro", Apellido: "Usuario",
	})
	if !errors.Is(err, ErrUsernameEnUso) {
		t.Fatalf("se esperaba ErrUsernameEnUso, llegó %v", err)
	}
}

func TestRegistroAsignaRolPorDefecto(t *testing.T) {
	svc, repo, _ := authDePrueba(t)
	repo.Rol.Create(context.Background(), &model.Rol{Nombre: "usuario_asignado"})

	resp, err := svc.Registro(context.Background(), &dto.RegistroUsuarioRequest{
		Username: "nuevo", Password: "clave123", Nombre: "Nuevo", Apellido: "Usuario",
	})
	if err != nil {
		t.Fatalf("Registro: %v", err)
	}
	if resp.Username != "nuevo" {
		t.Fatalf("username inesperado: %q", resp.Username)
	}

	asignaciones, _ := repo.UsuarioRol.List(context.Background())
	if len(asignaciones) != 1 || asignaciones[0].RolID != 1 {
		t.Fatalf("debe asignarse usuario_asignado por defecto, llegó %+v", asignaciones)
	}
}

func TestLogoutSinRedisNoFalla(t *testing.T) {
	svc, _, _ := authDePrueba(t)
	if err := svc.Logout(context.Background(), "jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("sin Redis el logout debe ser silencioso: %v", err)
	}
}
