package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/wolf0dev/gestion-horario-sub000/config"
	"github.com/wolf0dev/gestion-horario-sub000/internal/api/handler"
	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
)

type authSvcStub struct {
	registros int
}

func (s *authSvcStub) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return &dto.LoginResponse{Token: "t"}, nil
}

func (s *authSvcStub) Registro(ctx context.Context, req *dto.RegistroUsuarioRequest) (*dto.UsuarioResponse, error) {
	s.registros++
	return &dto.UsuarioResponse{ID: 1, Username: req.Username}, nil
}

func (s *authSvcStub) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	return nil
}

func motorDePrueba(svc *authSvcStub) http.Handler {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "secreto-de-prueba-suficiente"
	cfg.Auth.TokenTTL = time.Hour
	h := &handler.Handler{Auth: handler.NewAuthHandler(svc)}
	return Setup(cfg, h, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
}

// El registro de cuentas es parte de la superficie pública de autenticación:
// debe poder invocarse sin token, igual que el login.
func TestRegistroEsPublico(t *testing.T) {
	svc := &authSvcStub{}
	motor := motorDePrueba(svc)

	// rol_ids no forma parte del contrato: la petición no puede elegir roles
	cuerpo := []byte(`{"username":"nuevo","password":"secreta1","nombre":"Nuevo","apellido":"Usuario","rol_ids":[1]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/registro", bytes.NewReader(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	motor.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("el registro sin token debía llegar al handler, estado %d", w.Code)
	}
	if svc.registros != 1 {
		t.Fatalf("se esperaba 1 alta procesada, hubo %d", svc.registros)
	}
}

func TestLogoutSigueExigiendoToken(t *testing.T) {
	motor := motorDePrueba(&authSvcStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	motor.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("logout sin token debía rechazarse con 401, estado %d", w.Code)
	}
}
