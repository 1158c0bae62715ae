package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/wolf0dev/gestion-horario-sub000/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "clave-secreta-de-prueba-2026",
		TokenTTL:  8 * time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken(7, "mrodriguez", []string{"administrador"}, []string{"gestion_horarios", "gestion_usuarios"})
	if err != nil {
		t.Fatalf("GenerateToken falló: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falló: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID esperado=7, actual=%d", claims.UserID)
	}
	if claims.Username != "mrodriguez" {
		t.Errorf("Username esperado=mrodriguez, actual=%s", claims.Username)
	}
	if claims.Subject != "7" {
		t.Errorf("Subject esperado=7, actual=%s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "administrador" {
		t.Errorf("Roles inesperados: %v", claims.Roles)
	}
	if len(claims.Permisos) != 2 {
		t.Errorf("Permisos inesperados: %v", claims.Permisos)
	}
	if claims.Issuer != "gestion-horario" {
		t.Errorf("Issuer esperado=gestion-horario, actual=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("el JTI no debe estar vacío")
	}
}

func TestParseToken_Invalido(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("token.invalido.xyz")
	if err == nil {
		t.Error("un token inválido no debe validarse")
	}
}

func TestParseToken_ClaveDistinta(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret: "otra-clave-distinta-123456",
		TokenTTL:  8 * time.Hour,
	})

	token, _ := m1.GenerateToken(1, "admin", nil, nil)
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("un token firmado con otra clave no debe validarse")
	}
}

func TestParseToken_Expirado(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret: "clave-secreta-de-prueba-2026",
		TokenTTL:  1 * time.Millisecond,
	})

	token, _ := m.GenerateToken(1, "admin", nil, nil)
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("se esperaba ErrTokenExpired, actual: %v", err)
	}
}
