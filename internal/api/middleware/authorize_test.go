package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
)

func motorConGuardia(req Requisitos, claims *jwt.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegida",
		func(c *gin.Context) {
			if claims != nil {
				c.Set("claims", claims)
			}
		},
		Authorize(req),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
		})
	return r
}

func pedirProtegida(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorizeSinClaimsRespondeNoAutenticado(t *testing.T) {
	r := motorConGuardia(Requisitos{Permisos: []string{"gestion_aulas"}}, nil)
	w := pedirProtegida(t, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("se esperaba 401, llegó %d", w.Code)
	}
}

func TestAuthorizeSinRequisitosBastaAutenticarse(t *testing.T) {
	claims := &jwt.Claims{Username: "u"}
	r := motorConGuardia(Requisitos{}, claims)
	if w := pedirProtegida(t, r); w.Code != http.StatusOK {
		t.Fatalf("sin requisitos basta estar autenticado, llegó %d", w.Code)
	}
}

func TestAuthorizePermisoFaltanteNombraElRequisito(t *testing.T) {
	claims := &jwt.Claims{Username: "u", Permisos: []string{"consultar_horarios"}}
	r := motorConGuardia(Requisitos{Permisos: []string{"gestion_usuarios"}}, claims)

	w := pedirProtegida(t, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("se esperaba 403, llegó %d", w.Code)
	}

	var cuerpo struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cuerpo); err != nil {
		t.Fatalf("cuerpo ilegible: %v", err)
	}
	if cuerpo.Code != 10003 {
		t.Fatalf("código de negocio inesperado: %d", cuerpo.Code)
	}
	if !strings.Contains(cuerpo.Message, "gestion_usuarios") {
		t.Fatalf("la denegación debe nombrar el permiso faltante, llegó %q", cuerpo.Message)
	}
}

func TestAuthorizeCualquierPermisoBasta(t *testing.T) {
	claims := &jwt.Claims{Username: "u", Permisos: []string{"consultar_horarios"}}
	r := motorConGuardia(Requisitos{
		Permisos: []string{"gestion_horarios", "consultar_horarios"},
	}, claims)
	if w := pedirProtegida(t, r); w.Code != http.StatusOK {
		t.Fatalf("con un acierto basta, llegó %d", w.Code)
	}
}

func TestAuthorizeRequireAllExigeTodos(t *testing.T) {
	claims := &jwt.Claims{
		Username: "u",
		Roles:    []string{"coordinador"},
		Permisos: []string{"gestion_horarios"},
	}

	r := motorConGuardia(Requisitos{
		Permisos:   []string{"gestion_horarios", "gestion_usuarios"},
		RequireAll: true,
	}, claims)
	if w := pedirProtegida(t, r); w.Code != http.StatusForbidden {
		t.Fatalf("con RequireAll debe denegar si falta uno, llegó %d", w.Code)
	}

	r = motorConGuardia(Requisitos{
		Permisos:   []string{"gestion_horarios"},
		Roles:      []string{"coordinador"},
		RequireAll: true,
	}, claims)
	if w := pedirProtegida(t, r); w.Code != http.StatusOK {
		t.Fatalf("con todos los requisitos debe pasar, llegó %d", w.Code)
	}
}

func TestAuthorizeSoloRoles(t *testing.T) {
	claims := &jwt.Claims{Username: "u", Roles: []string{"usuario_asignado"}}
	r := motorConGuardia(Requisitos{Roles: []string{"administrador"}}, claims)

	w := pedirProtegida(t, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("se esperaba 403, llegó %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "administrador") {
		t.Fatalf("la denegación debe nombrar el rol faltante: %s", w.Body.String())
	}
}
