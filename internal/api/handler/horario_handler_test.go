package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
)

// mockHorarioService doble del servicio de horarios: devuelve lo que se le
// configure, para ejercer solo el despacho de errores del handler
type mockHorarioService struct {
	vistas []dto.HorarioVista
	err    error
}

func (m *mockHorarioService) Create(context.Context, *dto.CreateHorarioRequest) (*dto.HorarioVista, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.HorarioVista{ID: 1, Activo: true}, nil
}

func (m *mockHorarioService) GetByID(context.Context, int64) (*dto.HorarioVista, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.HorarioVista{ID: 1}, nil
}

func (m *mockHorarioService) List(context.Context) ([]dto.HorarioVista, error) {
	return m.vistas, m.err
}

func (m *mockHorarioService) ListByProfesor(context.Context, int64) ([]dto.HorarioVista, error) {
	return m.vistas, m.err
}

func (m *mockHorarioService) Update(context.Context, *dto.UpdateHorarioRequest) (*dto.HorarioVista, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.HorarioVista{ID: 1}, nil
}

func (m *mockHorarioService) Delete(context.Context, int64) error { return m.err }

func (m *mockHorarioService) AulasDisponibles(context.Context, int64, int64) ([]dto.AulaResponse, error) {
	return nil, m.err
}

func motorHorarios(svc service.HorarioService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHorarioHandler(svc)
	r := gin.New()
	r.GET("/api/horarios/vista", h.Vista)
	r.POST("/api/horarios/registro", h.Registro)
	r.DELETE("/api/horarios/eliminar/:id", h.Eliminar)
	return r
}

func registroValido() []byte {
	datos, _ := json.Marshal(dto.CreateHorarioRequest{
		TrayectoUnidadCurricularID: 1,
		DiaSemanaID:                1,
		BloqueHorarioID:            1,
		AulaID:                     1,
		ProfesorID:                 1,
	})
	return datos
}

func cuerpoDe(t *testing.T, w *httptest.ResponseRecorder) (int, string) {
	t.Helper()
	var cuerpo struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cuerpo); err != nil {
		t.Fatalf("cuerpo ilegible: %v", err)
	}
	return cuerpo.Code, cuerpo.Message
}

func TestRegistroHorarioConflictosDeDisponibilidad(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		codigo int
	}{
		{"profesor no disponible", service.ErrProfesorNoDisponible, 27002},
		{"aula no disponible", service.ErrAulaNoDisponible, 27003},
		{"profesor ocupado", service.ErrProfesorOcupado, 27004},
		{"aula ocupada", service.ErrAulaOcupada, 27005},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			r := motorHorarios(&mockHorarioService{err: caso.err})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/horarios/registro", bytes.NewReader(registroValido()))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusConflict {
				t.Fatalf("se esperaba 409, llegó %d", w.Code)
			}
			if codigo, _ := cuerpoDe(t, w); codigo != caso.codigo {
				t.Fatalf("código de negocio inesperado: %d", codigo)
			}
		})
	}
}

func TestRegistroHorarioExitoso(t *testing.T) {
	r := motorHorarios(&mockHorarioService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/horarios/registro", bytes.NewReader(registroValido()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("se esperaba 201, llegó %d", w.Code)
	}
	if codigo, _ := cuerpoDe(t, w); codigo != 0 {
		t.Fatalf("código de negocio inesperado: %d", codigo)
	}
}

func TestRegistroHorarioCuerpoIncompleto(t *testing.T) {
	r := motorHorarios(&mockHorarioService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/horarios/registro", bytes.NewReader([]byte(`{"aula_id":1}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("los campos obligatorios ausentes deben dar 400, llegó %d", w.Code)
	}
}

func TestVistaHorariosConsultaYPaginacion(t *testing.T) {
	r := motorHorarios(&mockHorarioService{vistas: []dto.HorarioVista{
		{ID: 1, Profesor: "Pérez, Ana", UnidadCurricular: "Programación I"},
		{ID: 2, Profesor: "Gómez, Luis", UnidadCurricular: "Matemática I"},
		{ID: 3, Profesor: "Pérez, Ana", UnidadCurricular: "Programación II"},
	}})

	// sin parámetros la respuesta es el arreglo plano
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/horarios/vista", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("se esperaba 200, llegó %d", w.Code)
	}
	var plano struct {
		Data []dto.HorarioVista `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &plano); err != nil {
		t.Fatalf("cuerpo ilegible: %v", err)
	}
	if len(plano.Data) != 3 {
		t.Fatalf("sin parámetros deben llegar todas las filas, llegaron %d", len(plano.Data))
	}

	// con búsqueda y paginación la respuesta es el sobre paginado
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/horarios/vista?q=p%C3%A9rez&page=1&page_size=1", nil))
	var paginado struct {
		Data struct {
			List       []dto.HorarioVista `json:"list"`
			Pagination struct {
				Total      int64 `json:"total"`
				TotalPages int   `json:"total_pages"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &paginado); err != nil {
		t.Fatalf("cuerpo ilegible: %v", err)
	}
	if paginado.Data.Pagination.Total != 2 {
		t.Fatalf("la búsqueda debe encontrar 2 filas, llegó %d", paginado.Data.Pagination.Total)
	}
	if paginado.Data.Pagination.TotalPages != 2 {
		t.Fatalf("dos filas en páginas de una dan 2 páginas, llegó %d", paginado.Data.Pagination.TotalPages)
	}
	if len(paginado.Data.List) != 1 {
		t.Fatalf("la página pedida es de una fila, llegaron %d", len(paginado.Data.List))
	}
}

func TestEliminarHorarioInexistente(t *testing.T) {
	r := motorHorarios(&mockHorarioService{err: service.ErrHorarioNotFound})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/horarios/eliminar/9", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("se esperaba 404, llegó %d", w.Code)
	}
	if codigo, _ := cuerpoDe(t, w); codigo != 27001 {
		t.Fatalf("código de negocio inesperado: %d", codigo)
	}
}
