// Package cliente es el consumidor tipado de la API de gestión de horarios:
// adaptador HTTP con inyección del token, almacén de sesión con predicados de
// autorización, llamadas por recurso y el planificador de asignaciones con
// verificación previa de disponibilidad.
package cliente

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// TiempoEspera límite fijo de toda llamada saliente. No hay reintentos.
const TiempoEspera = 10 * time.Second

// ErrSesionExpirada el servidor respondió 401: el token persistido y la
// identidad en memoria quedan descartados.
var ErrSesionExpirada = errors.New("la sesión ha expirado")

// ErrorAPI respuesta de error del servidor, con su código de negocio
type ErrorAPI struct {
	Estado  int // código de estado HTTP
	Codigo  int // código de negocio del sobre de respuesta
	Mensaje string
}

func (e *ErrorAPI) Error() string {
	return fmt.Sprintf("api: %s (código %d, http %d)", e.Mensaje, e.Codigo, e.Estado)
}

// Almacen persistencia del token de sesión entre procesos
type Almacen interface {
	Guardar(token string) error
	Cargar() (string, error)
	Borrar() error
}

// AlmacenMemoria almacén volátil, útil en pruebas
type AlmacenMemoria struct {
	mu    sync.Mutex
	token string
}

func (a *AlmacenMemoria) Guardar(token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
	return nil
}

func (a *AlmacenMemoria) Cargar() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token, nil
}

func (a *AlmacenMemoria) Borrar() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	return nil
}

// AlmacenArchivo guarda el token en un archivo con permisos restringidos
type AlmacenArchivo struct {
	Ruta string
}

func (a *AlmacenArchivo) Guardar(token string) error {
	return os.WriteFile(a.Ruta, []byte(token), 0o600)
}

func (a *AlmacenArchivo) Cargar() (string, error) {
	datos, err := os.ReadFile(a.Ruta)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(datos), nil
}

func (a *AlmacenArchivo) Borrar() error {
	err := os.Remove(a.Ruta)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Cliente adaptador HTTP hacia la API. El token se inyecta como cabecera
// Bearer en toda llamada; un 401 en cualquier respuesta limpia la sesión.
type Cliente struct {
	baseURL string
	http    *http.Client
	almacen Almacen

	mu    sync.RWMutex
	token string

	// alExpirar se invoca tras limpiar la sesión por un 401
	alExpirar func()
}

// NewCliente crea el adaptador. baseURL sin barra final, p. ej.
// "http://localhost:8080".
func NewCliente(baseURL string, almacen Almacen) *Cliente {
	if almacen == nil {
		almacen = &AlmacenMemoria{}
	}
	return &Cliente{
		baseURL: baseURL,
		http:    &http.Client{Timeout: TiempoEspera},
		almacen: almacen,
	}
}

// AlExpirar registra la reacción ante un 401 (además de la limpieza del token)
func (c *Cliente) AlExpirar(fn func()) { c.alExpirar = fn }

func (c *Cliente) fijarToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token devuelve el token adjuntado actualmente, vacío si no hay sesión
func (c *Cliente) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Cliente) limpiarSesion() {
	c.fijarToken("")
	c.almacen.Borrar()
	if c.alExpirar != nil {
		c.alExpirar()
	}
}

// sobre envoltorio estándar de toda respuesta JSON del servidor
type sobre struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Cliente) hacer(ctx context.Context, metodo, ruta string, cuerpo, salida any) error {
	var lector io.Reader
	if cuerpo != nil {
		datos, err := json.Marshal(cuerpo)
		if err != nil {
			return err
		}
		lector = bytes.NewReader(datos)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+ruta, lector)
	if err != nil {
		return err
	}
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.limpiarSesion()
		return ErrSesionExpirada
	}

	var s sobre
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return fmt.Errorf("respuesta ilegible del servidor: %w", err)
	}
	if s.Code != 0 {
		return &ErrorAPI{Estado: resp.StatusCode, Codigo: s.Code, Mensaje: s.Message}
	}
	if salida != nil && len(s.Data) > 0 {
		return json.Unmarshal(s.Data, salida)
	}
	return nil
}

func (c *Cliente) get(ctx context.Context, ruta string, salida any) error {
	return c.hacer(ctx, http.MethodGet, ruta, nil, salida)
}

func (c *Cliente) post(ctx context.Context, ruta string, cuerpo, salida any) error {
	return c.hacer(ctx, http.MethodPost, ruta, cuerpo, salida)
}

func (c *Cliente) put(ctx context.Context, ruta string, cuerpo, salida any) error {
	return c.hacer(ctx, http.MethodPut, ruta, cuerpo, salida)
}

func (c *Cliente) delete(ctx context.Context, ruta string) error {
	return c.hacer(ctx, http.MethodDelete, ruta, nil, nil)
}

// descargar trae un recurso binario (exportaciones), sin sobre JSON
func (c *Cliente) descargar(ctx context.Context, ruta string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ruta, nil)
	if err != nil {
		return nil, err
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.limpiarSesion()
		return nil, ErrSesionExpirada
	}
	if resp.StatusCode != http.StatusOK {
		var s sobre
		if err := json.NewDecoder(resp.Body).Decode(&s); err == nil && s.Code != 0 {
			return nil, &ErrorAPI{Estado: resp.StatusCode, Codigo: s.Code, Mensaje: s.Message}
		}
		return nil, fmt.Errorf("descarga fallida: http %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
