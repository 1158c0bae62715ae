package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// MustGetUserID extrae el user_id inyectado por el middleware de
// autenticación. Con ok=false ya se escribió el 401; el llamador debe retornar.
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "no autenticado")
		return 0, false
	}
	return id, true
}

// MustGetClaims extrae las claims completas del token
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "no autenticado")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "no autenticado")
		return nil, false
	}
	return claims, true
}

// parseIDParam convierte el parámetro :id de la ruta
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "identificador inválido")
		return 0, false
	}
	return id, true
}

// parseConsulta arma la consulta de lista desde los parámetros
// q / sort / dir / page / page_size. Sin page_size no se pagina.
func parseConsulta(c *gin.Context) listquery.Consulta {
	consulta := listquery.Consulta{
		Termino: c.Query("q"),
		Orden:   c.Query("sort"),
	}
	if c.Query("dir") == "desc" {
		consulta.Descendente = true
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		consulta.Pagina = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		consulta.TamanoPagina = size
	}
	return consulta
}

// responderLista aplica la consulta sobre la colección completa y responde
// paginado o plano según se haya pedido página.
func responderLista[T any](c *gin.Context, filas []T, campos []listquery.Campo[T]) {
	consulta := parseConsulta(c)
	if consulta.Termino == "" && consulta.Orden == "" && consulta.TamanoPagina <= 0 {
		response.OK(c, filas)
		return
	}

	resultado := listquery.Aplicar(filas, campos, consulta)
	if consulta.TamanoPagina > 0 {
		pagina := consulta.Pagina
		if pagina < 1 {
			pagina = 1
		}
		response.OKPage(c, resultado.Filas, int64(resultado.Total), pagina, consulta.TamanoPagina)
		return
	}
	response.OK(c, resultado.Filas)
}
