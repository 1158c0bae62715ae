package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// ExportHandler módulo de exportación de horarios
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crea un ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// XLSX descarga la cuadrícula de un profesor como Excel
// GET /api/horarios/exportar/xlsx/:id
func (h *ExportHandler) XLSX(c *gin.Context) {
	profesorID, ok := parseIDParam(c)
	if !ok {
		return
	}

	buf, nombre, err := h.exportSvc.ExportXLSX(c.Request.Context(), profesorID)
	if err != nil {
		h.responderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ICS descarga las asignaciones de un profesor como calendario
// GET /api/horarios/exportar/ics/:id
func (h *ExportHandler) ICS(c *gin.Context) {
	profesorID, ok := parseIDParam(c)
	if !ok {
		return
	}

	buf, nombre, err := h.exportSvc.ExportICS(c.Request.Context(), profesorID)
	if err != nil {
		h.responderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (h *ExportHandler) responderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfesorNotFound):
		response.NotFound(c, 23001, "el profesor no existe")
	case errors.Is(err, service.ErrExportSinAsignaciones):
		response.NotFound(c, 28001, "el profesor no tiene asignaciones activas")
	default:
		response.InternalError(c)
	}
}
