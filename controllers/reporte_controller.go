package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/roberto426/Examen2-7234547/services"
)

// dateOnlyLayout is the day-precision form of fechaInicio and fechaFin.
const dateOnlyLayout = "2006-01-02"

// dateLayouts are the accepted forms of fechaInicio and fechaFin. Values
// without a zone are read in local time.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", dateOnlyLayout}

// ReporteController serves the aggregate reports and the cascading
// cliente delete.
type ReporteController struct {
	reporteService services.IReporteService
	clienteService services.IClienteService
}

// NewReporteController creates a new ReporteController instance.
func NewReporteController(reportes services.IReporteService, clientes services.IClienteService) *ReporteController {
	return &ReporteController{reporteService: reportes, clienteService: clientes}
}

// ListarReportePedidos handles GET /listarReportePedidos.
func (c *ReporteController) ListarReportePedidos(ctx *fiber.Ctx) error {
	rows, err := c.reporteService.ReportePedidosPorCliente(ctx.UserContext())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(rows)
}

// ListarTop3Productos handles GET /listarTop3Productos.
func (c *ReporteController) ListarTop3Productos(ctx *fiber.Ctx) error {
	rows, err := c.reporteService.Top3Productos(ctx.UserContext())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(rows)
}

// ListarTopProductos handles GET /listarTopProductos?fechaInicio=&fechaFin=.
// A date-only fechaFin covers that whole day.
func (c *ReporteController) ListarTopProductos(ctx *fiber.Ctx) error {
	inicio, _, err := parseFecha(ctx.Query("fechaInicio"))
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidDateRange, "fechaInicio: "+err.Error())
	}
	fin, dateOnly, err := parseFecha(ctx.Query("fechaFin"))
	if err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidDateRange, "fechaFin: "+err.Error())
	}
	if dateOnly {
		fin = endOfDay(fin)
	}

	rows, err := c.reporteService.TopProductosEntre(ctx.UserContext(), inicio, fin)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidDateRange, validation.Error())
		}
		return serviceError(ctx, err)
	}
	return ctx.JSON(rows)
}

// EliminarClienteCascada handles DELETE /eliminarClienteCascada/:id.
func (c *ReporteController) EliminarClienteCascada(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidID, "id must be a positive integer")
	}

	out, err := c.clienteService.EliminarCascada(ctx.UserContext(), id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"mensaje":  "Cliente eliminado",
		"pedidos":  out.Pedidos,
		"detalles": out.Detalles,
	})
}

// parseFecha also reports whether value carried only a date.
func parseFecha(value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, errors.New("is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, layout == dateOnlyLayout, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%q is not a valid date", value)
}

// endOfDay returns the last instant of the day starting at day.
func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
