package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/services"
)

// Services groups the dependencies of the HTTP layer.
type Services struct {
	Clientes  services.IClienteService
	Productos services.IProductoService
	Pedidos   services.IPedidoService
	Detalles  services.IDetalleService
	Reportes  services.IReporteService
	// Ping reports whether the database is reachable.
	Ping func(ctx context.Context) error
}

// RegisterRoutes mounts every endpoint under /api.
func RegisterRoutes(app fiber.Router, svc Services) {
	api := app.Group("/api")

	NewCrudController[models.Cliente](svc.Clientes, "Cliente").Register(api)
	NewCrudController[models.Producto](svc.Productos, "Producto").Register(api)
	NewCrudController[models.Pedido](svc.Pedidos, "Pedido").Register(api)
	NewCrudController[models.Detalle](svc.Detalles, "Detalle").Register(api)

	pedidos := NewPedidoController(svc.Pedidos)
	api.Post("/registrarPedido", pedidos.RegistrarPedido)

	reportes := NewReporteController(svc.Reportes, svc.Clientes)
	api.Get("/listarReportePedidos", reportes.ListarReportePedidos)
	api.Get("/listarTop3Productos", reportes.ListarTop3Productos)
	api.Get("/listarTopProductos", reportes.ListarTopProductos)
	api.Delete("/eliminarClienteCascada/:id", reportes.EliminarClienteCascada)

	api.Get("/health", health(svc.Ping))
}

func health(ping func(ctx context.Context) error) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ping != nil {
			if err := ping(ctx.UserContext()); err != nil {
				return errorResponse(ctx, fiber.StatusServiceUnavailable, CodeDatabaseUnhealthy, "database is not reachable")
			}
		}
		return ctx.JSON(fiber.Map{"status": "ok"})
	}
}
