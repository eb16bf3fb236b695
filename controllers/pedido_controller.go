package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/services"
)

// PedidoController handles the combined order registration endpoint.
type PedidoController struct {
	pedidoService services.IPedidoService
}

// NewPedidoController creates a new PedidoController instance.
func NewPedidoController(svc services.IPedidoService) *PedidoController {
	return &PedidoController{pedidoService: svc}
}

// RegistrarPedido handles POST /registrarPedido. The body is a pedido with
// its detalles nested under "detalles".
func (c *PedidoController) RegistrarPedido(ctx *fiber.Ctx) error {
	var pedido models.Pedido
	if err := parseBody(ctx, &pedido); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidBody, err.Error())
	}

	created, err := c.pedidoService.Registrar(ctx.UserContext(), &pedido)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(created)
}
