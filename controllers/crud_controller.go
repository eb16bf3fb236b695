package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/roberto426/Examen2-7234547/repository"
	"github.com/roberto426/Examen2-7234547/services"
)

// CrudController handles the five CRUD endpoints of one entity.
type CrudController[T any] struct {
	service services.ICrudService[T]
	name    string
}

// NewCrudController creates a controller whose routes are built from name,
// e.g. "Producto" gives /listarProductos, /insertarProducto and so on.
func NewCrudController[T any](svc services.ICrudService[T], name string) *CrudController[T] {
	return &CrudController[T]{service: svc, name: name}
}

// Register mounts the entity routes on r.
func (c *CrudController[T]) Register(r fiber.Router) {
	r.Get("/listar"+c.name+"s", c.Listar)
	r.Post("/insertar"+c.name, c.Insertar)
	r.Put("/modificar"+c.name+"/:id", c.Modificar)
	r.Delete("/eliminar"+c.name+"/:id", c.Eliminar)
	r.Get("/obtener"+c.name+"ById/:id", c.ObtenerPorID)
}

// Listar handles GET /listar{E}s.
func (c *CrudController[T]) Listar(ctx *fiber.Ctx) error {
	items, err := c.service.Listar(ctx.UserContext())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(items)
}

// Insertar handles POST /insertar{E} and answers with the stored entity.
func (c *CrudController[T]) Insertar(ctx *fiber.Ctx) error {
	var v T
	if err := parseBody(ctx, &v); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidBody, err.Error())
	}

	if err := c.service.Insertar(ctx.UserContext(), &v); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) || errors.Is(err, repository.ErrNoRowsAffected) {
			return errorResponse(ctx, fiber.StatusBadRequest, CodeInsertFailed, c.name+" could not be inserted")
		}
		return serviceError(ctx, err)
	}
	return ctx.JSON(&v)
}

// Modificar handles PUT /modificar{E}/:id.
func (c *CrudController[T]) Modificar(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidID, "id must be a positive integer")
	}

	var v T
	if err := parseBody(ctx, &v); err != nil {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidBody, err.Error())
	}

	updated, err := c.service.Modificar(ctx.UserContext(), id, &v)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(updated)
}

// Eliminar handles DELETE /eliminar{E}/:id.
func (c *CrudController[T]) Eliminar(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidID, "id must be a positive integer")
	}

	if err := c.service.Eliminar(ctx.UserContext(), id); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// ObtenerPorID handles GET /obtener{E}ById/:id.
func (c *CrudController[T]) ObtenerPorID(ctx *fiber.Ctx) error {
	id, ok := parseID(ctx)
	if !ok {
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidID, "id must be a positive integer")
	}

	v, err := c.service.ObtenerPorID(ctx.UserContext(), id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(v)
}
