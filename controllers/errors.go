package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/roberto426/Examen2-7234547/repository"
	"github.com/roberto426/Examen2-7234547/services"
)

// Stable error codes returned in the "error.code" field.
const (
	CodeInvalidBody       = "INVALID_BODY"
	CodeInvalidID         = "INVALID_ID"
	CodeInsertFailed      = "INSERT_FAILED"
	CodeInvalidReference  = "INVALID_REFERENCE"
	CodeNotFound          = "NOT_FOUND"
	CodeClienteNotFound   = "CLIENTE_NOT_FOUND"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInvalidDateRange  = "INVALID_DATE_RANGE"
	CodeStorageFailure    = "STORAGE_FAILURE"
	CodeDatabaseUnhealthy = "DATABASE_UNAVAILABLE"
)

const storageFailureMessage = "internal storage error"

func errorResponse(ctx *fiber.Ctx, status int, code, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": fiber.Map{"code": code, "message": message},
	})
}

// serviceError maps an error returned by the service layer to a response.
// Anything unrecognised is reported as a storage failure without the
// underlying driver message.
func serviceError(ctx *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		return errorResponse(ctx, fiber.StatusBadRequest, CodeValidationFailed, validation.Error())
	case errors.Is(err, services.ErrClienteNotFound):
		return errorResponse(ctx, fiber.StatusNotFound, CodeClienteNotFound, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return errorResponse(ctx, fiber.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, repository.ErrInvalidReference):
		return errorResponse(ctx, fiber.StatusBadRequest, CodeInvalidReference, repository.ErrInvalidReference.Error())
	}

	log.Printf("%s %s failed: %v", ctx.Method(), ctx.Path(), err)
	return errorResponse(ctx, fiber.StatusInternalServerError, CodeStorageFailure, storageFailureMessage)
}

// parseID reads the ":id" route parameter.
func parseID(ctx *fiber.Ctx) (uint, bool) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// parseBody decodes a required JSON body into v.
func parseBody(ctx *fiber.Ctx, v any) error {
	if len(ctx.Body()) == 0 {
		return errors.New("request body is required")
	}
	if err := ctx.BodyParser(v); err != nil {
		return errors.New("invalid request body format")
	}
	return nil
}
