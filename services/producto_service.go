package services

import (
	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/repository"
)

// IProductoService defines the business operations on productos.
type IProductoService = ICrudService[models.Producto]

// NewProductoService creates a new IProductoService.
func NewProductoService(repo repository.IProductoRepository) IProductoService {
	return &crudService[models.Producto]{repo: repo, entity: "producto"}
}
