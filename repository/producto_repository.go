package repository

import (
	"github.com/roberto426/Examen2-7234547/models"
	"gorm.io/gorm"
)

// IProductoRepository defines the data operations on productos.
type IProductoRepository interface {
	CRUD[models.Producto]
}

// NewProductoRepository creates a GORM backed IProductoRepository.
func NewProductoRepository(db *gorm.DB) IProductoRepository {
	return &crud[models.Producto]{
		db:      db,
		entity:  "producto",
		pk:      "id_producto",
		columns: []string{"nombre"},
		copy: func(dst, src *models.Producto) {
			dst.Nombre = src.Nombre
		},
		resetID: func(v *models.Producto) { v.ID = 0 },
	}
}
