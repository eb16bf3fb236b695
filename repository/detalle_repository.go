package repository

import (
	"github.com/roberto426/Examen2-7234547/models"
	"gorm.io/gorm"
)

// IDetalleRepository defines the data operations on detalles.
type IDetalleRepository interface {
	CRUD[models.Detalle]
}

// NewDetalleRepository creates a GORM backed IDetalleRepository.
func NewDetalleRepository(db *gorm.DB) IDetalleRepository {
	return &crud[models.Detalle]{
		db:      db,
		entity:  "detalle",
		pk:      "id",
		columns: []string{"cantidad", "precio", "sub_total", "id_pedido", "id_producto"},
		copy: func(dst, src *models.Detalle) {
			dst.Cantidad = src.Cantidad
			dst.Precio = src.Precio
			dst.SubTotal = src.SubTotal
			dst.IDPedido = src.IDPedido
			dst.IDProducto = src.IDProducto
		},
		resetID: func(v *models.Detalle) { v.ID = 0 },
	}
}
