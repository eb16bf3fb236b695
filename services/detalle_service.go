package services

import (
	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/repository"
)

// IDetalleService defines the business operations on detalles.
type IDetalleService = ICrudService[models.Detalle]

// NewDetalleService creates a new IDetalleService. The subtotal is always
// derived from cantidad and precio, on insert as well as on update; any
// subTotal sent by the client is discarded.
func NewDetalleService(repo repository.IDetalleRepository) IDetalleService {
	return &crudService[models.Detalle]{
		repo:         repo,
		entity:       "detalle",
		beforeInsert: calcularSubTotal,
		beforeUpdate: calcularSubTotal,
	}
}

func calcularSubTotal(d *models.Detalle) error {
	d.SubTotal = models.CalcularSubTotal(d.Cantidad, d.Precio)
	return nil
}
