package repository

import (
	"context"

	"github.com/roberto426/Examen2-7234547/models"
	"gorm.io/gorm"
)

// IPedidoRepository defines the data operations on pedidos.
type IPedidoRepository interface {
	CRUD[models.Pedido]
	// Registrar stores a pedido together with its detalles.
	Registrar(ctx context.Context, pedido *models.Pedido) error
}

// PedidoRepository implements IPedidoRepository for GORM.
type PedidoRepository struct {
	crud[models.Pedido]
}

// NewPedidoRepository creates a new PedidoRepository instance.
func NewPedidoRepository(db *gorm.DB) IPedidoRepository {
	return &PedidoRepository{crud[models.Pedido]{
		db:      db,
		entity:  "pedido",
		pk:      "id_pedido",
		columns: []string{"fecha", "total", "estado", "id_cliente"},
		copy: func(dst, src *models.Pedido) {
			dst.Fecha = src.Fecha
			dst.Total = src.Total
			dst.Estado = src.Estado
			dst.IDCliente = src.IDCliente
		},
		resetID: func(v *models.Pedido) { v.ID = 0 },
	}}
}

// Registrar creates the pedido and its detalles in one transaction.
// GORM fills IDPedido on every detalle from the has-many association.
// The belongs-to Cliente is never written from here.
func (r *PedidoRepository) Registrar(ctx context.Context, pedido *models.Pedido) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Cliente").Create(pedido).Error
	})
	return classify("register pedido", err)
}
