package repository

import (
	"context"

	"github.com/roberto426/Examen2-7234547/models"
	"gorm.io/gorm"
)

// IClienteRepository defines the data operations on clientes.
type IClienteRepository interface {
	CRUD[models.Cliente]
	// EliminarCascada removes a cliente with all of its pedidos and their
	// detalles.
	EliminarCascada(ctx context.Context, id uint) (*models.EliminacionCascada, error)
}

// ClienteRepository implements IClienteRepository for GORM.
type ClienteRepository struct {
	crud[models.Cliente]
}

// NewClienteRepository creates a new ClienteRepository instance.
func NewClienteRepository(db *gorm.DB) IClienteRepository {
	return &ClienteRepository{crud[models.Cliente]{
		db:      db,
		entity:  "cliente",
		pk:      "id_cliente",
		columns: []string{"nombre", "apellido"},
		copy: func(dst, src *models.Cliente) {
			dst.Nombre = src.Nombre
			dst.Apellido = src.Apellido
		},
		resetID: func(v *models.Cliente) { v.ID = 0 },
	}}
}

// EliminarCascada deletes children explicitly inside one transaction, so the
// result is the same whether or not the schema carries ON DELETE CASCADE.
func (r *ClienteRepository) EliminarCascada(ctx context.Context, id uint) (*models.EliminacionCascada, error) {
	out := &models.EliminacionCascada{IDCliente: id}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cliente models.Cliente
		if err := tx.First(&cliente, id).Error; err != nil {
			return err
		}

		pedidos := tx.Model(&models.Pedido{}).Select("id_pedido").Where("id_cliente = ?", id)
		res := tx.Where("id_pedido IN (?)", pedidos).Delete(&models.Detalle{})
		if res.Error != nil {
			return res.Error
		}
		out.Detalles = res.RowsAffected

		res = tx.Where("id_cliente = ?", id).Delete(&models.Pedido{})
		if res.Error != nil {
			return res.Error
		}
		out.Pedidos = res.RowsAffected

		res = tx.Delete(&cliente)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, classify("cascade delete cliente", err)
	}
	return out, nil
}
