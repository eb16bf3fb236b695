package repository

import (
	"context"
	"time"

	"github.com/roberto426/Examen2-7234547/models"
	"gorm.io/gorm"
)

// IReporteRepository defines the read-only aggregate queries.
type IReporteRepository interface {
	ReportePedidosPorCliente(ctx context.Context) ([]models.ReportePedidoCliente, error)
	TopProductos(ctx context.Context, limit int) ([]models.ProductoMasPedido, error)
	TopProductosEntre(ctx context.Context, inicio, fin time.Time) ([]models.ProductoMasPedido, error)
}

// ReporteRepository implements IReporteRepository for GORM.
type ReporteRepository struct {
	DB *gorm.DB
}

// NewReporteRepository creates a new ReporteRepository instance.
func NewReporteRepository(db *gorm.DB) IReporteRepository {
	return &ReporteRepository{DB: db}
}

// ReportePedidosPorCliente flattens every detalle into customer name, order
// date and product name.
func (r *ReporteRepository) ReportePedidosPorCliente(ctx context.Context) ([]models.ReportePedidoCliente, error) {
	rows := []models.ReportePedidoCliente{}
	err := r.DB.WithContext(ctx).
		Table("detalles AS d").
		Select("c.nombre AS nombre_cliente, pe.fecha AS fecha_pedido, pr.nombre AS nombre_producto").
		Joins("JOIN pedidos AS pe ON pe.id_pedido = d.id_pedido").
		Joins("JOIN clientes AS c ON c.id_cliente = pe.id_cliente").
		Joins("JOIN productos AS pr ON pr.id_producto = d.id_producto").
		Order("d.id").
		Scan(&rows).Error
	if err != nil {
		return []models.ReportePedidoCliente{}, classify("report pedidos por cliente", err)
	}
	return rows, nil
}

// TopProductos returns the limit most ordered products. A limit <= 0 means
// no cap.
func (r *ReporteRepository) TopProductos(ctx context.Context, limit int) ([]models.ProductoMasPedido, error) {
	return r.ranking(ctx, "top productos", limit, nil)
}

// TopProductosEntre ranks products over the detalles whose pedido date lies
// in [inicio, fin], both ends included.
func (r *ReporteRepository) TopProductosEntre(ctx context.Context, inicio, fin time.Time) ([]models.ProductoMasPedido, error) {
	return r.ranking(ctx, "top productos entre fechas", 0, func(q *gorm.DB) *gorm.DB {
		return q.Joins("JOIN pedidos AS pe ON pe.id_pedido = d.id_pedido").
			Where("pe.fecha >= ? AND pe.fecha <= ?", inicio, fin)
	})
}

// ranking groups detalles by product and orders the groups by line count,
// breaking ties by ascending product id.
func (r *ReporteRepository) ranking(ctx context.Context, op string, limit int, scope func(*gorm.DB) *gorm.DB) ([]models.ProductoMasPedido, error) {
	q := r.DB.WithContext(ctx).
		Table("detalles AS d").
		Select("d.id_producto AS id_producto, MAX(pr.nombre) AS nombre_producto, COUNT(*) AS cantidad").
		Joins("JOIN productos AS pr ON pr.id_producto = d.id_producto")
	if scope != nil {
		q = scope(q)
	}
	q = q.Group("d.id_producto").Order("cantidad DESC, d.id_producto ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows := []models.ProductoMasPedido{}
	if err := q.Scan(&rows).Error; err != nil {
		return []models.ProductoMasPedido{}, classify(op, err)
	}
	return rows, nil
}
