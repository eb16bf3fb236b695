package models

import "time"

// Cliente represents a customer who places pedidos.
type Cliente struct {
	ID       uint     `json:"idCliente" gorm:"column:id_cliente;primaryKey;autoIncrement"`
	Nombre   *string  `json:"nombre"`
	Apellido *string  `json:"apellido"`
	Pedidos  []Pedido `json:"pedidos,omitempty" gorm:"foreignKey:IDCliente;references:ID;constraint:OnDelete:CASCADE"`
}

func (Cliente) TableName() string { return "clientes" }

// Producto is referenced, not owned, by Detalle rows.
type Producto struct {
	ID       uint      `json:"idProducto" gorm:"column:id_producto;primaryKey;autoIncrement"`
	Nombre   *string   `json:"nombre"`
	Detalles []Detalle `json:"-" gorm:"foreignKey:IDProducto;references:ID;constraint:OnDelete:CASCADE"`
}

func (Producto) TableName() string { return "productos" }

// Pedido is an order placed by a Cliente. It owns its Detalles.
type Pedido struct {
	ID        uint      `json:"idPedido" gorm:"column:id_pedido;primaryKey;autoIncrement"`
	Fecha     time.Time `json:"fecha" gorm:"not null"`
	Total     *int      `json:"total"`
	Estado    *string   `json:"estado"`
	IDCliente uint      `json:"idCliente" gorm:"column:id_cliente;not null;index"`
	Cliente   *Cliente  `json:"cliente,omitempty" gorm:"foreignKey:IDCliente;references:ID"`
	Detalles  []Detalle `json:"detalles,omitempty" gorm:"foreignKey:IDPedido;references:ID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }

// Detalle is a single line of a Pedido.
type Detalle struct {
	ID         uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Cantidad   *int      `json:"cantidad"`
	Precio     *int      `json:"precio"`
	SubTotal   *int      `json:"subTotal"`
	IDPedido   uint      `json:"idPedido" gorm:"column:id_pedido;not null;index"`
	Pedido     *Pedido   `json:"pedido,omitempty" gorm:"foreignKey:IDPedido;references:ID"`
	IDProducto uint      `json:"idProducto" gorm:"column:id_producto;not null;index"`
	Producto   *Producto `json:"producto,omitempty" gorm:"foreignKey:IDProducto;references:ID"`
}

func (Detalle) TableName() string { return "detalles" }

// CalcularSubTotal returns cantidad*precio, or nil when either is absent.
func CalcularSubTotal(cantidad, precio *int) *int {
	if cantidad == nil || precio == nil {
		return nil
	}
	v := *cantidad * *precio
	return &v
}

// All lists every persisted model in dependency order, for AutoMigrate.
func All() []any {
	return []any{&Cliente{}, &Producto{}, &Pedido{}, &Detalle{}}
}
