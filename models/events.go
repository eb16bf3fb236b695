package models

import "time"

// Event types published to the pedidos topic.
const (
	EventoPedidoRegistrado = "pedido.registrado"
	EventoClienteEliminado = "cliente.eliminado"
)

// Evento is the JSON envelope of every domain event.
type Evento struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	Ocurrido  time.Time `json:"ocurrido"`
	Pedido    *Pedido   `json:"pedido,omitempty"`
	IDCliente *uint     `json:"idCliente,omitempty"`
}

// DemandaProducto is the running line count of a product, published keyed by
// product id to the compacted demand topic.
type DemandaProducto struct {
	IDProducto uint  `json:"idProducto"`
	Cantidad   int64 `json:"cantidad"`
}
