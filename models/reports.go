package models

import "time"

// ReportePedidoCliente is one flattened detalle row of the customer report.
type ReportePedidoCliente struct {
	NombreCliente  *string   `json:"nombreCliente"`
	FechaPedido    time.Time `json:"fechaPedido"`
	NombreProducto *string   `json:"nombreProducto"`
}

// ProductoMasPedido is a product together with the number of detalle lines
// that reference it.
type ProductoMasPedido struct {
	IDProducto     uint    `json:"idProducto"`
	NombreProducto *string `json:"nombreProducto"`
	Cantidad       int64   `json:"cantidad"`
}

// EliminacionCascada reports what a cascading customer delete removed.
type EliminacionCascada struct {
	IDCliente uint  `json:"idCliente"`
	Pedidos   int64 `json:"pedidos"`
	Detalles  int64 `json:"detalles"`
}
