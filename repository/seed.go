package repository

import (
	"context"
	"errors"
	"log"

	"github.com/roberto426/Examen2-7234547/models"
	"gorm.io/gorm"
)

func ptr(s string) *string { return &s }

var (
	seedClientes = []models.Cliente{
		{Nombre: ptr("Budi"), Apellido: ptr("Santoso")},
		{Nombre: ptr("Siti"), Apellido: ptr("Rahayu")},
		{Nombre: ptr("Joko"), Apellido: ptr("Susilo")},
	}
	seedProductos = []models.Producto{
		{Nombre: ptr("Laptop")},
		{Nombre: ptr("Mouse")},
		{Nombre: ptr("Teclado")},
	}
)

// Seed creates some sample clientes and productos. Rows already present,
// matched by name, are left alone so the command can be rerun.
func Seed(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	for _, c := range seedClientes {
		cliente := c
		var existing models.Cliente
		err := db.Where("nombre = ? AND apellido = ?", *cliente.Nombre, *cliente.Apellido).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return classify("find cliente", err)
		}
		if err := db.Create(&cliente).Error; err != nil {
			return classify("seed cliente", err)
		}
		log.Printf("Seeded cliente: %s %s (%d)", *cliente.Nombre, *cliente.Apellido, cliente.ID)
	}

	for _, p := range seedProductos {
		producto := p
		var existing models.Producto
		err := db.Where("nombre = ?", *producto.Nombre).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return classify("find producto", err)
		}
		if err := db.Create(&producto).Error; err != nil {
			return classify("seed producto", err)
		}
		log.Printf("Seeded producto: %s (%d)", *producto.Nombre, producto.ID)
	}

	log.Println("Sample data seeding process finished.")
	return nil
}
