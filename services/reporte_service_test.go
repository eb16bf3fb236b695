package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReporteService_Top3Productos_UsesLimit(t *testing.T) {
	repo := new(MockReporteRepository)
	svc := services.NewReporteService(repo)
	ctx := context.Background()

	want := []models.ProductoMasPedido{
		{IDProducto: 1, NombreProducto: strPtr("A"), Cantidad: 5},
		{IDProducto: 2, NombreProducto: strPtr("B"), Cantidad: 3},
		{IDProducto: 3, NombreProducto: strPtr("C"), Cantidad: 3},
	}
	repo.On("TopProductos", ctx, 3).Return(want, nil)

	got, err := svc.Top3Productos(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestReporteService_TopProductosEntre(t *testing.T) {
	repo := new(MockReporteRepository)
	svc := services.NewReporteService(repo)
	ctx := context.Background()

	inicio := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	repo.On("TopProductosEntre", ctx, inicio, fin).Return([]models.ProductoMasPedido{}, nil)

	got, err := svc.TopProductosEntre(ctx, inicio, fin)
	require.NoError(t, err)
	assert.Empty(t, got)

	// A single instant is a valid range.
	repo.On("TopProductosEntre", ctx, inicio, inicio).Return([]models.ProductoMasPedido{}, nil)
	_, err = svc.TopProductosEntre(ctx, inicio, inicio)
	assert.NoError(t, err)
}

func TestReporteService_TopProductosEntre_RejectsReversedRange(t *testing.T) {
	repo := new(MockReporteRepository)
	svc := services.NewReporteService(repo)

	inicio := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.TopProductosEntre(context.Background(), inicio, fin)

	var ve *services.ValidationError
	assert.ErrorAs(t, err, &ve)
	repo.AssertNotCalled(t, "TopProductosEntre", mock.Anything, mock.Anything, mock.Anything)
}

func TestReporteService_ReportePedidosPorCliente_Error(t *testing.T) {
	repo := new(MockReporteRepository)
	svc := services.NewReporteService(repo)
	ctx := context.Background()

	repo.On("ReportePedidosPorCliente", ctx).Return([]models.ReportePedidoCliente{}, errors.New("boom"))

	rows, err := svc.ReportePedidosPorCliente(ctx)
	assert.Error(t, err)
	assert.Nil(t, rows)
}
