package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/repository"
)

// TopProductosLimit is the size of the top products report.
const TopProductosLimit = 3

// IReporteService defines the read-only reports.
type IReporteService interface {
	ReportePedidosPorCliente(ctx context.Context) ([]models.ReportePedidoCliente, error)
	Top3Productos(ctx context.Context) ([]models.ProductoMasPedido, error)
	TopProductosEntre(ctx context.Context, inicio, fin time.Time) ([]models.ProductoMasPedido, error)
}

// ReporteService implements IReporteService.
type ReporteService struct {
	repo repository.IReporteRepository
}

// NewReporteService creates a new ReporteService instance.
func NewReporteService(repo repository.IReporteRepository) IReporteService {
	return &ReporteService{repo: repo}
}

func (s *ReporteService) ReportePedidosPorCliente(ctx context.Context) ([]models.ReportePedidoCliente, error) {
	rows, err := s.repo.ReportePedidosPorCliente(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build pedidos report: %w", err)
	}
	return rows, nil
}

func (s *ReporteService) Top3Productos(ctx context.Context) ([]models.ProductoMasPedido, error) {
	rows, err := s.repo.TopProductos(ctx, TopProductosLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank productos: %w", err)
	}
	return rows, nil
}

// TopProductosEntre ranks every product ordered in [inicio, fin].
func (s *ReporteService) TopProductosEntre(ctx context.Context, inicio, fin time.Time) ([]models.ProductoMasPedido, error) {
	if fin.Before(inicio) {
		return nil, newValidationError(errors.New("fechaFin must not be before fechaInicio"))
	}
	rows, err := s.repo.TopProductosEntre(ctx, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("failed to rank productos between %s and %s: %w",
			inicio.Format(time.RFC3339), fin.Format(time.RFC3339), err)
	}
	return rows, nil
}
