package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/repository"
)

// IPedidoService defines the business operations on pedidos.
type IPedidoService interface {
	ICrudService[models.Pedido]
	// Registrar stores a pedido with its nested detalles.
	Registrar(ctx context.Context, pedido *models.Pedido) (*models.Pedido, error)
}

// PedidoService implements IPedidoService.
type PedidoService struct {
	crudService[models.Pedido]
	pedidoRepo  repository.IPedidoRepository
	clienteRepo repository.IClienteRepository
	events      IEventPublisher
	now         func() time.Time
}

// NewPedidoService creates a new PedidoService instance.
func NewPedidoService(repo repository.IPedidoRepository, clienteRepo repository.IClienteRepository, events IEventPublisher) IPedidoService {
	s := &PedidoService{
		pedidoRepo:  repo,
		clienteRepo: clienteRepo,
		events:      events,
		now:         func() time.Time { return time.Now().UTC() },
	}
	s.crudService = crudService[models.Pedido]{
		repo:         repo,
		entity:       "pedido",
		beforeInsert: s.completarFecha,
		beforeUpdate: exigirFecha,
	}
	return s
}

func (s *PedidoService) completarFecha(p *models.Pedido) error {
	if p.Fecha.IsZero() {
		p.Fecha = s.now()
	}
	return nil
}

func exigirFecha(p *models.Pedido) error {
	if p.Fecha.IsZero() {
		return newValidationError(errors.New("fecha is required"))
	}
	return nil
}

// Registrar handles the business logic for registering a new pedido.
func (s *PedidoService) Registrar(ctx context.Context, pedido *models.Pedido) (*models.Pedido, error) {
	// 1. The cliente must exist.
	if _, err := s.clienteRepo.GetByID(ctx, pedido.IDCliente); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrClienteNotFound, pedido.IDCliente)
		}
		return nil, fmt.Errorf("failed to look up cliente %d: %w", pedido.IDCliente, err)
	}

	// 2. Validate every line before touching storage.
	if err := validarDetalles(pedido.Detalles); err != nil {
		return nil, err
	}

	// 3. Derive subtotals, the total and the date.
	var total *int
	for i := range pedido.Detalles {
		d := &pedido.Detalles[i]
		d.ID = 0
		d.Pedido = nil
		d.Producto = nil
		d.SubTotal = models.CalcularSubTotal(d.Cantidad, d.Precio)
		if d.SubTotal != nil {
			if total == nil {
				total = new(int)
			}
			*total += *d.SubTotal
		}
	}
	if pedido.Total == nil {
		pedido.Total = total
	}
	if err := s.completarFecha(pedido); err != nil {
		return nil, err
	}
	pedido.ID = 0
	pedido.Cliente = nil

	// 4. Persist the pedido and its detalles.
	if err := s.pedidoRepo.Registrar(ctx, pedido); err != nil {
		return nil, fmt.Errorf("failed to save pedido to database: %w", err)
	}
	log.Printf("Pedido %d registered for cliente %d with %d detalles", pedido.ID, pedido.IDCliente, len(pedido.Detalles))

	// 5. Publish the event. The pedido is already stored, so a failure here
	// is only logged.
	if err := s.events.PedidoRegistrado(ctx, pedido); err != nil {
		log.Printf("Failed to publish pedido.registrado for %d: %v", pedido.ID, err)
	}

	return pedido, nil
}

func validarDetalles(detalles []models.Detalle) error {
	if len(detalles) == 0 {
		return newValidationError(errors.New("pedido must contain at least one detalle"))
	}

	var merr *multierror.Error
	for i, d := range detalles {
		if d.IDProducto == 0 {
			merr = multierror.Append(merr, fmt.Errorf("detalle %d: idProducto is required", i))
		}
		if d.Cantidad != nil && *d.Cantidad <= 0 {
			merr = multierror.Append(merr, fmt.Errorf("detalle %d: cantidad must be positive", i))
		}
		if d.Precio != nil && *d.Precio < 0 {
			merr = multierror.Append(merr, fmt.Errorf("detalle %d: precio cannot be negative", i))
		}
	}
	return toValidationError(merr)
}
