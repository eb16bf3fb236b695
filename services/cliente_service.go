package services

import (
	"context"
	"fmt"
	"log"

	"github.com/roberto426/Examen2-7234547/models"
	"github.com/roberto426/Examen2-7234547/repository"
)

// IClienteService defines the business operations on clientes.
type IClienteService interface {
	ICrudService[models.Cliente]
	EliminarCascada(ctx context.Context, id uint) (*models.EliminacionCascada, error)
}

// ClienteService implements IClienteService.
type ClienteService struct {
	crudService[models.Cliente]
	clienteRepo repository.IClienteRepository
	events      IEventPublisher
}

// NewClienteService creates a new ClienteService instance.
func NewClienteService(repo repository.IClienteRepository, events IEventPublisher) IClienteService {
	return &ClienteService{
		crudService: crudService[models.Cliente]{repo: repo, entity: "cliente"},
		clienteRepo: repo,
		events:      events,
	}
}

// EliminarCascada removes the cliente together with its pedidos and their
// detalles. A missing cliente yields repository.ErrNotFound.
func (s *ClienteService) EliminarCascada(ctx context.Context, id uint) (*models.EliminacionCascada, error) {
	out, err := s.clienteRepo.EliminarCascada(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete cliente %d: %w", id, err)
	}
	log.Printf("Cliente %d deleted with %d pedidos and %d detalles", id, out.Pedidos, out.Detalles)

	if err := s.events.ClienteEliminado(ctx, id); err != nil {
		// The delete is committed; a lost event must not undo it.
		log.Printf("Failed to publish cliente.eliminado for %d: %v", id, err)
	}
	return out, nil
}
