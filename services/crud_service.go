package services

import (
	"context"
	"fmt"

	"github.com/roberto426/Examen2-7234547/repository"
)

// ICrudService is the per-entity business interface used by the controllers.
type ICrudService[T any] interface {
	Listar(ctx context.Context) ([]T, error)
	Insertar(ctx context.Context, v *T) error
	Modificar(ctx context.Context, id uint, v *T) (*T, error)
	Eliminar(ctx context.Context, id uint) error
	ObtenerPorID(ctx context.Context, id uint) (*T, error)
}

// crudService forwards to a repository. The before hooks may rewrite or
// reject a value ahead of the write.
type crudService[T any] struct {
	repo         repository.CRUD[T]
	entity       string
	beforeInsert func(*T) error
	beforeUpdate func(*T) error
}

func (s *crudService[T]) Listar(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return items, fmt.Errorf("failed to list %ss: %w", s.entity, err)
	}
	return items, nil
}

func (s *crudService[T]) Insertar(ctx context.Context, v *T) error {
	if s.beforeInsert != nil {
		if err := s.beforeInsert(v); err != nil {
			return err
		}
	}
	if err := s.repo.Insert(ctx, v); err != nil {
		return fmt.Errorf("failed to insert %s: %w", s.entity, err)
	}
	return nil
}

func (s *crudService[T]) Modificar(ctx context.Context, id uint, v *T) (*T, error) {
	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(v); err != nil {
			return nil, err
		}
	}
	updated, err := s.repo.Update(ctx, id, v)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %d: %w", s.entity, id, err)
	}
	return updated, nil
}

func (s *crudService[T]) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", s.entity, id, err)
	}
	return nil
}

func (s *crudService[T]) ObtenerPorID(ctx context.Context, id uint) (*T, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", s.entity, id, err)
	}
	return v, nil
}
