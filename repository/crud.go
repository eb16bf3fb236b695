package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CRUD is the contract shared by every entity repository.
type CRUD[T any] interface {
	Insert(ctx context.Context, v *T) error
	Update(ctx context.Context, id uint, v *T) (*T, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
}

// crud implements CRUD for one table. columns are the mutable columns
// written by Update; copy moves their values from the request onto the
// stored row. resetID clears the primary key so storage always assigns it.
type crud[T any] struct {
	db      *gorm.DB
	entity  string
	pk      string
	columns []string
	copy    func(dst, src *T)
	resetID func(v *T)
}

func (c *crud[T]) Insert(ctx context.Context, v *T) error {
	c.resetID(v)
	res := c.db.WithContext(ctx).Omit(clause.Associations).Create(v)
	if res.Error != nil {
		return classify("insert "+c.entity, res.Error)
	}
	if res.RowsAffected != 1 {
		return &StorageError{Op: "insert " + c.entity, Err: ErrNoRowsAffected}
	}
	return nil
}

func (c *crud[T]) Update(ctx context.Context, id uint, v *T) (*T, error) {
	db := c.db.WithContext(ctx)

	var existing T
	if err := db.First(&existing, id).Error; err != nil {
		return nil, classify("find "+c.entity, err)
	}

	c.copy(&existing, v)

	res := db.Model(&existing).Select(c.columns).Omit(clause.Associations).Updates(&existing)
	if res.Error != nil {
		return nil, classify("update "+c.entity, res.Error)
	}
	if res.RowsAffected != 1 {
		// The row disappeared between the lookup and the write.
		return nil, ErrNotFound
	}
	return &existing, nil
}

func (c *crud[T]) Delete(ctx context.Context, id uint) error {
	db := c.db.WithContext(ctx)

	var existing T
	if err := db.First(&existing, id).Error; err != nil {
		return classify("find "+c.entity, err)
	}

	res := db.Delete(&existing)
	if res.Error != nil {
		return classify("delete "+c.entity, res.Error)
	}
	if res.RowsAffected != 1 {
		return ErrNotFound
	}
	return nil
}

// List never returns a nil slice, even on failure.
func (c *crud[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	if err := c.db.WithContext(ctx).Order(c.pk).Find(&items).Error; err != nil {
		return []T{}, classify("list "+c.entity, err)
	}
	return items, nil
}

func (c *crud[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := c.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, classify("get "+c.entity, err)
	}
	return &v, nil
}
