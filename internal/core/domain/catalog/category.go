package catalog

import (
	"context"
	"errors"
)

type CategoryID int64

type Category struct {
	ID          CategoryID
	Name        string
	Slug        string
	Description string
	IsActive    bool
}

var ErrCategoryDoesNotExist = errors.New("category does not exist")

type UpsertCategoryInput struct {
	Name        string
	Slug        string
	Description string
	IsActive    bool
}

type CategoryRepository interface {
	// UpsertBySlug creates the category or, when the slug already exists,
	// refreshes its name, description and active flag.
	UpsertBySlug(ctx context.Context, input UpsertCategoryInput) (Category, error)
	List(ctx context.Context) ([]Category, error)
}
