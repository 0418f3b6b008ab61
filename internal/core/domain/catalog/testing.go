package catalog

import (
	"context"
	"fmt"
	"sync"
)

type FakeCategoryRepository struct {
	Categories  []Category
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeCategoryRepository() *FakeCategoryRepository {
	return &FakeCategoryRepository{}
}

func (r *FakeCategoryRepository) UpsertBySlug(ctx context.Context, input UpsertCategoryInput) (c Category, err error) {
	if r.ReturnError {
		return c, fmt.Errorf("could not upsert category %s", input.Slug)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Categories {
		if existing.Slug == input.Slug {
			r.Categories[ix].Name = input.Name
			r.Categories[ix].Description = input.Description
			r.Categories[ix].IsActive = input.IsActive
			return r.Categories[ix], nil
		}
	}
	c = Category{
		ID:          CategoryID(len(r.Categories) + 1),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		IsActive:    input.IsActive,
	}
	r.Categories = append(r.Categories, c)
	return c, nil
}

func (r *FakeCategoryRepository) List(ctx context.Context) ([]Category, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]Category, len(r.Categories))
	copy(result, r.Categories)
	return result, nil
}
