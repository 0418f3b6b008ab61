package seedcategories

import (
	"context"
	"swapcloset/internal/core/domain/catalog"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/domain/logging"
	"swapcloset/internal/core/services"
)

type Input struct{}

type Result struct {
	Categories []catalog.Category
}

type service struct {
	log                logging.Logger
	categoryRepository catalog.CategoryRepository
}

func New(
	log logging.Logger,
	categoryRepository catalog.CategoryRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if categoryRepository == nil {
		panic(e.NewNilArgumentError("categoryRepository"))
	}
	return &service{log: log, categoryRepository: categoryRepository}
}

// Run upserts the default catalog, so re-running it refreshes descriptions
// without duplicating categories.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	categories := make([]catalog.Category, 0, len(catalog.DefaultCategories))
	for _, seed := range catalog.DefaultCategories {
		category, err := s.categoryRepository.UpsertBySlug(ctx, seed)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("slug", seed.Slug))
			return result, err
		}
		categories = append(categories, category)
	}
	s.log.Info(ctx, "Catalog seeded.", logging.Entry("count", len(categories)))
	return Result{Categories: categories}, nil
}
