package listcategories

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

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	categories, err := s.categoryRepository.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Categories: categories}, nil
}
