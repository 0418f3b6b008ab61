package main

import (
	"context"
	"swapcloset/internal/app/deps"
	"swapcloset/internal/core/domain/logging"
	seedcategories "swapcloset/internal/core/services/seed_categories"

	"swapcloset/internal/app/services"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	result, err := services.SeedCategories.Run(context.Background(), seedcategories.Input{})
	if err != nil {
		log.Error(context.Background(), "Catalog seeding failed.", logging.Entry("err", err))
		return
	}
	log.Info(
		context.Background(),
		"Catalog seeding finished.",
		logging.Entry("categoryCount", len(result.Categories)),
	)
}
