package catalog

import (
	"context"

	"swapcloset/internal/core/domain/catalog"
	"swapcloset/internal/db"

	sq "github.com/Masterminds/squirrel"
)

type PgxCategoryRepository struct {
	exec    db.Executor
	builder sq.StatementBuilderType
}

func NewPgxRepository(exec db.Executor) *PgxCategoryRepository {
	if exec == nil {
		panic("Argument exec must not be nil.")
	}
	return &PgxCategoryRepository{exec: exec, builder: db.NewStatementBuilder()}
}

func (r *PgxCategoryRepository) UpsertBySlug(
	ctx context.Context,
	input catalog.UpsertCategoryInput,
) (c catalog.Category, err error) {
	query, args, err := r.builder.
		Insert("category").
		Columns("name", "slug", "description", "is_active").
		Values(input.Name, input.Slug, input.Description, input.IsActive).
		Suffix(
			"ON CONFLICT (slug) DO UPDATE SET " +
				"name = EXCLUDED.name, " +
				"description = EXCLUDED.description, " +
				"is_active = EXCLUDED.is_active " +
				"RETURNING id, name, slug, description, is_active",
		).
		ToSql()
	if err != nil {
		return c, err
	}

	var id int64
	err = r.exec.QueryRow(ctx, query, args...).Scan(&id, &c.Name, &c.Slug, &c.Description, &c.IsActive)
	if err != nil {
		return c, err
	}
	c.ID = catalog.CategoryID(id)
	return c, nil
}

func (r *PgxCategoryRepository) List(ctx context.Context) ([]catalog.Category, error) {
	query, args, err := r.builder.
		Select("id", "name", "slug", "description", "is_active").
		From("category").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]catalog.Category, 0)
	for rows.Next() {
		var id int64
		var c catalog.Category
		if err := rows.Scan(&id, &c.Name, &c.Slug, &c.Description, &c.IsActive); err != nil {
			return nil, err
		}
		c.ID = catalog.CategoryID(id)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
