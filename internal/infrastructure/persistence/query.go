package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching query anywhere in a value.
// LIKE wildcards inside query are matched literally.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(catalog.FoldName(query)) + "%"
}

// containsClause returns a case-insensitive substring predicate on column.
// Postgres gets ILIKE; other dialects (SQLite in tests) compare lowercased values.
func containsClause(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return column + ` ILIKE ? ESCAPE '\'`
	}
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

// paginate applies page offset/limit and a stable storage order
func paginate(page shared.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Offset(page.Offset()).Limit(page.Limit())
	}
}

// firstByID loads the row with id into a fresh M, reporting a missing row as
// a not-found error for entity. db may carry preloads.
func firstByID[M any](ctx context.Context, db *gorm.DB, entity string, id int64) (*M, error) {
	var row M
	err := db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError(entity, id)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
