package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/movements/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Model constrains the pointer type of a repository entity to the shared
// audit contract, so writes can stamp the audit fields generically.
type Model[T any] interface {
	*T
	shared.Audited
}

// GormRepository is the generic GORM-backed repository. Entity-specific
// repositories embed it and add their own lookups on top.
type GormRepository[T any, PT Model[T]] struct {
	db            *gorm.DB
	fields        map[string]bool
	preloads      []string
	searchColumns []string
}

// RepositoryOption configures a GormRepository
type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	preloads      []string
	searchColumns []string
}

// WithPreload eagerly loads the named association on every read
func WithPreload(association string) RepositoryOption {
	return func(o *repositoryOptions) {
		o.preloads = append(o.preloads, association)
	}
}

// WithSearchColumns sets the columns matched by the filter's free-text search
func WithSearchColumns(columns ...string) RepositoryOption {
	return func(o *repositoryOptions) {
		o.searchColumns = append(o.searchColumns, columns...)
	}
}

// NewGormRepository creates a generic repository over one entity type.
// The fields map whitelists the columns usable for filtering and ordering.
func NewGormRepository[T any, PT Model[T]](db *gorm.DB, fields map[string]bool, opts ...RepositoryOption) *GormRepository[T, PT] {
	var o repositoryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &GormRepository[T, PT]{
		db:            db,
		fields:        fields,
		preloads:      o.preloads,
		searchColumns: o.searchColumns,
	}
}

// FindByID finds an entity by its ID
func (r *GormRepository[T, PT]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	query := r.withPreloads(r.db.WithContext(ctx))
	if err := query.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindAll returns every entity matching the filter conditions. Paging
// fields on the filter are ignored; ordering still applies.
func (r *GormRepository[T, PT]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	query, err := r.buildQuery(r.db.WithContext(ctx), filter)
	if err != nil {
		return nil, err
	}
	query, err = r.applyOrder(query, filter)
	if err != nil {
		return nil, err
	}

	var entities []T
	if err := r.withPreloads(query).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindWithPagination counts all matches and returns the requested page.
// Both run inside one transaction so the count and the slice agree even
// under concurrent writes.
func (r *GormRepository[T, PT]) FindWithPagination(ctx context.Context, filter shared.Filter) (shared.Paginated[T], error) {
	var (
		entities []T
		total    int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		countQuery, err := r.buildQuery(tx, filter)
		if err != nil {
			return err
		}
		if err := countQuery.Count(&total).Error; err != nil {
			return err
		}

		pageQuery, err := r.buildQuery(tx, filter)
		if err != nil {
			return err
		}
		pageQuery, err = r.applyOrder(pageQuery, filter)
		if err != nil {
			return err
		}
		if filter.Page > 0 && filter.PageSize > 0 {
			offset := (filter.Page - 1) * filter.PageSize
			pageQuery = pageQuery.Offset(offset).Limit(filter.PageSize)
		}
		return r.withPreloads(pageQuery).Find(&entities).Error
	})
	if err != nil {
		return shared.Paginated[T]{}, err
	}

	return shared.NewPaginated(entities, total, filter.Page, filter.PageSize), nil
}

// ExecRaw runs a parameterized query and scans the rows into entities.
// Inputs are always bound as parameters, never concatenated.
func (r *GormRepository[T, PT]) ExecRaw(ctx context.Context, query string, args ...any) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Add persists a new entity, stamping the creation audit fields
func (r *GormRepository[T, PT]) Add(ctx context.Context, entity *T, by string) error {
	PT(entity).StampCreate(by, time.Now())
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

// Update persists changes to an existing entity, stamping the update audit fields
func (r *GormRepository[T, PT]) Update(ctx context.Context, entity *T, by string) error {
	PT(entity).StampUpdate(by, time.Now())
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

// Remove soft-deletes the entity: the row stays with status=deleted
func (r *GormRepository[T, PT]) Remove(ctx context.Context, entity *T, by string) error {
	PT(entity).MarkDeleted(by, time.Now())
	return r.db.WithContext(ctx).Save(entity).Error
}

// buildQuery applies the filter's structured conditions and free-text
// search to a fresh model query.
func (r *GormRepository[T, PT]) buildQuery(tx *gorm.DB, filter shared.Filter) (*gorm.DB, error) {
	query := tx.Model(new(T))

	for _, cond := range filter.Conditions {
		if !r.fields[cond.Field] {
			return nil, shared.NewDomainError("INVALID_FILTER_FIELD", "Cannot filter by field "+cond.Field)
		}
		clause, err := conditionClause(cond)
		if err != nil {
			return nil, err
		}
		query = query.Where(clause, cond.Value)
	}

	if filter.Search != "" && len(r.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		parts := make([]string, len(r.searchColumns))
		args := make([]any, len(r.searchColumns))
		for i, col := range r.searchColumns {
			parts[i] = "lower(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(parts, " OR "), args...)
	}

	return query, nil
}

func (r *GormRepository[T, PT]) applyOrder(query *gorm.DB, filter shared.Filter) (*gorm.DB, error) {
	column, err := SortColumn(filter.OrderBy, r.fields)
	if err != nil {
		return nil, err
	}
	if column == "" {
		return query, nil
	}
	return query.Order(column + " " + ValidateSortOrder(filter.OrderDir)), nil
}

func (r *GormRepository[T, PT]) withPreloads(query *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		query = query.Preload(p)
	}
	return query
}

// conditionClause maps a structured condition to its SQL fragment. The
// field name has already been whitelisted by the caller.
func conditionClause(cond shared.Condition) (string, error) {
	switch cond.Op {
	case shared.OpEqual, "":
		return cond.Field + " = ?", nil
	case shared.OpNotEqual:
		return cond.Field + " <> ?", nil
	case shared.OpGreater:
		return cond.Field + " > ?", nil
	case shared.OpGreaterEqual:
		return cond.Field + " >= ?", nil
	case shared.OpLess:
		return cond.Field + " < ?", nil
	case shared.OpLessEqual:
		return cond.Field + " <= ?", nil
	case shared.OpLike:
		return cond.Field + " LIKE ?", nil
	case shared.OpIn:
		return cond.Field + " IN ?", nil
	default:
		return "", shared.NewDomainError("INVALID_FILTER_OP", "Unknown filter operator "+string(cond.Op))
	}
}

func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}
