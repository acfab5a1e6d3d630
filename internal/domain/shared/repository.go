package shared

import (
	"context"

	"github.com/google/uuid"
)

// Operator identifies a comparison in a filter condition
type Operator string

const (
	OpEqual        Operator = "eq"
	OpNotEqual     Operator = "neq"
	OpGreater      Operator = "gt"
	OpGreaterEqual Operator = "gte"
	OpLess         Operator = "lt"
	OpLessEqual    Operator = "lte"
	OpLike         Operator = "like"
	OpIn           Operator = "in"
)

// Condition is a single structured predicate over an entity field.
// Conditions compile to parameterized storage queries; values are never
// concatenated into SQL text.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Filter represents query filter options
type Filter struct {
	Conditions []Condition
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	Search     string
}

// DefaultFilter returns a filter with default paging values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 10,
	}
}

// Where appends an equality condition and returns the filter for chaining
func (f Filter) Where(field string, value any) Filter {
	return f.WhereOp(field, OpEqual, value)
}

// WhereOp appends a condition with an explicit operator
func (f Filter) WhereOp(field string, op Operator, value any) Filter {
	f.Conditions = append(f.Conditions, Condition{Field: field, Op: op, Value: value})
	return f
}

// ReadRepository is the generic read contract over an entity type
type ReadRepository[T any] interface {
	// FindByID returns ErrNotFound when no record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	// FindAll returns every match of the filter conditions; paging fields
	// on the filter are ignored.
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	// FindWithPagination counts all matches before slicing the requested
	// page. Count and page come from one consistent snapshot.
	FindWithPagination(ctx context.Context, filter Filter) (Paginated[T], error)
	// ExecRaw runs a parameterized query for lookups that cannot be
	// expressed as conditions.
	ExecRaw(ctx context.Context, query string, args ...any) ([]T, error)
}

// WriteRepository is the generic write contract over an entity type.
// All writes stamp the audit fields with the acting user code.
type WriteRepository[T any] interface {
	Add(ctx context.Context, entity *T, by string) error
	Update(ctx context.Context, entity *T, by string) error
	// Remove soft-deletes: the record stays in storage with status=deleted.
	Remove(ctx context.Context, entity *T, by string) error
}

// Repository combines the read and write contracts
type Repository[T any] interface {
	ReadRepository[T]
	WriteRepository[T]
}

// Paginated represents one page of a filtered result set
type Paginated[T any] struct {
	Items      []T
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// NewPaginated creates a paginated result, deriving the page count
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// HasPreviousPage reports whether a page precedes the current one
func (p Paginated[T]) HasPreviousPage() bool {
	return p.Page > 1
}

// HasNextPage reports whether a page follows the current one
func (p Paginated[T]) HasNextPage() bool {
	return p.Page < p.TotalPages
}
