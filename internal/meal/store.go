package meal

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound covers both "no such meal" and "exists under another owner";
	// the two are indistinguishable on purpose.
	ErrNotFound = errors.New("meal not found")
	// ErrNoMeals is returned by ListByOwner when the owner has zero records.
	// Handlers map it to 404. Isolated here so the convention can change
	// without touching callers.
	ErrNoMeals = errors.New("meals not found")
)

// UpdateFields carries a partial update; nil fields are left untouched.
type UpdateFields struct {
	Name        *string
	Description *string
	Date        *time.Time
	IsDiet      *bool
}

// Store is the owner-scoped persistence surface for meals. Every predicate
// includes the owner id. Update and Delete matching zero rows is success, not
// an error: a caller probing another owner's id learns nothing.
type Store interface {
	Create(ctx context.Context, m Meal) (Meal, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Meal, error)
	GetOne(ctx context.Context, ownerID, id string) (Meal, error)
	Update(ctx context.Context, ownerID, id string, f UpdateFields) error
	Delete(ctx context.Context, ownerID, id string) error

	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	CountByOwnerAndDiet(ctx context.Context, ownerID string, isDiet bool) (int64, error)
	// ListDietDatesAsc returns the dates of all diet-flagged meals, ascending.
	ListDietDatesAsc(ctx context.Context, ownerID string) ([]time.Time, error)
}
