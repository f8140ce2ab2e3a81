// Package metrics composes owner-scoped meal queries into the per-user
// adherence summary.
package metrics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"dailydiet/internal/meal"
	"dailydiet/internal/streak"
)

type Summary struct {
	Total        int64 `json:"total"`
	Diet         int64 `json:"diet"`
	NotDiet      int64 `json:"notDiet"`
	BestSequence int   `json:"bestSequence"`
}

type Aggregator struct {
	Store meal.Store
}

// Summary runs the four sub-queries concurrently and joins them. They are
// read-only and commute, so no ordering between them matters. If any fails the
// whole call fails; partial metrics are never returned.
func (a *Aggregator) Summary(ctx context.Context, userID string) (Summary, error) {
	g, ctx := errgroup.WithContext(ctx)

	var total, diet, notDiet int64
	var dietDates []time.Time

	g.Go(func() error {
		var err error
		total, err = a.Store.CountByOwner(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		diet, err = a.Store.CountByOwnerAndDiet(ctx, userID, true)
		return err
	})
	g.Go(func() error {
		var err error
		notDiet, err = a.Store.CountByOwnerAndDiet(ctx, userID, false)
		return err
	})
	g.Go(func() error {
		var err error
		dietDates, err = a.Store.ListDietDatesAsc(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	best := 0
	if len(dietDates) > 0 {
		best = streak.Longest(dietDates)
	}

	return Summary{
		Total:        total,
		Diet:         diet,
		NotDiet:      notDiet,
		BestSequence: best,
	}, nil
}
