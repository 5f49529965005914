package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Store interface {
	Get(ctx context.Context, userID uuid.UUID, kind string, dest any) (bool, error)
	Set(ctx context.Context, userID uuid.UUID, kind string, value any) error
}

// DayKind scopes a kind of stats to the day they were computed for, so
// results relative to today are not served on the following days.
func DayKind(kind string, day time.Time) string {
	return kind + "@" + day.Format(time.DateOnly)
}

// Through returns the cached stats of the given kind, computing and storing
// them on a miss. A failing store never fails the call, the stats are then
// computed from the records.
func Through[T any](
	ctx context.Context,
	store Store,
	userID uuid.UUID,
	kind string,
	compute func(ctx context.Context) (T, error),
) (T, error) {
	var cached T
	found, err := store.Get(ctx, userID, kind, &cached)
	if err != nil {
		log.Warnf("get cached %s stats of user %s: %s", kind, userID, err)
	}
	if found {
		return cached, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	if err := store.Set(ctx, userID, kind, value); err != nil {
		log.Warnf("cache %s stats of user %s: %s", kind, userID, err)
	}
	return value, nil
}
