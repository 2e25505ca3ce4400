package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/itinerary"
	"travelplanner/internal/domain/reconcile"
)

type ItineraryRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewItineraryRepository(pool *pgxpool.Pool, log *slog.Logger) *ItineraryRepository {
	return &ItineraryRepository{
		pool: pool,
		log:  log.With("component", "itinerary_repository"),
	}
}

const (
	itineraryColumns = `id, user_id, trip_name, start_date, end_date, type, name, description, date, time`
	activityColumns  = `id, itinerary_id, name, description, activity_time, location`
)

func (r *ItineraryRepository) Create(ctx context.Context, it *itinerary.Itinerary) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO itineraries (user_id, trip_name, start_date, end_date, type, name, description, date, time)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id`,
			it.UserID, it.TripName, it.StartDate, it.EndDate, it.Type, it.Name, it.Description, it.Date, it.Time,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert itinerary: %w", err)
		}

		w := activityWriter{q: tx, itineraryID: it.ID}
		for i := range it.Activities {
			if err := w.insert(ctx, &it.Activities[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ItineraryRepository) List(ctx context.Context, userID uuid.UUID) ([]itinerary.Itinerary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itineraryColumns+` FROM itineraries WHERE user_id = $1 ORDER BY start_date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanItinerary)
	if err != nil {
		return nil, fmt.Errorf("scan itineraries: %w", err)
	}
	if len(list) == 0 {
		return []itinerary.Itinerary{}, nil
	}

	ids := make([]uuid.UUID, len(list))
	for i, it := range list {
		ids[i] = it.ID
	}
	byItinerary, err := activitiesOf(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Activities = nonNil(byItinerary[list[i].ID])
	}
	return list, nil
}

func (r *ItineraryRepository) Get(ctx context.Context, id uuid.UUID) (itinerary.Itinerary, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itineraryColumns+` FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return itinerary.Itinerary{}, fmt.Errorf("get itinerary: %w", err)
	}
	it, err := pgx.CollectExactlyOneRow(rows, scanItinerary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return itinerary.Itinerary{}, itinerary.ErrNotFound
		}
		return itinerary.Itinerary{}, fmt.Errorf("scan itinerary: %w", err)
	}

	byItinerary, err := activitiesOf(ctx, r.pool, []uuid.UUID{id})
	if err != nil {
		return itinerary.Itinerary{}, err
	}
	it.Activities = nonNil(byItinerary[id])
	return it, nil
}

// Update перезаписывает маршрут и применяет план по активностям в одной транзакции.
func (r *ItineraryRepository) Update(ctx context.Context, it *itinerary.Itinerary, plan itinerary.Plan) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE itineraries
			 SET trip_name = $1, start_date = $2, end_date = $3, type = $4, name = $5,
			     description = $6, date = $7, time = $8
			 WHERE id = $9`,
			it.TripName, it.StartDate, it.EndDate, it.Type, it.Name, it.Description, it.Date, it.Time, it.ID)
		if err != nil {
			return fmt.Errorf("update itinerary: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return itinerary.ErrNotFound
		}

		if err := reconcile.Apply(ctx, plan, activityWriter{q: tx, itineraryID: it.ID}); err != nil {
			return err
		}

		byItinerary, err := activitiesOf(ctx, tx, []uuid.UUID{it.ID})
		if err != nil {
			return err
		}
		it.Activities = nonNil(byItinerary[it.ID])
		return nil
	})
}

func (r *ItineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete itinerary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return itinerary.ErrNotFound
	}
	return nil
}

var errActivityGone = errors.New("activity not found in itinerary")

type activityWriter struct {
	q           querier
	itineraryID uuid.UUID
}

func (w activityWriter) DeleteChild(ctx context.Context, a itinerary.Activity) error {
	tag, err := w.q.Exec(ctx,
		`DELETE FROM activities WHERE id = $1 AND itinerary_id = $2`, a.ID, w.itineraryID)
	if err != nil {
		return fmt.Errorf("delete activity %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete activity %s: %w", a.ID, errActivityGone)
	}
	return nil
}

func (w activityWriter) UpdateChild(ctx context.Context, a itinerary.Activity) error {
	tag, err := w.q.Exec(ctx,
		`UPDATE activities SET name = $1, description = $2, activity_time = $3, location = $4
		 WHERE id = $5 AND itinerary_id = $6`,
		a.Name, a.Description, a.ActivityTime, a.Location, a.ID, w.itineraryID)
	if err != nil {
		return fmt.Errorf("update activity %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update activity %s: %w", a.ID, errActivityGone)
	}
	return nil
}

func (w activityWriter) CreateChild(ctx context.Context, a itinerary.Activity) error {
	return w.insert(ctx, &a)
}

func (w activityWriter) insert(ctx context.Context, a *itinerary.Activity) error {
	a.ItineraryID = w.itineraryID
	err := w.q.QueryRow(ctx,
		`INSERT INTO activities (itinerary_id, name, description, activity_time, location)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.ItineraryID, a.Name, a.Description, a.ActivityTime, a.Location,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func activitiesOf(ctx context.Context, q querier, ids []uuid.UUID) (map[uuid.UUID][]itinerary.Activity, error) {
	rows, err := q.Query(ctx,
		`SELECT `+activityColumns+` FROM activities
		 WHERE itinerary_id = ANY($1) ORDER BY activity_time, name, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	acts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (itinerary.Activity, error) {
		var a itinerary.Activity
		err := row.Scan(&a.ID, &a.ItineraryID, &a.Name, &a.Description, &a.ActivityTime, &a.Location)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan activities: %w", err)
	}

	out := make(map[uuid.UUID][]itinerary.Activity, len(ids))
	for _, a := range acts {
		out[a.ItineraryID] = append(out[a.ItineraryID], a)
	}
	return out, nil
}

func scanItinerary(row pgx.CollectableRow) (itinerary.Itinerary, error) {
	var it itinerary.Itinerary
	err := row.Scan(&it.ID, &it.UserID, &it.TripName, &it.StartDate, &it.EndDate,
		&it.Type, &it.Name, &it.Description, &it.Date, &it.Time)
	return it, err
}
