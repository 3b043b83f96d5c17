package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sdlccalendar/internal/domain"
)

const eventColumns = "id, title, description, start_at, end_at, background_color, all_day, systems, created_at, updated_at"

type eventRepository struct {
	conn *Connector
}

// NewEventRepository returns an EventRepository backed by the shared
// connection held by conn.
func NewEventRepository(conn *Connector) domain.EventRepository {
	return &eventRepository{conn: conn}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return fmt.Errorf("acquire database: %w", err)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `
		INSERT INTO events (id, title, description, start_at, end_at, background_color, all_day, systems, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = db.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Start, e.End,
		e.BackgroundColor, e.AllDay, pq.Array(e.Systems), e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e := &domain.Event{}
	err = db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Start, &e.End,
		&e.BackgroundColor, &e.AllDay, pq.Array(&e.Systems), &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	query := `SELECT ` + eventColumns + ` FROM events`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return fmt.Errorf("acquire database: %w", err)
	}
	query := `
		UPDATE events
		SET title = $1, description = $2, start_at = $3, end_at = $4,
		    background_color = $5, all_day = $6, systems = $7, updated_at = $8
		WHERE id = $9
		RETURNING created_at
	`
	err = db.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Start, e.End,
		e.BackgroundColor, e.AllDay, pq.Array(e.Systems), e.UpdatedAt, e.ID,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return fmt.Errorf("acquire database: %w", err)
	}
	result, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListOverlappingDay returns events overlapping the closed window
// [dayStart, dayEnd]. The starts-within and ends-within legs are inclusive on
// both bounds; spans-across is strict on both.
func (r *eventRepository) ListOverlappingDay(ctx context.Context, dayStart, dayEnd string) ([]*domain.Event, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE (start_at >= $1 AND start_at <= $2)
		   OR (end_at >= $1 AND end_at <= $2)
		   OR (start_at < $1 AND end_at > $2)
	`
	rows, err := db.QueryContext(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// ListOverlappingHour returns events overlapping the hour slot
// [hourStart, hourEnd). Starts-within excludes the upper bound, ends-within
// excludes the lower bound; spans-across is strict on both. The operator mix
// differs from the day query on purpose.
func (r *eventRepository) ListOverlappingHour(ctx context.Context, hourStart, hourEnd string) ([]*domain.Event, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE (start_at >= $1 AND start_at < $2)
		   OR (end_at > $1 AND end_at <= $2)
		   OR (start_at < $1 AND end_at > $2)
	`
	rows, err := db.QueryContext(ctx, query, hourStart, hourEnd)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Start, &e.End,
			&e.BackgroundColor, &e.AllDay, pq.Array(&e.Systems), &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
