package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var notificationColumns = []string{
	"id", "user_id", "title", "message", "type", "link", "is_read",
	"created_at", "dispatched_at", "attempts", "last_error",
}

func (r *Repository) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	_, err := execSQL(ctx, r.db, r.db.QueryBuilder.
		Insert("notifications").
		Columns(notificationColumns...).
		Values(n.ID, n.UserID, n.Title, n.Message, n.Type, n.Link, n.IsRead,
			n.CreatedAt, n.DispatchedAt, n.Attempts, n.LastError))
	if err != nil {
		return nil, mapError(err)
	}
	return n, nil
}

func (r *Repository) ReadNotification(ctx context.Context, id string) (*domain.Notification, error) {
	list, err := r.listNotifications(ctx, r.db.QueryBuilder.
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrDataNotFound
	}
	return list[0], nil
}

func (r *Repository) ListUndispatchedNotifications(ctx context.Context, maxAttempts int, limit int) ([]*domain.Notification, error) {
	statement := r.db.QueryBuilder.
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"dispatched_at": nil}).
		OrderBy("created_at")
	if maxAttempts > 0 {
		statement = statement.Where(sq.Lt{"attempts": maxAttempts})
	}
	if limit > 0 {
		statement = statement.Limit(uint64(limit))
	}
	return r.listNotifications(ctx, statement)
}

func (r *Repository) listNotifications(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Notification, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Notification, 0)
	for rows.Next() {
		n := domain.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.Link,
			&n.IsRead,
			&n.CreatedAt,
			&n.DispatchedAt,
			&n.Attempts,
			&n.LastError,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &n)
	}

	return list, rows.Err()
}

func (r *Repository) MarkNotificationDispatched(ctx context.Context, id string, at time.Time) error {
	tag, err := execSQL(ctx, r.db, r.db.QueryBuilder.
		Update("notifications").
		Set("dispatched_at", at).
		Set("last_error", "").
		Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) RecordNotificationAttempt(ctx context.Context, id string, lastError string) error {
	tag, err := execSQL(ctx, r.db, r.db.QueryBuilder.
		Update("notifications").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", lastError).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
