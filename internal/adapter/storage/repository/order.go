package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{"id", "number", "status", "created_at", "updated_at"}

var itemColumns = []string{"id", "order_id", "product_id", "vendor_id", "quantity", "unit_price", "line_total"}

// CreateOrder stores the order, its items and the pending wallet
// transactions, and credits each vendor's pending balance, in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order,
	entries []*domain.WalletTransaction) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := execSQL(ctx, tx, r.db.QueryBuilder.
			Insert("orders").
			Columns(orderColumns...).
			Values(order.ID, order.Number, order.Status, order.CreatedAt, order.UpdatedAt))
		if err != nil {
			return err
		}

		for _, e := range entries {
			tag, err := execSQL(ctx, tx, r.db.QueryBuilder.
				Update("vendors").
				Set("pending_balance", sq.Expr("pending_balance + ?", e.Amount)).
				Where(sq.Eq{"id": e.VendorID}))
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domain.ErrDataNotFound
			}
		}

		items := r.db.QueryBuilder.
			Insert("order_items").
			Columns("id", "order_id", "position", "product_id", "vendor_id", "quantity", "unit_price", "line_total")
		for i, item := range order.Items {
			items = items.Values(item.ID, order.ID, i, item.ProductID, item.VendorID,
				item.Quantity, item.UnitPrice, item.LineTotal)
		}
		if _, err := execSQL(ctx, tx, items); err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}
		ledger := r.db.QueryBuilder.
			Insert("wallet_transactions").
			Columns(transactionColumns...)
		for _, e := range entries {
			ledger = ledger.Values(e.ID, e.VendorID, e.ReferenceID, e.Amount, e.Status, e.CreatedAt, e.UpdatedAt)
		}
		_, err = execSQL(ctx, tx, ledger)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Number,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.Items, err = r.readItems(ctx, r.db, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrderStatus changes the status only while it still equals from.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID string,
	from domain.OrderStatus, to domain.OrderStatus) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": from}).
		Suffix("RETURNING id, number, status, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Number,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if _, err := r.ReadOrder(ctx, orderID); err != nil {
			return nil, err
		}
		return nil, domain.ErrConflictingData
	}

	order.Items, err = r.readItems(ctx, r.db, order.ID)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) readItems(ctx context.Context, q querier, orderID string) ([]*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.VendorID,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	return list, rows.Err()
}
