package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

var transactionColumns = []string{"id", "vendor_id", "reference_id", "amount", "status", "created_at", "updated_at"}

var vendorColumns = []string{"id", "user_id", "name", "wallet_balance", "pending_balance"}

func (r *Repository) CreateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	_, err := execSQL(ctx, r.db, r.db.QueryBuilder.
		Insert("vendors").
		Columns(vendorColumns...).
		Values(vendor.ID, vendor.UserID, vendor.Name, vendor.WalletBalance, vendor.PendingBalance))
	if err != nil {
		return nil, mapError(err)
	}
	return vendor, nil
}

func (r *Repository) ReadVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return r.readVendor(ctx, r.db, vendorID)
}

func (r *Repository) readVendor(ctx context.Context, q querier, vendorID string) (*domain.Vendor, error) {
	statement := r.db.QueryBuilder.
		Select(vendorColumns...).
		From("vendors").
		Where(sq.Eq{"id": vendorID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	vendor := domain.Vendor{}
	err = q.QueryRow(ctx, sql, args...).Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.Name,
		&vendor.WalletBalance,
		&vendor.PendingBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *Repository) FindPendingByOrder(ctx context.Context, orderID string) ([]*domain.WalletTransaction, error) {
	return r.listTransactions(ctx, sq.Eq{
		"reference_id": orderID,
		"status":       domain.TransactionStatusPending,
	})
}

func (r *Repository) ListTransactionsByVendor(ctx context.Context, vendorID string) ([]*domain.WalletTransaction, error) {
	return r.listTransactions(ctx, sq.Eq{"vendor_id": vendorID})
}

func (r *Repository) listTransactions(ctx context.Context, where sq.Eq) ([]*domain.WalletTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(transactionColumns...).
		From("wallet_transactions").
		Where(where).
		OrderBy("created_at", "id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.WalletTransaction, 0)
	for rows.Next() {
		t := domain.WalletTransaction{}
		err := rows.Scan(
			&t.ID,
			&t.VendorID,
			&t.ReferenceID,
			&t.Amount,
			&t.Status,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &t)
	}

	return list, rows.Err()
}

// WithinLedgerTx runs fn in a database transaction. The transaction is
// rolled back when fn returns an error.
func (r *Repository) WithinLedgerTx(ctx context.Context, fn port.LedgerTxFn) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&ledgerTx{repo: r, tx: tx})
	})
}

type ledgerTx struct {
	repo *Repository
	tx   pgx.Tx
}

func (l *ledgerTx) MarkCompleted(ctx context.Context, transactionID string) (bool, error) {
	tag, err := execSQL(ctx, l.tx, l.repo.db.QueryBuilder.
		Update("wallet_transactions").
		Set("status", domain.TransactionStatusCompleted).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": transactionID, "status": domain.TransactionStatusPending}))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// AdjustBalances relies on the row lock taken by UPDATE, so concurrent
// adjustments of one vendor are applied one after another.
func (l *ledgerTx) AdjustBalances(ctx context.Context, vendorID string,
	deltaPending decimal.Decimal, deltaWallet decimal.Decimal) (*domain.Vendor, error) {
	statement := l.repo.db.QueryBuilder.
		Update("vendors").
		Set("pending_balance", sq.Expr("pending_balance + ?", deltaPending)).
		Set("wallet_balance", sq.Expr("wallet_balance + ?", deltaWallet)).
		Where(sq.Eq{"id": vendorID}).
		Where(sq.Expr("pending_balance + ? >= 0", deltaPending)).
		Where(sq.Expr("wallet_balance + ? >= 0", deltaWallet)).
		Suffix("RETURNING id, user_id, name, wallet_balance, pending_balance")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	vendor := domain.Vendor{}
	err = l.tx.QueryRow(ctx, sql, args...).Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.Name,
		&vendor.WalletBalance,
		&vendor.PendingBalance,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, mapError(err)
		}
		if _, err := l.repo.readVendor(ctx, l.tx, vendorID); err != nil {
			return nil, err
		}
		return nil, domain.ErrInsufficientBalance
	}
	return &vendor, nil
}
