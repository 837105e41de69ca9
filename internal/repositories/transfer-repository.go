package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"office-inventory/internal/entities"
	"office-inventory/internal/infrastructure/bd"
	"office-inventory/pkg/types"
)

const transferTable = "computer_transfers"

var transferMap = map[string]string{
	"asset_tag":    "t.asset_tag",
	"action_type":  "t.action_type",
	"from_section": "t.from_section",
	"to_section":   "t.to_section",
	"condition":    "t.condition",
	"exit_date":    "t.exit_date",
	"created_at":   "t.created_at",
}

var transferColumns = []string{
	"t.id", "t.asset_tag", "t.serial_number", "t.action_type", "t.from_section",
	"t.to_section", "t.transferred_to", "t.reason", "t.exit_date", "t.approved_by",
	"t.condition", "t.accessories", "t.remarks", "t.created_at",
}

var transferSearchColumns = []string{"t.asset_tag", "t.serial_number", "t.transferred_to", "t.approved_by"}

type TransferRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTransferRepository(storage *pgxpool.Pool, logger *zap.Logger) TransferRepositoryInterface {
	return &TransferRepository{storage: storage, logger: logger}
}

func scanTransfer(row pgx.Row) (*entities.Transfer, error) {
	var t entities.Transfer
	if err := row.Scan(
		&t.ID, &t.AssetTag, &t.SerialNumber, &t.ActionType, &t.FromSection,
		&t.ToSection, &t.TransferredTo, &t.Reason, &t.ExitDate, &t.ApprovedBy,
		&t.Condition, &t.Accessories, &t.Remarks, &t.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan transfer: %w", err)
	}
	return &t, nil
}

func (r *TransferRepository) collect(ctx context.Context, builder sq.SelectBuilder) ([]entities.Transfer, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Transfer, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *t)
	}
	return list, rows.Err()
}

func (r *TransferRepository) CreateTransfer(ctx context.Context, t entities.Transfer) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(transferTable).
		Columns("id", "asset_tag", "serial_number", "action_type", "from_section",
			"to_section", "transferred_to", "reason", "exit_date", "approved_by",
			"condition", "accessories", "remarks", "created_at").
		Values(t.ID, t.AssetTag, t.SerialNumber, t.ActionType, t.FromSection,
			t.ToSection, t.TransferredTo, t.Reason, t.ExitDate, t.ApprovedBy,
			t.Condition, t.Accessories, t.Remarks, t.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

func (r *TransferRepository) GetTransfers(ctx context.Context, filter types.Filter) ([]entities.Transfer, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(t.id)").From(transferTable + " AS t")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, transferSearchColumns...)
	countBuilder = bd.ApplyFilters(countBuilder, filter, transferMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}
	if total == 0 {
		return []entities.Transfer{}, 0, nil
	}

	builder := psql.Select(transferColumns...).From(transferTable + " AS t")
	builder = bd.ApplySearch(builder, filter.Search, transferSearchColumns...)
	builder = bd.ApplyListParams(builder, filter, transferMap)
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("t.created_at DESC")
	}

	list, err := r.collect(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *TransferRepository) GetAllTransfers(ctx context.Context) ([]entities.Transfer, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(transferColumns...).
		From(transferTable + " AS t").
		OrderBy("t.created_at DESC")
	return r.collect(ctx, builder)
}
