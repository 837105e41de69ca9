package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"office-inventory/internal/entities"
	"office-inventory/internal/infrastructure/bd"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/types"
)

const equipmentTable = "computer_submissions"

var equipmentMap = map[string]string{
	"id":             "e.id",
	"unique_id":      "e.unique_id",
	"inventory_type": "e.inventory_type",
	"computer_type":  "e.computer_type",
	"serial_number":  "e.serial_number",
	"brand":          "e.brand",
	"model":          "e.model",
	"purchase_date":  "e.purchase_date",
	"created_at":     "e.created_at",
}

var equipmentColumns = []string{
	"e.id", "e.unique_id", "e.inventory_type", "e.serial_number", "e.computer_type",
	"e.brand", "e.model", "e.processor", "e.ram", "e.storage", "e.operating_system",
	"e.purchase_date", "e.remarks", "e.created_at",
}

var equipmentSearchColumns = []string{"e.unique_id", "e.serial_number", "e.brand", "e.model"}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.UniqueID, &e.InventoryType, &e.SerialNumber, &e.ComputerType,
		&e.Brand, &e.Model, &e.Processor, &e.RAM, &e.Storage, &e.OperatingSystem,
		&e.PurchaseDate, &e.Remarks, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepository) collect(ctx context.Context, builder sq.SelectBuilder) ([]entities.Equipment, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) LatestIdentifier(ctx context.Context, prefix string) (string, error) {
	return latestIdentifier(ctx, r.storage, equipmentTable, "unique_id", prefix)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, e entities.Equipment) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(equipmentTable).
		Columns("id", "unique_id", "inventory_type", "serial_number", "computer_type",
			"brand", "model", "processor", "ram", "storage", "operating_system",
			"purchase_date", "remarks", "created_at").
		Values(e.ID, e.UniqueID, e.InventoryType, e.SerialNumber, e.ComputerType,
			e.Brand, e.Model, e.Processor, e.RAM, e.Storage, e.OperatingSystem,
			e.PurchaseDate, e.Remarks, e.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipmentColumns...).
		From(equipmentTable + " AS e").
		Where(sq.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) FindEquipmentByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Equipment, error) {
	if len(ids) == 0 {
		return []entities.Equipment{}, nil
	}
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipmentColumns...).
		From(equipmentTable + " AS e").
		Where(sq.Eq{"e.id": ids})
	return r.collect(ctx, builder)
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(e.id)").From(equipmentTable + " AS e")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, equipmentSearchColumns...)
	countBuilder = bd.ApplyFilters(countBuilder, filter, equipmentMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count equipment: %w", err)
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	builder := psql.Select(equipmentColumns...).From(equipmentTable + " AS e")
	builder = bd.ApplySearch(builder, filter.Search, equipmentSearchColumns...)
	builder = bd.ApplyListParams(builder, filter, equipmentMap)
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("e.created_at DESC")
	}

	list, err := r.collect(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *EquipmentRepository) GetAllEquipments(ctx context.Context) ([]entities.Equipment, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipmentColumns...).
		From(equipmentTable + " AS e").
		OrderBy("e.created_at DESC")
	return r.collect(ctx, builder)
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete(equipmentTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.ErrEquipmentIssued
		}
		return fmt.Errorf("delete equipment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// latestIdentifier reads the newest identifier in column starting with prefix.
func latestIdentifier(ctx context.Context, q querier, table, column, prefix string) (string, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(column).
		From(table).
		Where(sq.Like{column: escapeLike(prefix) + "%"}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", err
	}

	var latest string
	err = q.QueryRow(ctx, query, args...).Scan(&latest)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest %s: %w", column, err)
	}
	return latest, nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
