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

const issueTable = "computer_issues"

var issueMap = map[string]string{
	"id":               "i.id",
	"uid":              "i.uid",
	"inventory_id":     "i.inventory_id",
	"unique_id":        "i.unique_id",
	"issue_type":       "i.issue_type",
	"employee_section": "i.employee_section",
	"issue_date":       "i.issue_date",
	"created_at":       "i.created_at",
}

var issueColumns = []string{
	"i.id", "i.uid", "i.inventory_id", "i.unique_id", "i.serial_number", "i.issue_type",
	"i.employee_section", "i.location", "i.issued_to", "i.phone_number", "i.email",
	"i.designation", "i.issue_date", "i.remarks", "i.created_at",
}

var issueSearchColumns = []string{"i.uid", "i.unique_id", "i.serial_number", "i.issued_to", "i.employee_section"}

type IssueRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewIssueRepository(storage *pgxpool.Pool, logger *zap.Logger) IssueRepositoryInterface {
	return &IssueRepository{storage: storage, logger: logger}
}

func scanIssue(row pgx.Row) (*entities.Issue, error) {
	var i entities.Issue
	err := row.Scan(
		&i.ID, &i.UID, &i.InventoryID, &i.UniqueID, &i.SerialNumber, &i.IssueType,
		&i.EmployeeSection, &i.Location, &i.IssuedTo, &i.PhoneNumber, &i.Email,
		&i.Designation, &i.IssueDate, &i.Remarks, &i.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan issue: %w", err)
	}
	return &i, nil
}

func (r *IssueRepository) collect(ctx context.Context, builder sq.SelectBuilder) ([]entities.Issue, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Issue, 0)
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *i)
	}
	return list, rows.Err()
}

func (r *IssueRepository) LatestIdentifier(ctx context.Context, prefix string) (string, error) {
	return latestIdentifier(ctx, r.storage, issueTable, "uid", prefix)
}

func (r *IssueRepository) CreateIssue(ctx context.Context, i entities.Issue) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(issueTable).
		Columns("id", "uid", "inventory_id", "unique_id", "serial_number", "issue_type",
			"employee_section", "location", "issued_to", "phone_number", "email",
			"designation", "issue_date", "remarks", "created_at").
		Values(i.ID, i.UID, i.InventoryID, i.UniqueID, i.SerialNumber, i.IssueType,
			i.EmployeeSection, i.Location, i.IssuedTo, i.PhoneNumber, i.Email,
			i.Designation, i.IssueDate, i.Remarks, i.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.ErrAlreadyIssued
		case pgForeignKeyViolation:
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("insert issue: %w", err)
	}
	return nil
}

func (r *IssueRepository) FindIssue(ctx context.Context, id uuid.UUID) (*entities.Issue, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(issueColumns...).
		From(issueTable + " AS i").
		Where(sq.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanIssue(r.storage.QueryRow(ctx, query, args...))
}

func (r *IssueRepository) GetIssues(ctx context.Context, filter types.Filter) ([]entities.Issue, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(i.id)").From(issueTable + " AS i")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, issueSearchColumns...)
	countBuilder = bd.ApplyFilters(countBuilder, filter, issueMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count issues: %w", err)
	}
	if total == 0 {
		return []entities.Issue{}, 0, nil
	}

	builder := psql.Select(issueColumns...).From(issueTable + " AS i")
	builder = bd.ApplySearch(builder, filter.Search, issueSearchColumns...)
	builder = bd.ApplyListParams(builder, filter, issueMap)
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("i.created_at DESC")
	}

	list, err := r.collect(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *IssueRepository) GetAllIssues(ctx context.Context) ([]entities.Issue, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(issueColumns...).
		From(issueTable + " AS i").
		OrderBy("i.created_at DESC")
	return r.collect(ctx, builder)
}

func (r *IssueRepository) IsIssued(ctx context.Context, inventoryID uuid.UUID) (bool, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("1").
		Prefix("SELECT EXISTS (").
		From(issueTable).
		Where(sq.Eq{"inventory_id": inventoryID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check issue: %w", err)
	}
	return exists, nil
}

func (r *IssueRepository) DeleteIssue(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete(issueTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
