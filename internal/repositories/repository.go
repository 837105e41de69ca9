package repositories

import (
	"context"

	"office-inventory/internal/entities"
	"office-inventory/pkg/types"

	"github.com/google/uuid"
)

// IdentifierSource returns the most recently created identifier that
// starts with prefix, or "" when there is none.
type IdentifierSource interface {
	LatestIdentifier(ctx context.Context, prefix string) (string, error)
}

type EquipmentRepositoryInterface interface {
	IdentifierSource
	CreateEquipment(ctx context.Context, equipment entities.Equipment) error
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	FindEquipmentByIDs(ctx context.Context, ids []uuid.UUID) ([]entities.Equipment, error)
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	GetAllEquipments(ctx context.Context) ([]entities.Equipment, error)
	// DeleteEquipment fails with ErrEquipmentIssued while an issue references id.
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type IssueRepositoryInterface interface {
	IdentifierSource
	// CreateIssue fails with ErrAlreadyIssued when the equipment has a live issue.
	CreateIssue(ctx context.Context, issue entities.Issue) error
	FindIssue(ctx context.Context, id uuid.UUID) (*entities.Issue, error)
	GetIssues(ctx context.Context, filter types.Filter) ([]entities.Issue, uint64, error)
	GetAllIssues(ctx context.Context) ([]entities.Issue, error)
	IsIssued(ctx context.Context, inventoryID uuid.UUID) (bool, error)
	DeleteIssue(ctx context.Context, id uuid.UUID) error
}

type TransferRepositoryInterface interface {
	CreateTransfer(ctx context.Context, transfer entities.Transfer) error
	GetTransfers(ctx context.Context, filter types.Filter) ([]entities.Transfer, uint64, error)
	GetAllTransfers(ctx context.Context) ([]entities.Transfer, error)
}
