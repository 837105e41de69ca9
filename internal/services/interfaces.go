package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"office-inventory/internal/dto"
	"office-inventory/pkg/types"
)

type EquipmentServiceInterface interface {
	RegisterEquipment(ctx context.Context, in dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type IssueServiceInterface interface {
	AvailableEquipment(ctx context.Context, bucket string) ([]dto.ShortEquipmentDTO, error)
	IssueEquipment(ctx context.Context, in dto.CreateIssueDTO) (*dto.IssueReceiptDTO, error)
	GetIssues(ctx context.Context, filter types.Filter) ([]dto.IssueDTO, uint64, error)
}

type RetrievalServiceInterface interface {
	Candidates(ctx context.Context, search string) ([]dto.RetrievalCandidateDTO, error)
	PrepareRetrieval(ctx context.Context, issueID uuid.UUID) (*dto.RetrievalConfirmationDTO, error)
	ConfirmRetrieval(ctx context.Context, token string) (*dto.RetrievalResultDTO, error)
}

type AvailabilityServiceInterface interface {
	Project(ctx context.Context, status, bucket string) ([]dto.EquipmentAvailabilityDTO, error)
}

type TransferServiceInterface interface {
	RecordTransfer(ctx context.Context, in dto.CreateTransferDTO) (*dto.TransferDTO, error)
	GetTransfers(ctx context.Context, filter types.Filter) ([]dto.TransferDTO, uint64, error)
}

type SectionServiceInterface interface {
	ListSections(ctx context.Context) ([]dto.SectionDTO, error)
	AddSection(ctx context.Context, name string) ([]dto.SectionDTO, error)
	RenameSection(ctx context.Context, index int, name string) ([]dto.SectionDTO, error)
	DeleteSection(ctx context.Context, index int, confirm string) ([]dto.SectionDTO, error)
	ResetSections(ctx context.Context) ([]dto.SectionDTO, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, in dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Logout(ctx context.Context, sessionID string) error
	SessionActive(ctx context.Context, sessionID string) (bool, error)
}

type EquipmentImporterInterface interface {
	Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error)
}

type ReportServiceInterface interface {
	Export(ctx context.Context, kind, format string, w io.Writer) error
	FileName(kind, format string) string
}

var (
	_ EquipmentServiceInterface    = (*EquipmentService)(nil)
	_ IssueServiceInterface        = (*IssueService)(nil)
	_ RetrievalServiceInterface    = (*RetrievalService)(nil)
	_ AvailabilityServiceInterface = (*AvailabilityService)(nil)
	_ TransferServiceInterface     = (*TransferService)(nil)
	_ SectionServiceInterface      = (*SectionService)(nil)
	_ AuthServiceInterface         = (*AuthService)(nil)
	_ ReportServiceInterface       = (*ReportService)(nil)
	_ EquipmentImporterInterface   = (*EquipmentImporter)(nil)
)
