package services

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/entities"
	"office-inventory/internal/repositories"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/types"
	"office-inventory/pkg/utils"
)

type IssueService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	issueRepository     repositories.IssueRepositoryInterface
	sequencer           Sequencer
	logger              *zap.Logger
	now                 func() time.Time
}

func NewIssueService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	issueRepository repositories.IssueRepositoryInterface,
	sequencer Sequencer,
	logger *zap.Logger,
) *IssueService {
	return &IssueService{
		equipmentRepository: equipmentRepository,
		issueRepository:     issueRepository,
		sequencer:           sequencer,
		logger:              logger,
		now:                 time.Now,
	}
}

// AvailableEquipment lists equipment without a live issue, optionally
// restricted to one bucket.
func (s *IssueService) AvailableEquipment(ctx context.Context, bucket string) ([]dto.ShortEquipmentDTO, error) {
	equipment, err := s.equipmentRepository.GetAllEquipments(ctx)
	if err != nil {
		return nil, err
	}
	issues, err := s.issueRepository.GetAllIssues(ctx)
	if err != nil {
		return nil, err
	}

	issued := make(map[uuid.UUID]struct{}, len(issues))
	for _, i := range issues {
		issued[i.InventoryID] = struct{}{}
	}

	out := make([]dto.ShortEquipmentDTO, 0, len(equipment))
	for _, e := range equipment {
		if _, ok := issued[e.ID]; ok {
			continue
		}
		if bucket != "" && e.InventoryType != bucket {
			continue
		}
		out = append(out, equipmentToShortDTO(e))
	}
	return out, nil
}

// IssueEquipment binds an available equipment record to a new issue.
func (s *IssueService) IssueEquipment(ctx context.Context, in dto.CreateIssueDTO) (*dto.IssueReceiptDTO, error) {
	inventoryID, err := uuid.Parse(in.InventoryID)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("inventory_id must be a UUID")
	}
	issueDate, err := utils.ParseDate(in.IssueDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("issue_date must be YYYY-MM-DD")
	}

	issue := entities.Issue{
		ID:              uuid.New(),
		InventoryID:     inventoryID,
		IssueType:       in.IssueType,
		EmployeeSection: strings.TrimSpace(in.EmployeeSection),
		Location:        utils.NullString(in.Location),
		IssueDate:       issueDate,
		Remarks:         strings.TrimSpace(in.Remarks),
	}
	switch in.IssueType {
	case entities.IssueTypeEmployee:
		issue.IssuedTo = utils.NullString(in.IssuedTo)
		issue.PhoneNumber = utils.NullString(in.PhoneNumber)
		issue.Email = utils.NullString(in.Email)
		issue.Designation = utils.NullString(in.Designation)
		if !issue.IssuedTo.Valid || !issue.PhoneNumber.Valid || !issue.Email.Valid || !issue.Designation.Valid {
			return nil, apperrors.NewInvalidInputError("issued_to, phone_number, email and designation are required for employee issues")
		}
	case entities.IssueTypeSection:
		issue.IssuedTo, issue.PhoneNumber, issue.Email, issue.Designation = null.String{}, null.String{}, null.String{}, null.String{}
	default:
		return nil, apperrors.NewInvalidInputError("issue_type must be section or employee")
	}
	if issue.EmployeeSection == "" {
		return nil, apperrors.NewInvalidInputError("employee_section is required")
	}

	equipment, err := s.equipmentRepository.FindEquipment(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	issued, err := s.issueRepository.IsIssued(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	if issued {
		return nil, apperrors.ErrAlreadyIssued
	}

	issue.UniqueID = equipment.UniqueID
	issue.SerialNumber = equipment.SerialNumber
	issue.UID = s.sequencer.Next(ctx, IssueSequence(s.issueRepository))
	issue.CreatedAt = s.now()

	if err := s.issueRepository.CreateIssue(ctx, issue); err != nil {
		s.logger.Error("IssueEquipment: insert failed", zap.String("uid", issue.UID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Equipment issued",
		zap.String("uid", issue.UID),
		zap.String("unique_id", issue.UniqueID),
		zap.String("issue_type", issue.IssueType),
		zap.String("section", issue.EmployeeSection),
	)
	return &dto.IssueReceiptDTO{IssueDTO: issueToDTO(issue), Recipient: issue.Recipient()}, nil
}

func (s *IssueService) GetIssues(ctx context.Context, filter types.Filter) ([]dto.IssueDTO, uint64, error) {
	list, total, err := s.issueRepository.GetIssues(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.IssueDTO, 0, len(list))
	for _, i := range list {
		out = append(out, issueToDTO(i))
	}
	return out, total, nil
}
