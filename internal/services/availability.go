package services

import (
	"context"

	"github.com/google/uuid"

	"office-inventory/internal/dto"
	"office-inventory/internal/entities"
	"office-inventory/internal/repositories"
	"office-inventory/pkg/utils"
)

const (
	StatusAvailable = "available"
	StatusIssued    = "issued"
)

// AvailabilityService derives issued/available per equipment from the live
// issue ledger. Nothing is stored.
type AvailabilityService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	issueRepository     repositories.IssueRepositoryInterface
}

func NewAvailabilityService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	issueRepository repositories.IssueRepositoryInterface,
) *AvailabilityService {
	return &AvailabilityService{equipmentRepository: equipmentRepository, issueRepository: issueRepository}
}

// Project returns every equipment row with its issue state. status and
// bucket filter the result when non-empty.
func (s *AvailabilityService) Project(ctx context.Context, status, bucket string) ([]dto.EquipmentAvailabilityDTO, error) {
	equipment, err := s.equipmentRepository.GetAllEquipments(ctx)
	if err != nil {
		return nil, err
	}
	issues, err := s.issueRepository.GetAllIssues(ctx)
	if err != nil {
		return nil, err
	}
	return project(equipment, issues, status, bucket), nil
}

func project(equipment []entities.Equipment, issues []entities.Issue, status, bucket string) []dto.EquipmentAvailabilityDTO {
	byEquipment := make(map[uuid.UUID]entities.Issue, len(issues))
	for _, i := range issues {
		byEquipment[i.InventoryID] = i
	}

	out := make([]dto.EquipmentAvailabilityDTO, 0, len(equipment))
	for _, e := range equipment {
		if bucket != "" && e.InventoryType != bucket {
			continue
		}
		row := dto.EquipmentAvailabilityDTO{EquipmentDTO: equipmentToDTO(e)}
		if issue, ok := byEquipment[e.ID]; ok {
			row.IsIssued = true
			row.IssueUID = utils.ToPtr(issue.UID)
			row.IssuedTo = utils.ToPtr(issue.Recipient())
			row.Section = utils.ToPtr(issue.EmployeeSection)
			row.Location = issue.Location.Ptr()
			row.IssueDate = utils.ToPtr(utils.FormatDate(issue.IssueDate))
		}
		switch status {
		case StatusAvailable:
			if row.IsIssued {
				continue
			}
		case StatusIssued:
			if !row.IsIssued {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}
