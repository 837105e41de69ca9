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

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	issueRepository     repositories.IssueRepositoryInterface
	sequencer           Sequencer
	orgPrefix           string
	logger              *zap.Logger
	now                 func() time.Time
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	issueRepository repositories.IssueRepositoryInterface,
	sequencer Sequencer,
	orgPrefix string,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		issueRepository:     issueRepository,
		sequencer:           sequencer,
		orgPrefix:           orgPrefix,
		logger:              logger,
		now:                 time.Now,
	}
}

// RegisterEquipment assigns the next unique ID of the bucket and stores the record.
func (s *EquipmentService) RegisterEquipment(ctx context.Context, in dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	purchaseDate, err := utils.ParseNullDate(in.PurchaseDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("purchase_date must be YYYY-MM-DD")
	}

	equipment := entities.Equipment{
		ID:              uuid.New(),
		InventoryType:   in.InventoryType,
		SerialNumber:    strings.TrimSpace(in.SerialNumber),
		Brand:           strings.TrimSpace(in.Brand),
		Model:           strings.TrimSpace(in.Model),
		Processor:       strings.TrimSpace(in.Processor),
		RAM:             strings.TrimSpace(in.RAM),
		Storage:         strings.TrimSpace(in.Storage),
		OperatingSystem: strings.TrimSpace(in.OperatingSystem),
		PurchaseDate:    purchaseDate,
		Remarks:         strings.TrimSpace(in.Remarks),
	}
	// subtype only applies to PCs
	if in.InventoryType == entities.BucketPC {
		equipment.ComputerType = utils.NullString(in.ComputerType)
	} else {
		equipment.ComputerType = null.String{}
	}

	equipment.UniqueID = s.sequencer.Next(ctx, EquipmentSequence(s.orgPrefix, in.InventoryType, s.equipmentRepository))
	equipment.CreatedAt = s.now()

	if err := s.equipmentRepository.CreateEquipment(ctx, equipment); err != nil {
		s.logger.Error("RegisterEquipment: insert failed", zap.String("unique_id", equipment.UniqueID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Equipment registered",
		zap.String("id", equipment.ID.String()),
		zap.String("unique_id", equipment.UniqueID),
		zap.String("inventory_type", equipment.InventoryType),
	)
	out := equipmentToDTO(equipment)
	return &out, nil
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	list, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.EquipmentDTO, 0, len(list))
	for _, e := range list {
		out = append(out, equipmentToDTO(e))
	}
	return out, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	out := equipmentToDTO(*e)
	return &out, nil
}

// DeleteEquipment refuses while a live issue references the record.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	issued, err := s.issueRepository.IsIssued(ctx, id)
	if err != nil {
		return err
	}
	if issued {
		return apperrors.ErrEquipmentIssued
	}

	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Equipment deleted", zap.String("id", id.String()))
	return nil
}
