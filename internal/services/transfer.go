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

// TransferService appends to the transfer/exit log. Entries are never
// updated or deleted and do not affect availability.
type TransferService struct {
	transferRepository repositories.TransferRepositoryInterface
	logger             *zap.Logger
	now                func() time.Time
}

func NewTransferService(transferRepository repositories.TransferRepositoryInterface, logger *zap.Logger) *TransferService {
	return &TransferService{transferRepository: transferRepository, logger: logger, now: time.Now}
}

func (s *TransferService) RecordTransfer(ctx context.Context, in dto.CreateTransferDTO) (*dto.TransferDTO, error) {
	exitDate, err := utils.ParseDate(in.ExitDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("exit_date must be YYYY-MM-DD")
	}

	transfer := entities.Transfer{
		ID:            uuid.New(),
		AssetTag:      strings.TrimSpace(in.AssetTag),
		SerialNumber:  strings.TrimSpace(in.SerialNumber),
		ActionType:    in.ActionType,
		FromSection:   strings.TrimSpace(in.FromSection),
		ToSection:     utils.NullString(in.ToSection),
		TransferredTo: utils.NullString(in.TransferredTo),
		Reason:        strings.TrimSpace(in.Reason),
		ExitDate:      exitDate,
		ApprovedBy:    strings.TrimSpace(in.ApprovedBy),
		Condition:     in.Condition,
		Accessories:   strings.TrimSpace(in.Accessories),
		Remarks:       strings.TrimSpace(in.Remarks),
		CreatedAt:     s.now(),
	}
	if transfer.ActionType == entities.ActionTransfer {
		if !transfer.ToSection.Valid || !transfer.TransferredTo.Valid {
			return nil, apperrors.NewInvalidInputError("to_section and transferred_to are required for transfers")
		}
	} else {
		transfer.ToSection, transfer.TransferredTo = null.String{}, null.String{}
	}

	if err := s.transferRepository.CreateTransfer(ctx, transfer); err != nil {
		s.logger.Error("RecordTransfer: insert failed", zap.String("asset_tag", transfer.AssetTag), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Transfer recorded",
		zap.String("asset_tag", transfer.AssetTag),
		zap.String("action_type", transfer.ActionType),
	)
	out := transferToDTO(transfer)
	return &out, nil
}

func (s *TransferService) GetTransfers(ctx context.Context, filter types.Filter) ([]dto.TransferDTO, uint64, error) {
	list, total, err := s.transferRepository.GetTransfers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.TransferDTO, 0, len(list))
	for _, t := range list {
		out = append(out, transferToDTO(t))
	}
	return out, total, nil
}

func (s *TransferService) GetAllTransfers(ctx context.Context) ([]dto.TransferDTO, error) {
	list, err := s.transferRepository.GetAllTransfers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferDTO, 0, len(list))
	for _, t := range list {
		out = append(out, transferToDTO(t))
	}
	return out, nil
}
