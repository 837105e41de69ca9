package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/entities"
	"office-inventory/internal/repositories"
	apperrors "office-inventory/pkg/errors"
)

const retrievalKeyPrefix = "retrieval:confirm:"

// RetrievalService ends issues. Deletion is two-phase: PrepareRetrieval
// hands out a short-lived token and only ConfirmRetrieval with that token
// removes the issue row.
type RetrievalService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	issueRepository     repositories.IssueRepositoryInterface
	cache               repositories.CacheRepositoryInterface
	confirmTTL          time.Duration
	logger              *zap.Logger
	now                 func() time.Time
}

func NewRetrievalService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	issueRepository repositories.IssueRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	confirmTTL time.Duration,
	logger *zap.Logger,
) *RetrievalService {
	return &RetrievalService{
		equipmentRepository: equipmentRepository,
		issueRepository:     issueRepository,
		cache:               cache,
		confirmTTL:          confirmTTL,
		logger:              logger,
		now:                 time.Now,
	}
}

// Candidates lists live issues joined with their equipment in one batch.
func (s *RetrievalService) Candidates(ctx context.Context, search string) ([]dto.RetrievalCandidateDTO, error) {
	issues, err := s.issueRepository.GetAllIssues(ctx)
	if err != nil {
		return nil, err
	}
	byID, err := s.equipmentFor(ctx, issues)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]dto.RetrievalCandidateDTO, 0, len(issues))
	for _, issue := range issues {
		candidate := toCandidate(issue, byID[issue.InventoryID])
		if needle != "" && !candidateMatches(candidate, needle) {
			continue
		}
		out = append(out, candidate)
	}
	return out, nil
}

func (s *RetrievalService) equipmentFor(ctx context.Context, issues []entities.Issue) (map[uuid.UUID]entities.Equipment, error) {
	ids := make([]uuid.UUID, 0, len(issues))
	for _, i := range issues {
		ids = append(ids, i.InventoryID)
	}
	equipment, err := s.equipmentRepository.FindEquipmentByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entities.Equipment, len(equipment))
	for _, e := range equipment {
		byID[e.ID] = e
	}
	return byID, nil
}

func toCandidate(issue entities.Issue, e entities.Equipment) dto.RetrievalCandidateDTO {
	return dto.RetrievalCandidateDTO{
		IssueDTO:      issueToDTO(issue),
		InventoryType: e.InventoryType,
		Brand:         e.Brand,
		Model:         e.Model,
	}
}

func candidateMatches(c dto.RetrievalCandidateDTO, needle string) bool {
	fields := []string{c.UniqueID, c.UID, c.Brand, c.Model, c.SerialNumber, c.EmployeeSection}
	if c.IssuedTo != nil {
		fields = append(fields, *c.IssuedTo)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// PrepareRetrieval is the first phase. Nothing is deleted.
func (s *RetrievalService) PrepareRetrieval(ctx context.Context, issueID uuid.UUID) (*dto.RetrievalConfirmationDTO, error) {
	issue, err := s.issueRepository.FindIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepository.FindEquipment(ctx, issue.InventoryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	var e entities.Equipment
	if equipment != nil {
		e = *equipment
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, retrievalKeyPrefix+token, issueID.String(), s.confirmTTL); err != nil {
		return nil, err
	}

	return &dto.RetrievalConfirmationDTO{
		Token:     token,
		ExpiresAt: s.now().Add(s.confirmTTL).UTC().Format(time.RFC3339),
		Issue:     toCandidate(*issue, e),
	}, nil
}

// ConfirmRetrieval consumes token and deletes the issue it was made for.
// A token works once, whether or not the delete succeeds.
func (s *RetrievalService) ConfirmRetrieval(ctx context.Context, token string) (*dto.RetrievalResultDTO, error) {
	key := retrievalKeyPrefix + token
	raw, err := s.cache.Get(ctx, key)
	if errors.Is(err, repositories.ErrCacheMiss) {
		return nil, apperrors.ErrConfirmationInvalid
	}
	if err != nil {
		return nil, err
	}
	if err := s.cache.Del(ctx, key); err != nil {
		return nil, err
	}

	issueID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.ErrConfirmationInvalid
	}
	issue, err := s.issueRepository.FindIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}

	result := &dto.RetrievalResultDTO{
		IssueID:  issue.ID.String(),
		UID:      issue.UID,
		UniqueID: issue.UniqueID,
	}
	if e, err := s.equipmentRepository.FindEquipment(ctx, issue.InventoryID); err == nil {
		result.Brand, result.Model = e.Brand, e.Model
	}

	if err := s.issueRepository.DeleteIssue(ctx, issueID); err != nil {
		s.logger.Error("ConfirmRetrieval: delete failed", zap.String("uid", issue.UID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Equipment retrieved", zap.String("uid", issue.UID), zap.String("unique_id", issue.UniqueID))
	return result, nil
}
