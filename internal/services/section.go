package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/repositories"
	apperrors "office-inventory/pkg/errors"
)

const SectionsKey = "sections"

var DefaultSections = []string{
	"ITC", "HR", "Security", "Finance", "Operations", "Administration", "Engineering", "Marketing",
}

// SectionService keeps the ordered section names as one JSON array in the
// KV store. A missing key means the defaults.
type SectionService struct {
	cache  repositories.CacheRepositoryInterface
	mu     sync.Mutex
	logger *zap.Logger
}

func NewSectionService(cache repositories.CacheRepositoryInterface, logger *zap.Logger) *SectionService {
	return &SectionService{cache: cache, logger: logger}
}

func (s *SectionService) load(ctx context.Context) ([]string, error) {
	raw, err := s.cache.Get(ctx, SectionsKey)
	if errors.Is(err, repositories.ErrCacheMiss) {
		return append([]string(nil), DefaultSections...), nil
	}
	if err != nil {
		return nil, err
	}
	var sections []string
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		s.logger.Warn("SectionService: stored list is unreadable, using defaults", zap.Error(err))
		return append([]string(nil), DefaultSections...), nil
	}
	return sections, nil
}

func (s *SectionService) save(ctx context.Context, sections []string) error {
	raw, err := json.Marshal(sections)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, SectionsKey, string(raw), 0)
}

func toSectionDTOs(sections []string) []dto.SectionDTO {
	out := make([]dto.SectionDTO, 0, len(sections))
	for i, name := range sections {
		out = append(out, dto.SectionDTO{Index: i, Name: name})
	}
	return out
}

func (s *SectionService) ListSections(ctx context.Context) ([]dto.SectionDTO, error) {
	sections, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return toSectionDTOs(sections), nil
}

// SectionNames returns the plain list.
func (s *SectionService) SectionNames(ctx context.Context) ([]string, error) {
	return s.load(ctx)
}

func (s *SectionService) AddSection(ctx context.Context, name string) ([]dto.SectionDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidInputError("section name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sections, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sections = append(sections, name)
	if err := s.save(ctx, sections); err != nil {
		return nil, err
	}
	s.logger.Info("Section added", zap.String("name", name))
	return toSectionDTOs(sections), nil
}

func (s *SectionService) RenameSection(ctx context.Context, index int, name string) ([]dto.SectionDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidInputError("section name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sections, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sections) {
		return nil, fmt.Errorf("section %d: %w", index, apperrors.ErrNotFound)
	}
	old := sections[index]
	sections[index] = name
	if err := s.save(ctx, sections); err != nil {
		return nil, err
	}
	s.logger.Info("Section renamed", zap.String("from", old), zap.String("to", name))
	return toSectionDTOs(sections), nil
}

// DeleteSection removes the section at index. confirm must equal its name.
func (s *SectionService) DeleteSection(ctx context.Context, index int, confirm string) ([]dto.SectionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sections, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sections) {
		return nil, fmt.Errorf("section %d: %w", index, apperrors.ErrNotFound)
	}
	if strings.TrimSpace(confirm) != sections[index] {
		return nil, apperrors.ErrSectionMismatch
	}

	removed := sections[index]
	sections = append(sections[:index], sections[index+1:]...)
	if err := s.save(ctx, sections); err != nil {
		return nil, err
	}
	s.logger.Info("Section deleted", zap.String("name", removed))
	return toSectionDTOs(sections), nil
}

func (s *SectionService) ResetSections(ctx context.Context) ([]dto.SectionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cache.Del(ctx, SectionsKey); err != nil {
		return nil, err
	}
	return toSectionDTOs(DefaultSections), nil
}

// SeedDefaults writes the default list unless one is already stored.
func (s *SectionService) SeedDefaults(ctx context.Context) (bool, error) {
	raw, err := json.Marshal(DefaultSections)
	if err != nil {
		return false, err
	}
	return s.cache.SetNX(ctx, SectionsKey, string(raw), 0)
}
