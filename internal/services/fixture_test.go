package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"office-inventory/internal/dto"
	"office-inventory/internal/repositories"
	"office-inventory/internal/repositories/memory"
	"office-inventory/pkg/types"
)

type fixture struct {
	store        *memory.Store
	cache        *memory.Cache
	equipment    *EquipmentService
	issues       *IssueService
	retrievals   *RetrievalService
	availability *AvailabilityService
	transfers    *TransferService
	sections     *SectionService
	reports      *ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewStore()
	cache := memory.NewCache()
	seq := NewScanSequencer(logger)

	f := &fixture{store: store, cache: cache}
	f.equipment = NewEquipmentService(store.Equipment(), store.Issues(), seq, "OFN/ITC/INV", logger)
	f.issues = NewIssueService(store.Equipment(), store.Issues(), seq, logger)
	f.retrievals = NewRetrievalService(store.Equipment(), store.Issues(), cache, 5*time.Minute, logger)
	f.availability = NewAvailabilityService(store.Equipment(), store.Issues())
	f.transfers = NewTransferService(store.Transfers(), logger)
	f.sections = NewSectionService(cache, logger)
	f.reports = NewReportService(f.issues, f.availability, f.transfers, logger)
	return f
}

func (f *fixture) register(t *testing.T, bucket string) *dto.EquipmentDTO {
	t.Helper()
	out, err := f.equipment.RegisterEquipment(context.Background(), dto.CreateEquipmentDTO{
		InventoryType: bucket,
		SerialNumber:  "SN-" + bucket,
		ComputerType:  "desktop",
		Brand:         "Dell",
		Model:         "OptiPlex 7090",
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) issueToSection(t *testing.T, equipmentID, section string) *dto.IssueReceiptDTO {
	t.Helper()
	out, err := f.issues.IssueEquipment(context.Background(), dto.CreateIssueDTO{
		InventoryID:     equipmentID,
		IssueType:       "section",
		EmployeeSection: section,
		Location:        "Block A",
		IssueDate:       "2024-05-01",
	})
	require.NoError(t, err)
	return out
}

// sequencerWithSource swaps the identifier source of every sequence.
type sequencerWithSource struct {
	inner  Sequencer
	source repositories.IdentifierSource
}

func (s sequencerWithSource) Next(ctx context.Context, seq Sequence) string {
	seq.Source = s.source
	return s.inner.Next(ctx, seq)
}

func emptyFilter() types.Filter {
	return types.Filter{}
}
