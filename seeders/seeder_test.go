package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"office-inventory/internal/repositories/memory"
	"office-inventory/internal/services"
)

func TestSeedSectionsKeepsExistingList(t *testing.T) {
	ctx := context.Background()
	sections := services.NewSectionService(memory.NewCache(), zap.NewNop())

	_, err := sections.AddSection(ctx, "Legal")
	require.NoError(t, err)
	require.NoError(t, SeedSections(ctx, sections))

	names, err := sections.SectionNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "Legal")
}

func TestSeedDemoEquipmentNumbersPerBucket(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	logger := zap.NewNop()
	equipment := services.NewEquipmentService(store.Equipment(), store.Issues(), services.NewScanSequencer(logger), "OFN/ITC/INV", logger)

	require.NoError(t, SeedDemoEquipment(ctx, equipment))

	all, err := store.Equipment().GetAllEquipments(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(demoEquipment))

	ids := make(map[string]bool, len(all))
	for _, e := range all {
		ids[e.UniqueID] = true
	}
	for _, want := range []string{"OFN/ITC/INV/PC-001", "OFN/ITC/INV/PC-003", "OFN/ITC/INV/CPU-001", "OFN/ITC/INV/Printer-002", "OFN/ITC/INV/UPS-001"} {
		assert.True(t, ids[want], want)
	}
}
