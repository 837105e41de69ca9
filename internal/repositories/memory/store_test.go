package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-inventory/internal/entities"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/types"
)

func newEquipment(uniqueID, bucket string, created time.Time) entities.Equipment {
	return entities.Equipment{
		ID:            uuid.New(),
		UniqueID:      uniqueID,
		InventoryType: bucket,
		SerialNumber:  "SN-" + uniqueID,
		CreatedAt:     created,
	}
}

func TestEquipment_LatestIdentifier(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Equipment()
	base := time.Now()

	latest, err := repo.LatestIdentifier(ctx, "OFN/ITC/INV/PC-")
	require.NoError(t, err)
	assert.Empty(t, latest)

	require.NoError(t, repo.CreateEquipment(ctx, newEquipment("OFN/ITC/INV/PC-001", "PC", base)))
	require.NoError(t, repo.CreateEquipment(ctx, newEquipment("OFN/ITC/INV/UPS-009", "UPS", base.Add(time.Second))))
	require.NoError(t, repo.CreateEquipment(ctx, newEquipment("OFN/ITC/INV/PC-002", "PC", base)))

	latest, err = repo.LatestIdentifier(ctx, "OFN/ITC/INV/PC-")
	require.NoError(t, err)
	assert.Equal(t, "OFN/ITC/INV/PC-002", latest, "ties on created_at resolve by insertion order")
}

func TestEquipment_DeleteWhileIssued(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	e := newEquipment("OFN/ITC/INV/PC-001", "PC", time.Now())
	require.NoError(t, store.Equipment().CreateEquipment(ctx, e))

	issue := entities.Issue{ID: uuid.New(), UID: "UID-001", InventoryID: e.ID, CreatedAt: time.Now()}
	require.NoError(t, store.Issues().CreateIssue(ctx, issue))

	assert.ErrorIs(t, store.Equipment().DeleteEquipment(ctx, e.ID), apperrors.ErrEquipmentIssued)

	require.NoError(t, store.Issues().DeleteIssue(ctx, issue.ID))
	require.NoError(t, store.Equipment().DeleteEquipment(ctx, e.ID))
	assert.ErrorIs(t, store.Equipment().DeleteEquipment(ctx, e.ID), apperrors.ErrNotFound)
}

func TestIssue_OneLiveIssuePerEquipment(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	e := newEquipment("OFN/ITC/INV/PC-001", "PC", time.Now())
	require.NoError(t, store.Equipment().CreateEquipment(ctx, e))

	require.NoError(t, store.Issues().CreateIssue(ctx, entities.Issue{ID: uuid.New(), InventoryID: e.ID}))
	err := store.Issues().CreateIssue(ctx, entities.Issue{ID: uuid.New(), InventoryID: e.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyIssued)

	err = store.Issues().CreateIssue(ctx, entities.Issue{ID: uuid.New(), InventoryID: uuid.New()})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEquipment_ListFilterSearchPaginate(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Equipment()
	base := time.Now()
	for i, id := range []string{"PC-001", "PC-002", "PC-003", "UPS-001"} {
		bucket := "PC"
		if id == "UPS-001" {
			bucket = "UPS"
		}
		e := newEquipment(id, bucket, base.Add(time.Duration(i)*time.Second))
		e.Brand = "Dell"
		require.NoError(t, repo.CreateEquipment(ctx, e))
	}

	list, total, err := repo.GetEquipments(ctx, types.Filter{
		Filter:         map[string]interface{}{"inventory_type": "PC"},
		Limit:          2,
		WithPagination: true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, list, 2)
	assert.Equal(t, "PC-003", list[0].UniqueID)

	list, total, err = repo.GetEquipments(ctx, types.Filter{Search: "ups"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Equal(t, "UPS-001", list[0].UniqueID)
}
