package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "office-inventory/pkg/errors"
)

func TestRetrieval_TokenIsSingleUse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pc := f.register(t, "PC")
	receipt := f.issueToSection(t, pc.ID, "HR")

	confirmation, err := f.retrievals.PrepareRetrieval(ctx, uuid.MustParse(receipt.ID))
	require.NoError(t, err)

	_, err = f.retrievals.ConfirmRetrieval(ctx, confirmation.Token)
	require.NoError(t, err)

	_, err = f.retrievals.ConfirmRetrieval(ctx, confirmation.Token)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationInvalid)
}

func TestRetrieval_UnknownTokenKeepsIssue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pc := f.register(t, "PC")
	f.issueToSection(t, pc.ID, "HR")

	_, err := f.retrievals.ConfirmRetrieval(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrConfirmationInvalid)

	candidates, err := f.retrievals.Candidates(ctx, "")
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestRetrieval_TokenExpires(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	now := time.Now()
	f.cache.SetClock(func() time.Time { return now })

	pc := f.register(t, "PC")
	receipt := f.issueToSection(t, pc.ID, "HR")
	confirmation, err := f.retrievals.PrepareRetrieval(ctx, uuid.MustParse(receipt.ID))
	require.NoError(t, err)

	now = now.Add(6 * time.Minute)
	_, err = f.retrievals.ConfirmRetrieval(ctx, confirmation.Token)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationInvalid)

	issued, err := f.store.Issues().IsIssued(ctx, uuid.MustParse(pc.ID))
	require.NoError(t, err)
	assert.True(t, issued)
}

func TestRetrieval_PrepareUnknownIssue(t *testing.T) {
	_, err := newFixture(t).retrievals.PrepareRetrieval(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRetrieval_CandidatesJoinAndSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pc := f.register(t, "PC")
	ups := f.register(t, "UPS")
	f.register(t, "Printer")
	f.issueToSection(t, pc.ID, "HR")
	f.issueToSection(t, ups.ID, "Security")

	all, err := f.retrievals.Candidates(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, c := range all {
		assert.Equal(t, "Dell", c.Brand)
		assert.NotEmpty(t, c.InventoryType)
	}

	found, err := f.retrievals.Candidates(ctx, "ups-001")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "UPS", found[0].InventoryType)

	found, err = f.retrievals.Candidates(ctx, "security")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
