package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "office-inventory/pkg/errors"
)

func names(t *testing.T, f *fixture) []string {
	t.Helper()
	list, err := f.sections.SectionNames(context.Background())
	require.NoError(t, err)
	return list
}

func TestSections_DefaultsWhenUnset(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, DefaultSections, names(t, f))
}

func TestSections_AddRenameDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.sections.AddSection(ctx, "  Legal ")
	require.NoError(t, err)
	list := names(t, f)
	assert.Equal(t, "Legal", list[len(list)-1])

	_, err = f.sections.AddSection(ctx, "   ")
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	_, err = f.sections.RenameSection(ctx, 1, "Human Resources")
	require.NoError(t, err)
	assert.Equal(t, "Human Resources", names(t, f)[1])

	_, err = f.sections.DeleteSection(ctx, 1, "HR")
	assert.ErrorIs(t, err, apperrors.ErrSectionMismatch)
	assert.Len(t, names(t, f), len(DefaultSections)+1)

	out, err := f.sections.DeleteSection(ctx, 1, "Human Resources")
	require.NoError(t, err)
	assert.Len(t, out, len(DefaultSections))
	assert.Equal(t, "Security", out[1].Name)
	assert.Equal(t, 1, out[1].Index)

	_, err = f.sections.DeleteSection(ctx, 99, "x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSections_ResetAndSeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	seeded, err := f.sections.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	_, err = f.sections.AddSection(ctx, "Legal")
	require.NoError(t, err)

	seeded, err = f.sections.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, seeded, "existing list is kept")

	_, err = f.sections.ResetSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSections, names(t, f))
}

func TestSections_DefaultsAreNotShared(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.sections.RenameSection(ctx, 0, "IT")
	require.NoError(t, err)
	assert.Equal(t, "ITC", DefaultSections[0])
}
