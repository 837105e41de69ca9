package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-inventory/internal/dto"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/types"
)

func transferInput(action string) dto.CreateTransferDTO {
	return dto.CreateTransferDTO{
		AssetTag:      "OFN/ITC/INV/PC-001",
		SerialNumber:  "SN-1",
		ActionType:    action,
		FromSection:   "ITC",
		ToSection:     "HR",
		TransferredTo: "John",
		Reason:        "reorganisation",
		ExitDate:      "2024-06-01",
		ApprovedBy:    "Head of ITC",
		Condition:     "good",
	}
}

func TestTransfers_RecordAndList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	out, err := f.transfers.RecordTransfer(ctx, transferInput("transfer"))
	require.NoError(t, err)
	require.NotNil(t, out.ToSection)
	assert.Equal(t, "HR", *out.ToSection)

	exit, err := f.transfers.RecordTransfer(ctx, transferInput("exit"))
	require.NoError(t, err)
	assert.Nil(t, exit.ToSection, "destination only applies to transfers")

	list, total, err := f.transfers.GetTransfers(ctx, types.Filter{Filter: map[string]interface{}{"action_type": "exit"}})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Equal(t, "exit", list[0].ActionType)
}

func TestTransfers_DoNotAffectAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pc := f.register(t, "PC")

	in := transferInput("exit")
	in.AssetTag = pc.UniqueID
	_, err := f.transfers.RecordTransfer(ctx, in)
	require.NoError(t, err)

	rows, err := f.availability.Project(ctx, "available", "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTransfers_TransferNeedsDestination(t *testing.T) {
	in := transferInput("transfer")
	in.TransferredTo = ""
	_, err := newFixture(t).transfers.RecordTransfer(context.Background(), in)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
