package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-inventory/internal/dto"
	apperrors "office-inventory/pkg/errors"
)

func TestInventoryLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	pc1 := f.register(t, "PC")
	pc2 := f.register(t, "PC")
	pc3 := f.register(t, "PC")
	assert.Equal(t, "OFN/ITC/INV/PC-001", pc1.UniqueID)
	assert.Equal(t, "OFN/ITC/INV/PC-002", pc2.UniqueID)
	assert.Equal(t, "OFN/ITC/INV/PC-003", pc3.UniqueID)

	receipt := f.issueToSection(t, pc2.ID, "HR")
	assert.Equal(t, "UID-001", receipt.UID)
	assert.Equal(t, pc2.UniqueID, receipt.UniqueID)
	assert.Equal(t, "HR", receipt.Recipient)

	rows, err := f.availability.Project(ctx, "", "")
	require.NoError(t, err)
	state := map[string]bool{}
	for _, r := range rows {
		state[r.UniqueID] = r.IsIssued
	}
	assert.Equal(t, map[string]bool{pc1.UniqueID: false, pc2.UniqueID: true, pc3.UniqueID: false}, state)

	available, err := f.issues.AvailableEquipment(ctx, "")
	require.NoError(t, err)
	assert.Len(t, available, 2)

	issueID := uuid.MustParse(receipt.ID)
	confirmation, err := f.retrievals.PrepareRetrieval(ctx, issueID)
	require.NoError(t, err)
	assert.Equal(t, "UID-001", confirmation.Issue.UID)
	assert.Equal(t, "Dell", confirmation.Issue.Brand)

	result, err := f.retrievals.ConfirmRetrieval(ctx, confirmation.Token)
	require.NoError(t, err)
	assert.Equal(t, "UID-001", result.UID)
	assert.Equal(t, pc2.UniqueID, result.UniqueID)

	rows, err = f.availability.Project(ctx, "issued", "")
	require.NoError(t, err)
	assert.Empty(t, rows)

	issues, total, err := f.issues.GetIssues(ctx, emptyFilter())
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, issues)
}

func TestRegisterEquipment_StoreErrorStillRegisters(t *testing.T) {
	f := newFixture(t)
	f.equipment.sequencer = sequencerWithSource{NewScanSequencer(f.equipment.logger), &stubSource{err: assert.AnError}}

	out, err := f.equipment.RegisterEquipment(context.Background(), dto.CreateEquipmentDTO{
		InventoryType: "UPS", SerialNumber: "X1", Brand: "APC", Model: "Back-UPS",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^OFN/ITC/INV/UPS-\d{13,}$`, out.UniqueID)
}

func TestRegisterEquipment_ComputerTypeOnlyForPC(t *testing.T) {
	f := newFixture(t)
	pc := f.register(t, "PC")
	require.NotNil(t, pc.ComputerType)
	assert.Equal(t, "desktop", *pc.ComputerType)

	ups := f.register(t, "UPS")
	assert.Nil(t, ups.ComputerType)
	assert.Equal(t, "OFN/ITC/INV/UPS-001", ups.UniqueID)
}

func TestDeleteEquipment_RefusedWhileIssued(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pc := f.register(t, "PC")
	receipt := f.issueToSection(t, pc.ID, "ITC")

	err := f.equipment.DeleteEquipment(ctx, uuid.MustParse(pc.ID))
	assert.ErrorIs(t, err, apperrors.ErrEquipmentIssued)

	confirmation, err := f.retrievals.PrepareRetrieval(ctx, uuid.MustParse(receipt.ID))
	require.NoError(t, err)
	_, err = f.retrievals.ConfirmRetrieval(ctx, confirmation.Token)
	require.NoError(t, err)

	require.NoError(t, f.equipment.DeleteEquipment(ctx, uuid.MustParse(pc.ID)))
	_, err = f.equipment.FindEquipment(ctx, uuid.MustParse(pc.ID))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestIssueEquipment_Rules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pc := f.register(t, "PC")

	t.Run("employee fields required", func(t *testing.T) {
		_, err := f.issues.IssueEquipment(ctx, dto.CreateIssueDTO{
			InventoryID: pc.ID, IssueType: "employee", EmployeeSection: "HR", IssuedTo: "Ali", IssueDate: "2024-01-01",
		})
		var invalid *apperrors.InvalidInputError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("section issue drops employee fields", func(t *testing.T) {
		out, err := f.issues.IssueEquipment(ctx, dto.CreateIssueDTO{
			InventoryID: pc.ID, IssueType: "section", EmployeeSection: "HR",
			IssuedTo: "ignored", Email: "x@y.z", IssueDate: "2024-01-01",
		})
		require.NoError(t, err)
		assert.Nil(t, out.IssuedTo)
		assert.Nil(t, out.Email)
	})

	t.Run("second issue refused", func(t *testing.T) {
		_, err := f.issues.IssueEquipment(ctx, dto.CreateIssueDTO{
			InventoryID: pc.ID, IssueType: "section", EmployeeSection: "ITC", IssueDate: "2024-01-02",
		})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyIssued)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		_, err := f.issues.IssueEquipment(ctx, dto.CreateIssueDTO{
			InventoryID: uuid.NewString(), IssueType: "section", EmployeeSection: "ITC", IssueDate: "2024-01-02",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestIssueEquipment_EmployeeReceipt(t *testing.T) {
	f := newFixture(t)
	pc := f.register(t, "PC")
	out, err := f.issues.IssueEquipment(context.Background(), dto.CreateIssueDTO{
		InventoryID: pc.ID, IssueType: "employee", EmployeeSection: "Finance",
		IssuedTo: "Jane Doe", PhoneNumber: "+100200300", Email: "jane@example.com", Designation: "Accountant",
		IssueDate: "2024-02-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out.Recipient)
	assert.Equal(t, "2024-02-10", out.IssueDate)
	require.NotNil(t, out.Designation)
	assert.Equal(t, "Accountant", *out.Designation)
}
