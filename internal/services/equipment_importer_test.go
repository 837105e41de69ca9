package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"office-inventory/pkg/customvalidator"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/utils"
)

func newImporter(t *testing.T, f *fixture) *EquipmentImporter {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	return NewEquipmentImporter(f.equipment, utils.NewValidator(v), zap.NewNop())
}

func workbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	x := excelize.NewFile()
	defer func() { _ = x.Close() }()
	if sheet != "Sheet1" {
		_, err := x.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, addr, &row))
	}
	buf, err := x.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestEquipmentImporter_RegistersRowsInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	buf := workbook(t, "Sheet1", [][]interface{}{
		{"IT equipment register"},
		{},
		{"Type", "Serial Number", "Computer Type", "Brand", "Model", "RAM", "Purchase Date"},
		{"PC", "SN-1", "Laptop", "Dell", "Latitude", "16GB", "2024-01-15"},
		{"printer", "SN-2", "", "HP", "LaserJet", "", ""},
		{"PC", "SN-3", "desktop", "HP", "EliteDesk", "8GB", "45306"},
		{},
		{"Scanner", "SN-4", "", "Canon", "X", "", ""},
		{"PC", "", "", "Dell", "Missing serial", "", ""},
		{"Total", "", "", "", "", "", ""},
	})

	res, err := newImporter(t, f).Import(ctx, buf)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", res.Sheet)
	assert.Equal(t, []string{"OFN/ITC/INV/PC-001", "OFN/ITC/INV/Printer-001", "OFN/ITC/INV/PC-002"}, res.Created)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, 8, res.Failed[0].Row)
	assert.Contains(t, res.Failed[0].Error, "InventoryType")
	assert.Equal(t, 9, res.Failed[1].Row)
	assert.Contains(t, res.Failed[1].Error, "SerialNumber")

	all, err := f.store.Equipment().GetAllEquipments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, e := range all {
		switch e.UniqueID {
		case "OFN/ITC/INV/PC-001":
			assert.Equal(t, "laptop", e.ComputerType.String)
		case "OFN/ITC/INV/PC-002":
			require.True(t, e.PurchaseDate.Valid)
			assert.Equal(t, "2024-01-15", e.PurchaseDate.Time.Format("2006-01-02"))
		case "OFN/ITC/INV/Printer-001":
			assert.False(t, e.ComputerType.Valid)
		}
	}
}

func TestEquipmentImporter_ScansAllSheets(t *testing.T) {
	f := newFixture(t)

	buf := workbook(t, "Inventory", [][]interface{}{
		{"inventory_type", "serial", "brand", "model"},
		{"UPS", "U-1", "APC", "Smart-UPS"},
	})

	res, err := newImporter(t, f).Import(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, "Inventory", res.Sheet)
	assert.Equal(t, []string{"OFN/ITC/INV/UPS-001"}, res.Created)
}

func TestEquipmentImporter_RejectsUnusableFiles(t *testing.T) {
	f := newFixture(t)
	importer := newImporter(t, f)

	var invalid *apperrors.InvalidInputError

	_, err := importer.Import(context.Background(), bytes.NewBufferString("not a workbook"))
	assert.ErrorAs(t, err, &invalid)

	buf := workbook(t, "Sheet1", [][]interface{}{{"Name", "Qty"}, {"Mouse", 3}})
	_, err = importer.Import(context.Background(), buf)
	assert.ErrorAs(t, err, &invalid)
}
