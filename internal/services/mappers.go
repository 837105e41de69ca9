package services

import (
	"office-inventory/internal/dto"
	"office-inventory/internal/entities"
	"office-inventory/pkg/utils"
)

func equipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:              e.ID.String(),
		UniqueID:        e.UniqueID,
		InventoryType:   e.InventoryType,
		SerialNumber:    e.SerialNumber,
		ComputerType:    e.ComputerType.Ptr(),
		Brand:           e.Brand,
		Model:           e.Model,
		Processor:       e.Processor,
		RAM:             e.RAM,
		Storage:         e.Storage,
		OperatingSystem: e.OperatingSystem,
		PurchaseDate:    utils.NullDateToPtr(e.PurchaseDate),
		Remarks:         e.Remarks,
		CreatedAt:       utils.FormatDateTime(e.CreatedAt),
	}
}

func equipmentToShortDTO(e entities.Equipment) dto.ShortEquipmentDTO {
	return dto.ShortEquipmentDTO{
		ID:            e.ID.String(),
		UniqueID:      e.UniqueID,
		InventoryType: e.InventoryType,
		SerialNumber:  e.SerialNumber,
		Brand:         e.Brand,
		Model:         e.Model,
	}
}

func issueToDTO(i entities.Issue) dto.IssueDTO {
	return dto.IssueDTO{
		ID:              i.ID.String(),
		UID:             i.UID,
		InventoryID:     i.InventoryID.String(),
		UniqueID:        i.UniqueID,
		SerialNumber:    i.SerialNumber,
		IssueType:       i.IssueType,
		EmployeeSection: i.EmployeeSection,
		Location:        i.Location.Ptr(),
		IssuedTo:        i.IssuedTo.Ptr(),
		PhoneNumber:     i.PhoneNumber.Ptr(),
		Email:           i.Email.Ptr(),
		Designation:     i.Designation.Ptr(),
		IssueDate:       utils.FormatDate(i.IssueDate),
		Remarks:         i.Remarks,
		CreatedAt:       utils.FormatDateTime(i.CreatedAt),
	}
}

func transferToDTO(t entities.Transfer) dto.TransferDTO {
	return dto.TransferDTO{
		ID:            t.ID.String(),
		AssetTag:      t.AssetTag,
		SerialNumber:  t.SerialNumber,
		ActionType:    t.ActionType,
		FromSection:   t.FromSection,
		ToSection:     t.ToSection.Ptr(),
		TransferredTo: t.TransferredTo.Ptr(),
		Reason:        t.Reason,
		ExitDate:      utils.FormatDate(t.ExitDate),
		ApprovedBy:    t.ApprovedBy,
		Condition:     t.Condition,
		Accessories:   t.Accessories,
		Remarks:       t.Remarks,
		CreatedAt:     utils.FormatDateTime(t.CreatedAt),
	}
}
