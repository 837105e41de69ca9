package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

const (
	IssueTypeSection  = "section"
	IssueTypeEmployee = "employee"
)

// Issue is a live row of computer_issues. UniqueID and SerialNumber are
// copied from the equipment at issue time.
type Issue struct {
	ID              uuid.UUID   `json:"id"`
	UID             string      `json:"uid"`
	InventoryID     uuid.UUID   `json:"inventory_id"`
	UniqueID        string      `json:"unique_id"`
	SerialNumber    string      `json:"serial_number"`
	IssueType       string      `json:"issue_type"`
	EmployeeSection string      `json:"employee_section"`
	Location        null.String `json:"location"`
	IssuedTo        null.String `json:"issued_to"`
	PhoneNumber     null.String `json:"phone_number"`
	Email           null.String `json:"email"`
	Designation     null.String `json:"designation"`
	IssueDate       time.Time   `json:"issue_date"`
	Remarks         string      `json:"remarks"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Recipient is the person for employee issues and the section otherwise.
func (i *Issue) Recipient() string {
	if i.IssueType == IssueTypeEmployee && i.IssuedTo.Valid {
		return i.IssuedTo.String
	}
	return i.EmployeeSection
}
