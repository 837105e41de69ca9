package dto

type CreateIssueDTO struct {
	InventoryID     string `json:"inventory_id" validate:"required,uuid"`
	IssueType       string `json:"issue_type" validate:"required,oneof=section employee"`
	EmployeeSection string `json:"employee_section" validate:"required,max=100"`
	Location        string `json:"location" validate:"max=200"`
	IssuedTo        string `json:"issued_to" validate:"required_if=IssueType employee,max=200"`
	PhoneNumber     string `json:"phone_number" validate:"required_if=IssueType employee,max=50"`
	Email           string `json:"email" validate:"required_if=IssueType employee,omitempty,email"`
	Designation     string `json:"designation" validate:"required_if=IssueType employee,max=100"`
	IssueDate       string `json:"issue_date" validate:"required,date_only"`
	Remarks         string `json:"remarks" validate:"max=1000"`
}

type IssueDTO struct {
	ID              string  `json:"id"`
	UID             string  `json:"uid"`
	InventoryID     string  `json:"inventory_id"`
	UniqueID        string  `json:"unique_id"`
	SerialNumber    string  `json:"serial_number"`
	IssueType       string  `json:"issue_type"`
	EmployeeSection string  `json:"employee_section"`
	Location        *string `json:"location"`
	IssuedTo        *string `json:"issued_to"`
	PhoneNumber     *string `json:"phone_number"`
	Email           *string `json:"email"`
	Designation     *string `json:"designation"`
	IssueDate       string  `json:"issue_date"`
	Remarks         string  `json:"remarks"`
	CreatedAt       string  `json:"created_at"`
}

// IssueReceiptDTO is returned after a successful issue.
type IssueReceiptDTO struct {
	IssueDTO
	Recipient string `json:"recipient"`
}
