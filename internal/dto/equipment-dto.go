package dto

type CreateEquipmentDTO struct {
	InventoryType   string `json:"inventory_type" validate:"required,inventory_bucket"`
	SerialNumber    string `json:"serial_number" validate:"required,max=100"`
	ComputerType    string `json:"computer_type" validate:"omitempty,computer_type"`
	Brand           string `json:"brand" validate:"required,max=100"`
	Model           string `json:"model" validate:"required,max=100"`
	Processor       string `json:"processor" validate:"max=100"`
	RAM             string `json:"ram" validate:"max=50"`
	Storage         string `json:"storage" validate:"max=50"`
	OperatingSystem string `json:"operating_system" validate:"max=100"`
	PurchaseDate    string `json:"purchase_date" validate:"omitempty,date_only"`
	Remarks         string `json:"remarks" validate:"max=1000"`
}

type EquipmentDTO struct {
	ID              string  `json:"id"`
	UniqueID        string  `json:"unique_id"`
	InventoryType   string  `json:"inventory_type"`
	SerialNumber    string  `json:"serial_number"`
	ComputerType    *string `json:"computer_type"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Processor       string  `json:"processor"`
	RAM             string  `json:"ram"`
	Storage         string  `json:"storage"`
	OperatingSystem string  `json:"operating_system"`
	PurchaseDate    *string `json:"purchase_date"`
	Remarks         string  `json:"remarks"`
	CreatedAt       string  `json:"created_at"`
}

// ShortEquipmentDTO is one entry of the issue chooser.
type ShortEquipmentDTO struct {
	ID            string `json:"id"`
	UniqueID      string `json:"unique_id"`
	InventoryType string `json:"inventory_type"`
	SerialNumber  string `json:"serial_number"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
}

// EquipmentAvailabilityDTO is an equipment row with its derived issue state.
type EquipmentAvailabilityDTO struct {
	EquipmentDTO
	IsIssued  bool    `json:"is_issued"`
	IssueUID  *string `json:"issue_uid"`
	IssuedTo  *string `json:"issued_to"`
	Section   *string `json:"section"`
	Location  *string `json:"location"`
	IssueDate *string `json:"issue_date"`
}

type ImportFailureDTO struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResultDTO summarises a spreadsheet import. Row numbers are 1-based
// as shown in the spreadsheet.
type ImportResultDTO struct {
	Sheet   string             `json:"sheet"`
	Created []string           `json:"created"`
	Failed  []ImportFailureDTO `json:"failed"`
}
