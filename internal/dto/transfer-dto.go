package dto

type CreateTransferDTO struct {
	AssetTag      string `json:"asset_tag" validate:"required,max=100"`
	SerialNumber  string `json:"serial_number" validate:"required,max=100"`
	ActionType    string `json:"action_type" validate:"required,action_type"`
	FromSection   string `json:"from_section" validate:"required,max=100"`
	ToSection     string `json:"to_section" validate:"required_if=ActionType transfer,max=100"`
	TransferredTo string `json:"transferred_to" validate:"required_if=ActionType transfer,max=200"`
	Reason        string `json:"reason" validate:"required,max=1000"`
	ExitDate      string `json:"exit_date" validate:"required,date_only"`
	ApprovedBy    string `json:"approved_by" validate:"required,max=200"`
	Condition     string `json:"condition" validate:"required,condition"`
	Accessories   string `json:"accessories" validate:"max=500"`
	Remarks       string `json:"remarks" validate:"max=1000"`
}

type TransferDTO struct {
	ID            string  `json:"id"`
	AssetTag      string  `json:"asset_tag"`
	SerialNumber  string  `json:"serial_number"`
	ActionType    string  `json:"action_type"`
	FromSection   string  `json:"from_section"`
	ToSection     *string `json:"to_section"`
	TransferredTo *string `json:"transferred_to"`
	Reason        string  `json:"reason"`
	ExitDate      string  `json:"exit_date"`
	ApprovedBy    string  `json:"approved_by"`
	Condition     string  `json:"condition"`
	Accessories   string  `json:"accessories"`
	Remarks       string  `json:"remarks"`
	CreatedAt     string  `json:"created_at"`
}
