package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

const (
	ActionTransfer = "transfer"
	ActionExit     = "exit"
	ActionReturn   = "return"
	ActionRepair   = "repair"
)

// Transfer is an append-only row of computer_transfers.
type Transfer struct {
	ID            uuid.UUID   `json:"id"`
	AssetTag      string      `json:"asset_tag"`
	SerialNumber  string      `json:"serial_number"`
	ActionType    string      `json:"action_type"`
	FromSection   string      `json:"from_section"`
	ToSection     null.String `json:"to_section"`
	TransferredTo null.String `json:"transferred_to"`
	Reason        string      `json:"reason"`
	ExitDate      time.Time   `json:"exit_date"`
	ApprovedBy    string      `json:"approved_by"`
	Condition     string      `json:"condition"`
	Accessories   string      `json:"accessories"`
	Remarks       string      `json:"remarks"`
	CreatedAt     time.Time   `json:"created_at"`
}
