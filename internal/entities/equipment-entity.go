package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// Equipment buckets. Each bucket has its own identifier sequence.
const (
	BucketPC      = "PC"
	BucketCPU     = "CPU"
	BucketPrinter = "Printer"
	BucketUPS     = "UPS"
)

var Buckets = []string{BucketPC, BucketCPU, BucketPrinter, BucketUPS}

// Equipment is a row of computer_submissions.
type Equipment struct {
	ID              uuid.UUID   `json:"id"`
	UniqueID        string      `json:"unique_id"`
	InventoryType   string      `json:"inventory_type"`
	SerialNumber    string      `json:"serial_number"`
	ComputerType    null.String `json:"computer_type"`
	Brand           string      `json:"brand"`
	Model           string      `json:"model"`
	Processor       string      `json:"processor"`
	RAM             string      `json:"ram"`
	Storage         string      `json:"storage"`
	OperatingSystem string      `json:"operating_system"`
	PurchaseDate    null.Time   `json:"purchase_date"`
	Remarks         string      `json:"remarks"`
	CreatedAt       time.Time   `json:"created_at"`
}
