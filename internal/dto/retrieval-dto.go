package dto

// RetrievalCandidateDTO is a live issue joined with its equipment.
type RetrievalCandidateDTO struct {
	IssueDTO
	InventoryType string `json:"inventory_type"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
}

type PrepareRetrievalDTO struct {
	IssueID string `json:"issue_id" validate:"required,uuid"`
}

type ConfirmRetrievalDTO struct {
	Token string `json:"token" validate:"required"`
}

// RetrievalConfirmationDTO must be sent back to complete the retrieval.
type RetrievalConfirmationDTO struct {
	Token     string                `json:"token"`
	ExpiresAt string                `json:"expires_at"`
	Issue     RetrievalCandidateDTO `json:"issue"`
}

type RetrievalResultDTO struct {
	IssueID  string `json:"issue_id"`
	UID      string `json:"uid"`
	UniqueID string `json:"unique_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
}
