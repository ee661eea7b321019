package dto

import "time"

// FileComplaintRequest queja presentada por un residente.
type FileComplaintRequest struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// UpdateComplaintStatusRequest cambio de estado (solo Admin).
type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}

// ComplaintResponse salida de una queja.
type ComplaintResponse struct {
	ID           string    `json:"id"`
	ResidentID   string    `json:"residentId"`
	ResidentName string    `json:"residentName"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ComplaintListResponse quejas visibles para el actor.
type ComplaintListResponse struct {
	Items        []ComplaintResponse `json:"items"`
	ActiveIssues int                 `json:"activeIssues"`
}
