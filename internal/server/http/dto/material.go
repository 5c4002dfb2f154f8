package dto

import "time"

// MaterialRequest carries material fields supplied by the client. The owner
// is always taken from the verified claims, never from the payload.
type MaterialRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// MaterialResponse is the owner's view of a material.
type MaterialResponse struct {
	ID        int64     `json:"id"`
	PublicID  string    `json:"public_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicMaterialResponse is the anonymous projection served by public id.
type PublicMaterialResponse struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// DeleteMaterialResponse confirms a delete and returns the removed record.
type DeleteMaterialResponse struct {
	Message  string           `json:"message"`
	Material MaterialResponse `json:"material"`
}

// HealthResponse reports service status.
type HealthResponse struct {
	Status string `json:"status"`
}
