package dto

import "time"

// CreateNoticeRequest nuevo anuncio (solo Admin).
type CreateNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoticeResponse salida de un anuncio.
type NoticeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
