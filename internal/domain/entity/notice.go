package entity

import "time"

// Notice anuncio del tablón, visible para todos. Solo se agregan, no se editan.
type Notice struct {
	ID        string
	Title     string
	Content   string
	CreatedBy string
	CreatedAt time.Time
}
