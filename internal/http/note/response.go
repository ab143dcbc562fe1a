package note

import (
	"time"

	"github.com/MrJamesThe3rd/aqari/internal/note"
)

type noteResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Color     note.Color `json:"color"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toResponse(n note.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
	}
}
