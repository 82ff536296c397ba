package responses

import "time"

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content,omitempty"`
	Source      string    `json:"source,omitempty"`
	ImageUrl    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}
