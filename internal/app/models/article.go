package models

import "time"

type Article struct {
	ID          string    `bson:"_id,omitempty"`
	Title       string    `bson:"title"`
	Summary     string    `bson:"summary"`
	Content     string    `bson:"content"`
	Source      string    `bson:"source,omitempty"`
	ImageUrl    string    `bson:"imageUrl,omitempty"`
	PublishedAt time.Time `bson:"publishedAt"`
	TimeModel   `bson:",inline"`
}
