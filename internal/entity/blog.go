package entity

import "time"

type BlogStatus string

const (
	BlogActive   BlogStatus = "active"
	BlogInactive BlogStatus = "inactive"
)

type Blog struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      BlogStatus `db:"status"`
	// AuthorID is nil once the author has been deleted.
	AuthorID   *string   `db:"author_id"`
	AuthorName *string   `db:"author_name"`
	LikedBy    []Liker   `db:"-"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Liker is the projection of a user in a blog's like set.
type Liker struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func (b Blog) IsAuthoredBy(userID string) bool {
	return b.AuthorID != nil && *b.AuthorID == userID
}
