// Package social implements a small in-memory social-network domain: users
// publish and like posts, befriend each other, and businesses extend users
// with product listings. It doubles as a data source for the encoding and
// classification demos.
package social

import "github.com/google/uuid"

// Post is a timeline entry. Likes holds usernames in the order the likes
// arrived; entries are only ever appended, through User.LikePost.
type Post struct {
	ID    uuid.UUID
	Title string
	Text  string
	Likes []string
}

func newPost(title, text string) *Post {
	return &Post{
		ID:    uuid.New(),
		Title: title,
		Text:  text,
	}
}

// LikedBy reports whether username already appears in the post's likes.
func (p *Post) LikedBy(username string) bool {
	for _, u := range p.Likes {
		if u == username {
			return true
		}
	}
	return false
}
