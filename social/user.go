package social

import (
	"time"

	"github.com/gofit-ml/gofit/pkg/errors"
	"github.com/gofit-ml/gofit/pkg/log"
)

// User is a social-network member. Friends holds usernames in the order the
// friendships were made; Posts holds the user's timeline in publish order.
// There is no deletion path: friendships and posts only accumulate.
type User struct {
	Username   string
	JoinedDate time.Time
	Friends    []string
	Posts      []*Post
}

// NewUser creates a user with no friends and an empty timeline.
func NewUser(username string) *User {
	return &User{
		Username:   username,
		JoinedDate: time.Now(),
	}
}

// AddFriend records a mutual friendship: each user is appended to the
// other's friend list. Nil, self, and repeat friendships are rejected.
func (u *User) AddFriend(other *User) error {
	if other == nil {
		return errors.NewValidationError("friend", "friend must not be nil", nil)
	}
	if other.Username == u.Username {
		return errors.NewValidationError("friend",
			"a user cannot befriend themselves", u.Username)
	}
	if u.IsFriendOf(other.Username) {
		return errors.NewValidationError("friend",
			"users are already friends", other.Username)
	}

	u.Friends = append(u.Friends, other.Username)
	other.Friends = append(other.Friends, u.Username)

	log.GetLoggerWithName("social").Debug("friendship added",
		"user", u.Username,
		"friend", other.Username,
	)
	return nil
}

// IsFriendOf reports whether username is already in the friend list.
func (u *User) IsFriendOf(username string) bool {
	for _, f := range u.Friends {
		if f == username {
			return true
		}
	}
	return false
}

// PublishPost appends a new post to the user's timeline and returns it.
func (u *User) PublishPost(title, text string) *Post {
	post := newPost(title, text)
	u.Posts = append(u.Posts, post)

	log.GetLoggerWithName("social").Debug("post published",
		"user", u.Username,
		"post_id", post.ID.String(),
		"title", title,
	)
	return post
}

// LikePost appends the user's name to the post's likes. Liking the same post
// twice is rejected.
func (u *User) LikePost(post *Post) error {
	if post == nil {
		return errors.NewValidationError("post", "post must not be nil", nil)
	}
	if post.LikedBy(u.Username) {
		return errors.NewValidationError("post",
			"user has already liked this post", u.Username)
	}

	post.Likes = append(post.Likes, u.Username)

	log.GetLoggerWithName("social").Debug("post liked",
		"user", u.Username,
		"post_id", post.ID.String(),
	)
	return nil
}
