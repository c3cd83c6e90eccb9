package social

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofit-ml/gofit/pkg/errors"
)

func TestNewUser(t *testing.T) {
	u := NewUser("alice")

	if u.Username != "alice" {
		t.Errorf("Username = %q, want %q", u.Username, "alice")
	}
	if len(u.Friends) != 0 || len(u.Posts) != 0 {
		t.Errorf("new user should start empty, got friends=%v posts=%v", u.Friends, u.Posts)
	}
	if u.JoinedDate.IsZero() {
		t.Error("JoinedDate should be set")
	}
}

func TestAddFriendIsMutual(t *testing.T) {
	alice := NewUser("alice")
	bob := NewUser("bob")
	carol := NewUser("carol")

	if err := alice.AddFriend(bob); err != nil {
		t.Fatalf("AddFriend() error = %v", err)
	}
	if err := alice.AddFriend(carol); err != nil {
		t.Fatalf("AddFriend() error = %v", err)
	}

	if diff := cmp.Diff([]string{"bob", "carol"}, alice.Friends); diff != "" {
		t.Errorf("alice.Friends mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alice"}, bob.Friends); diff != "" {
		t.Errorf("bob.Friends mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alice"}, carol.Friends); diff != "" {
		t.Errorf("carol.Friends mismatch (-want +got):\n%s", diff)
	}
}

func TestAddFriendRejections(t *testing.T) {
	alice := NewUser("alice")
	bob := NewUser("bob")

	if err := alice.AddFriend(nil); err == nil {
		t.Error("nil friend should be rejected")
	}
	if err := alice.AddFriend(alice); err == nil {
		t.Error("self friendship should be rejected")
	}

	if err := alice.AddFriend(bob); err != nil {
		t.Fatalf("AddFriend() error = %v", err)
	}
	err := alice.AddFriend(bob)
	if err == nil {
		t.Fatal("repeat friendship should be rejected")
	}
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected *ValidationError, got %T", err)
	}

	// The rejected call must not have touched either list.
	if len(alice.Friends) != 1 || len(bob.Friends) != 1 {
		t.Errorf("friend lists changed on rejection: alice=%v bob=%v",
			alice.Friends, bob.Friends)
	}
}

func TestPublishPost(t *testing.T) {
	alice := NewUser("alice")

	first := alice.PublishPost("hello", "first post")
	second := alice.PublishPost("again", "second post")

	if len(alice.Posts) != 2 {
		t.Fatalf("len(Posts) = %d, want 2", len(alice.Posts))
	}
	if alice.Posts[0] != first || alice.Posts[1] != second {
		t.Error("posts should appear on the timeline in publish order")
	}
	if first.ID == second.ID {
		t.Error("posts should get distinct IDs")
	}
	if first.Title != "hello" || first.Text != "first post" {
		t.Errorf("post = %+v, want title %q text %q", first, "hello", "first post")
	}
	if len(first.Likes) != 0 {
		t.Errorf("new post should have no likes, got %v", first.Likes)
	}
}

func TestLikePost(t *testing.T) {
	alice := NewUser("alice")
	bob := NewUser("bob")
	post := alice.PublishPost("hello", "first post")

	if err := bob.LikePost(post); err != nil {
		t.Fatalf("LikePost() error = %v", err)
	}
	if err := alice.LikePost(post); err != nil {
		t.Fatalf("LikePost() error = %v", err)
	}

	if diff := cmp.Diff([]string{"bob", "alice"}, post.Likes); diff != "" {
		t.Errorf("Likes mismatch (-want +got):\n%s", diff)
	}

	if err := bob.LikePost(post); err == nil {
		t.Error("double like should be rejected")
	}
	if err := bob.LikePost(nil); err == nil {
		t.Error("nil post should be rejected")
	}
	if len(post.Likes) != 2 {
		t.Errorf("likes changed on rejection: %v", post.Likes)
	}
}
