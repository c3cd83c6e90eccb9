package social

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces synthetic users and businesses with plausible fake
// attributes. A fixed seed yields the same sequence of entities, which
// keeps tests and demos reproducible.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a seeded generator. Seed 0 gives a random sequence.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// User generates one user with a fake username and join date.
func (g *Generator) User() *User {
	u := NewUser(g.faker.Username())
	u.JoinedDate = g.faker.DateRange(
		time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	return u
}

// Users generates n users.
func (g *Generator) Users(n int) []*User {
	users := make([]*User, n)
	for i := range users {
		users[i] = g.User()
	}
	return users
}

// Business generates one business with a fake product listing.
func (g *Generator) Business() *Business {
	b := NewBusiness(
		g.faker.Username(),
		g.faker.ProductName(),
		g.faker.Price(5, 500),
		g.faker.Sentence(8),
		g.faker.Address().Address,
	)
	b.JoinedDate = g.faker.DateRange(
		time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	return b
}

// Network generates n users and wires a sparse friendship graph: each user
// befriends the one generated before it, so every user ends up with at
// least one friend once n > 1.
func (g *Generator) Network(n int) []*User {
	users := g.Users(n)
	for i := 1; i < len(users); i++ {
		// Duplicate usernames from the faker are possible in theory;
		// AddFriend rejects them and the graph stays consistent.
		_ = users[i].AddFriend(users[i-1])
	}
	return users
}
