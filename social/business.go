package social

import (
	"fmt"

	"github.com/gofit-ml/gofit/pkg/errors"
)

// Business is a User that sells a product. It keeps the full user behavior
// (friends, timeline, likes) and adds product advertising and sales on top
// of the inherited operations.
type Business struct {
	User

	Product     string
	Price       float64
	Description string
	Address     string
}

// NewBusiness creates a business account with an empty timeline.
func NewBusiness(username, product string, price float64, description, address string) *Business {
	return &Business{
		User:        *NewUser(username),
		Product:     product,
		Price:       price,
		Description: description,
		Address:     address,
	}
}

// AdvertiseProduct publishes a product advertisement on the business
// timeline and returns the post.
func (b *Business) AdvertiseProduct() *Post {
	title := fmt.Sprintf("%s for sale", b.Product)
	text := fmt.Sprintf("%s — only $%.2f! Visit us at %s.",
		b.Description, b.Price, b.Address)
	return b.PublishPost(title, text)
}

// SellProduct records a sale to buyer: a sale post goes on the business
// timeline and the buyer likes it. Both effects go through the inherited
// User operations.
func (b *Business) SellProduct(buyer *User) (*Post, error) {
	if buyer == nil {
		return nil, errors.NewValidationError("buyer", "buyer must not be nil", nil)
	}

	title := fmt.Sprintf("%s sold", b.Product)
	text := fmt.Sprintf("Sold one %s to %s for $%.2f.",
		b.Product, buyer.Username, b.Price)
	post := b.PublishPost(title, text)

	if err := buyer.LikePost(post); err != nil {
		return nil, err
	}
	return post, nil
}
