package entity

import (
	"time"
)

// Review is embedded in its Product document; one review per user per product.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Name      string    `json:"name" firestore:"name"`
	Avatar    string    `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Slug        string   `json:"slug" firestore:"slug"`
	Image       string   `json:"img" firestore:"img"`
	Images      []string `json:"imgs" firestore:"imgs"`
	Country     string   `json:"country" firestore:"country"`
	Category    string   `json:"category" firestore:"category"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`

	CountInStock int `json:"count_in_stock" firestore:"countInStock"`
	Sold         int `json:"sold" firestore:"sold"`

	// Rating and NumReviews are derived from Reviews and recomputed on every
	// review mutation; they are never patched independently.
	Rating     float64  `json:"rating" firestore:"rating"`
	NumReviews int      `json:"num_reviews" firestore:"numReviews"`
	Reviews    []Review `json:"reviews" firestore:"reviews"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ReviewByUser returns the review left by userID, if any.
func (p *Product) ReviewByUser(userID string) *Review {
	for i := range p.Reviews {
		if p.Reviews[i].UserID == userID {
			return &p.Reviews[i]
		}
	}
	return nil
}

// ReviewByID returns the review with the given id, if any.
func (p *Product) ReviewByID(reviewID string) *Review {
	for i := range p.Reviews {
		if p.Reviews[i].ID == reviewID {
			return &p.Reviews[i]
		}
	}
	return nil
}
