package entity

import (
	"time"
)

// Comment is embedded in its ForumPost document.
type Comment struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Name      string    `json:"name" firestore:"name"`
	Avatar    string    `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Text      string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ForumPost keeps Likes and Dislikes as user id sets. A user id appears in at
// most one of the two; LikesCount/DislikesCount always equal the set sizes.
type ForumPost struct {
	ID     string   `json:"id" firestore:"id"`
	UserID string   `json:"user_id" firestore:"userId"`
	Title  string   `json:"title" firestore:"title"`
	Text   string   `json:"text" firestore:"text"`
	Image  string   `json:"img,omitempty" firestore:"img,omitempty"`
	Images []string `json:"imgs" firestore:"imgs"`

	Comments []Comment `json:"comments" firestore:"comments"`

	Likes         []string `json:"likes" firestore:"likes"`
	Dislikes      []string `json:"dislikes" firestore:"dislikes"`
	LikesCount    int      `json:"likes_count" firestore:"likesCount"`
	DislikesCount int      `json:"dislikes_count" firestore:"dislikesCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// CommentByID returns the embedded comment with the given id, if any.
func (p *ForumPost) CommentByID(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
