package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post stored in MongoDB. Comments live inside the
// post document so append/remove can use atomic array update operators.
type Post struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	Text       string             `json:"text" bson:"text"`
	ImageURL   string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Tags       []string           `json:"tags" bson:"tags"`
	ViewsCount int64              `json:"viewsCount" bson:"viewsCount"`
	UserID     primitive.ObjectID `json:"-" bson:"user"`
	User       *User              `json:"user,omitempty" bson:"-"` // resolved from the users collection on read
	Comments   []Comment          `json:"comments" bson:"comments"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Comment is an embedded subdocument of Post. It has no independent
// lifecycle: it is created, mutated and destroyed only through its parent.
type Comment struct {
	ID      string             `json:"id" bson:"_id"`
	Text    string             `json:"text" bson:"text"`
	Created time.Time          `json:"created" bson:"created"`
	UserID  primitive.ObjectID `json:"-" bson:"user"`
	User    *User              `json:"user,omitempty" bson:"-"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required,min=3"`
	Text     string   `json:"text" validate:"required,min=3"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title    string   `json:"title" validate:"required,min=3"`
	Text     string   `json:"text" validate:"required,min=3"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// CreateCommentRequest defines the request body for adding a comment to a post
type CreateCommentRequest struct {
	PostID string `json:"id" validate:"required"`
	Text   string `json:"text" validate:"required,min=1"`
}

// DeleteCommentRequest carries the comment id to pull from a post
type DeleteCommentRequest struct {
	CommentID string `json:"id" validate:"required"`
}

// PostsByCommentRequest carries the comment id to look posts up by
type PostsByCommentRequest struct {
	CommentID string `json:"id" validate:"required"`
}
