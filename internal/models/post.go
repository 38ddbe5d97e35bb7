// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a post document. Likes holds user ids, Comments holds
// comment ids in creation order.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID   `bson:"user" json:"user"`
	Images    []string             `bson:"images" json:"images"`
	Caption   string               `bson:"caption,omitempty" json:"caption,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments  []primitive.ObjectID `bson:"comments" json:"comments"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// PostDetail is a post enriched with its owner's public profile, returned
// when a post is created.
type PostDetail struct {
	Post
	Owner UserSummary `json:"owner"`
}

// PostPreview is the trimmed projection used by the profile preview grid.
type PostPreview struct {
	ID       primitive.ObjectID   `bson:"_id" json:"id"`
	Images   []string             `bson:"images" json:"images"`
	Likes    []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments []primitive.ObjectID `bson:"comments" json:"comments"`
}

// FeedComment is a comment enriched with its author's username for feed views.
type FeedComment struct {
	ID        primitive.ObjectID `json:"id"`
	Comment   string             `json:"comment"`
	CreatedAt time.Time          `json:"createdAt"`
	User      FeedCommentAuthor  `json:"user"`
}

// FeedCommentAuthor identifies the author of a feed comment.
type FeedCommentAuthor struct {
	Username string `json:"username"`
}

// FeedPost is a fully enriched post as rendered in the home feed: owner
// summary, liker summaries, and the most recent comments.
type FeedPost struct {
	ID       primitive.ObjectID `json:"id"`
	User     UserSummary        `json:"user"`
	Images   []string           `json:"images"`
	Caption  string             `json:"caption,omitempty"`
	Likes    []UserSummary      `json:"likes"`
	Comments []FeedComment      `json:"comments"`
}

// ExplorePost is the projection served by the explore feed.
type ExplorePost struct {
	ID       primitive.ObjectID   `bson:"_id" json:"id"`
	User     primitive.ObjectID   `bson:"user" json:"user"`
	Images   []string             `bson:"images" json:"images"`
	Caption  string               `bson:"caption,omitempty" json:"caption,omitempty"`
	Likes    []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments []primitive.ObjectID `bson:"comments" json:"comments"`
}
