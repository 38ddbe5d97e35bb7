// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment document referencing its post and author by id.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Post      primitive.ObjectID `bson:"post" json:"post"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
