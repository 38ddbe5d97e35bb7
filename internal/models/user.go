// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user account document.
//
// Relationship sets (Followers/Following/Likes/Saved) hold ids only; the
// referenced documents live in their own collections and consistency between
// the two sides of an edge is maintained by the service layer, not the store.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Username   string               `bson:"username" json:"username"`
	Email      string               `bson:"email" json:"email"`
	Password   string               `bson:"password" json:"-"`
	ProfilePic string               `bson:"profilePic" json:"profilePic"`
	Biography  string               `bson:"biography" json:"biography"`
	Posts      []primitive.ObjectID `bson:"posts" json:"posts"`
	Followers  []primitive.ObjectID `bson:"followers" json:"followers"`
	Following  []primitive.ObjectID `bson:"following" json:"following"`
	Likes      []primitive.ObjectID `bson:"likes" json:"likes"`
	Saved      []primitive.ObjectID `bson:"saved" json:"saved"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
}

// UserSummary is the public projection of a user embedded in feed responses.
type UserSummary struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Username   string             `bson:"username" json:"username"`
	ProfilePic string             `bson:"profilePic" json:"profilePic"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		ProfilePic: u.ProfilePic,
	}
}

// Profile holds the editable profile fields returned by profile updates.
type Profile struct {
	ProfilePic string `json:"profilePic"`
	Name       string `json:"name"`
	Biography  string `json:"biography"`
}
