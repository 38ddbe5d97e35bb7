// Package repository implements the data access layer over MongoDB.
package repository

import (
	"context"
	"errors"
	"regexp"

	"glimpse/internal/database"
	"glimpse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines persistence operations for users.
//
// The Add*/Remove* methods each write one side of a relationship edge; the
// service layer is responsible for calling both sides in the documented order.
type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id primitive.ObjectID, profile models.Profile) error

	AddPost(ctx context.Context, userID, postID primitive.ObjectID) error
	RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error

	AddFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error
	RemoveFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error
	AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error
	RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error

	AddLike(ctx context.Context, userID, postID primitive.ObjectID) error
	RemoveLike(ctx context.Context, userID, postID primitive.ObjectID) error
	AddSave(ctx context.Context, userID, postID primitive.ObjectID) error
	RemoveSave(ctx context.Context, userID, postID primitive.ObjectID) error

	ScrubPostRefs(ctx context.Context, postID primitive.ObjectID, likerIDs []primitive.ObjectID) error

	ListSuggestions(ctx context.Context, exclude []primitive.ObjectID, limit int) ([]models.UserSummary, error)
	ListSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error)
	Search(ctx context.Context, fields map[string]string) ([]models.UserSummary, error)
}

type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection(database.UsersCollection)}
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		// The unique indexes on username/email are the authority for
		// registration races; the handler pre-check is best effort.
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflictError("Username or email is already taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, profile models.Profile) error {
	update := bson.M{"$set": bson.M{
		"name":       profile.Name,
		"biography":  profile.Biography,
		"profilePic": profile.ProfilePic,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return models.NewInternalError(err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("User")
	}
	return nil
}

func (r *userRepository) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	// $push keeps creation order; posts is an append-only list.
	return r.update(ctx, userID, bson.M{"$push": bson.M{"posts": postID}})
}

func (r *userRepository) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"posts": postID}})
}

func (r *userRepository) AddFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"following": targetID}})
}

func (r *userRepository) RemoveFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"following": targetID}})
}

func (r *userRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (r *userRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (r *userRepository) AddLike(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"likes": postID}})
}

func (r *userRepository) RemoveLike(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"likes": postID}})
}

func (r *userRepository) AddSave(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"saved": postID}})
}

func (r *userRepository) RemoveSave(ctx context.Context, userID, postID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"saved": postID}})
}

// ScrubPostRefs removes the post id from every user that liked or saved it,
// in a single fan-out scan.
func (r *userRepository) ScrubPostRefs(ctx context.Context, postID primitive.ObjectID, likerIDs []primitive.ObjectID) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"_id": bson.M{"$in": likerIDs}},
		bson.M{"saved": postID},
	}}
	update := bson.M{"$pull": bson.M{"likes": postID, "saved": postID}}
	if _, err := r.col.UpdateMany(ctx, filter, update); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

var summaryProjection = bson.M{"name": 1, "username": 1, "profilePic": 1}

func (r *userRepository) ListSuggestions(ctx context.Context, exclude []primitive.ObjectID, limit int) ([]models.UserSummary, error) {
	opts := options.Find().
		SetProjection(summaryProjection).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$nin": exclude}}, opts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return decodeSummaries(ctx, cursor)
}

func (r *userRepository) ListSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error) {
	if len(ids) == 0 {
		return []models.UserSummary{}, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(summaryProjection))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return decodeSummaries(ctx, cursor)
}

// Search matches users where ANY given field contains its value,
// case-insensitively. Field names are restricted by the service layer.
func (r *userRepository) Search(ctx context.Context, fields map[string]string) ([]models.UserSummary, error) {
	predicates := bson.A{}
	for field, value := range fields {
		predicates = append(predicates, bson.M{
			field: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"},
		})
	}

	cursor, err := r.col.Find(ctx, bson.M{"$or": predicates},
		options.Find().SetProjection(summaryProjection))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return decodeSummaries(ctx, cursor)
}

func (r *userRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func decodeSummaries(ctx context.Context, cursor *mongo.Cursor) ([]models.UserSummary, error) {
	summaries := []models.UserSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, models.NewInternalError(err)
	}
	return summaries, nil
}
