package repository

import (
	"context"
	"errors"

	"glimpse/internal/database"
	"glimpse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	AddLike(ctx context.Context, postID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error
	AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error
	RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) error

	ListPreviewsByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.PostPreview, error)
	LatestByUser(ctx context.Context, userID primitive.ObjectID) (*models.Post, error)
	ListExcludingOwners(ctx context.Context, owners []primitive.ObjectID) ([]models.ExplorePost, error)
}

type postRepository struct {
	col *mongo.Collection
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{col: db.Collection(database.PostsCollection)}
}

func (r *postRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	return r.update(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (r *postRepository) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	return r.update(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (r *postRepository) AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	// $push keeps comment ids in creation order.
	return r.update(ctx, postID, bson.M{"$push": bson.M{"comments": commentID}})
}

func (r *postRepository) RemoveComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	return r.update(ctx, postID, bson.M{"$pull": bson.M{"comments": commentID}})
}

func (r *postRepository) ListPreviewsByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.PostPreview, error) {
	opts := options.Find().
		SetProjection(bson.M{"images": 1, "likes": 1, "comments": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	previews := []models.PostPreview{}
	if err := cursor.All(ctx, &previews); err != nil {
		return nil, models.NewInternalError(err)
	}
	return previews, nil
}

func (r *postRepository) LatestByUser(ctx context.Context, userID primitive.ObjectID) (*models.Post, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var post models.Post
	if err := r.col.FindOne(ctx, bson.M{"user": userID}, opts).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListExcludingOwners(ctx context.Context, owners []primitive.ObjectID) ([]models.ExplorePost, error) {
	opts := options.Find().
		SetProjection(bson.M{"images": 1, "likes": 1, "comments": 1, "caption": 1, "user": 1})

	cursor, err := r.col.Find(ctx, bson.M{"user": bson.M{"$nin": owners}}, opts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	posts := []models.ExplorePost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
