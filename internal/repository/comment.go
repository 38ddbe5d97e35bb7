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

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	ListRecentByPost(ctx context.Context, postID primitive.ObjectID, limit int) ([]models.Comment, error)
}

type commentRepository struct {
	col *mongo.Collection
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{col: db.Collection(database.CommentsCollection)}
}

func (r *commentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, comment); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteByPost removes every comment belonging to the post and returns the
// number deleted.
func (r *commentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"post": postID})
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return res.DeletedCount, nil
}

func (r *commentRepository) ListRecentByPost(ctx context.Context, postID primitive.ObjectID, limit int) ([]models.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"post": postID}, opts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
