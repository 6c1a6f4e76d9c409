package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/okoskela/bloglist-server/internal/apperr"
	"github.com/okoskela/bloglist-server/internal/models"
)

const usersCollection = "users"

// UserStore handles user CRUD in MongoDB.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(usersCollection)}
}

// CreateUser inserts a new user. A violated unique constraint on
// username surfaces as a DuplicateKey domain error, never a silent
// overwrite.
func (s *UserStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Blogs == nil {
		user.Blogs = []primitive.ObjectID{}
	}
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindDuplicateKey, "username must be unique", err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// GetUserByUsername returns the user, or (nil, nil) when no user has
// that username.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID returns the user, or (nil, nil) when the id is malformed
// or no user has it. Absence is a normal state for token verification:
// the user may have been deleted after the token was issued.
func (s *UserStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users.
func (s *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AppendBlog records a newly created blog on its owner. The blogs list
// is append-only; deletes do not rewrite it.
func (s *UserStore) AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"blogs": blogID}},
	)
	if err != nil {
		return fmt.Errorf("append blog ref: %w", err)
	}
	return nil
}
