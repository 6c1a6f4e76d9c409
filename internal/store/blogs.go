package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okoskela/bloglist-server/internal/models"
)

const blogsCollection = "blogs"

// BlogStore handles blog CRUD in MongoDB.
type BlogStore struct {
	col *mongo.Collection
}

func NewBlogStore(db *mongo.Database) *BlogStore {
	return &BlogStore{col: db.Collection(blogsCollection)}
}

// ListBlogs returns all blogs.
func (s *BlogStore) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// InsertBlog persists a new blog and fills in the store-assigned id.
func (s *BlogStore) InsertBlog(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	res, err := s.col.InsertOne(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	blog.ID = res.InsertedID.(primitive.ObjectID)
	return blog, nil
}

// GetBlogByID returns the blog, or (nil, nil) when the id is malformed
// or does not resolve.
func (s *BlogStore) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var blog models.Blog
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateBlog applies the non-nil fields of req to the blog and returns
// the updated document, or (nil, nil) when the id does not resolve.
// The owner reference is never part of the update.
func (s *BlogStore) UpdateBlog(ctx context.Context, id string, req models.UpdateBlogRequest) (*models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Author != nil {
		set["author"] = *req.Author
	}
	if req.URL != nil {
		set["url"] = *req.URL
	}
	if req.Likes != nil {
		set["likes"] = *req.Likes
	}
	if len(set) == 0 {
		return s.GetBlogByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog models.Blog
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog removes the blog. Deleting an absent blog is not an error.
func (s *BlogStore) DeleteBlog(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
