package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Blog is a single blog-list entry stored in MongoDB. User references
// the owner, set once at creation and never changed by updates.
type Blog struct {
	ID     primitive.ObjectID `json:"id"               bson:"_id,omitempty"`
	Title  string             `json:"title"            bson:"title"`
	Author string             `json:"author,omitempty" bson:"author,omitempty"`
	URL    string             `json:"url"              bson:"url"`
	Likes  int                `json:"likes"            bson:"likes"`
	User   primitive.ObjectID `json:"user"             bson:"user"`
}

// BlogOwner is the owner projection attached to listed blogs.
type BlogOwner struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Name     string             `json:"name"`
}

// BlogWithOwner is a Blog with its owner resolved, as returned by
// GET /api/blogs.
type BlogWithOwner struct {
	ID     primitive.ObjectID `json:"id"`
	Title  string             `json:"title"`
	Author string             `json:"author,omitempty"`
	URL    string             `json:"url"`
	Likes  int                `json:"likes"`
	User   BlogOwner          `json:"user"`
}

// BlogSummary is the blog projection embedded in user listings.
type BlogSummary struct {
	ID     primitive.ObjectID `json:"id"`
	Title  string             `json:"title"`
	Author string             `json:"author,omitempty"`
	URL    string             `json:"url"`
}

// CreateBlogRequest is the JSON body for POST /api/blogs.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogRequest is the JSON body for PUT /api/blogs/{id}. All
// fields are optional; absent fields are left untouched.
type UpdateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}
