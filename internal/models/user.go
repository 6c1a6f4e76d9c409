package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account document in MongoDB. Blogs holds references to
// the blogs this user owns, appended on each create.
type User struct {
	ID           primitive.ObjectID   `json:"id"       bson:"_id,omitempty"`
	Username     string               `json:"username" bson:"username"`
	Name         string               `json:"name"     bson:"name"`
	PasswordHash string               `json:"-"        bson:"passwordHash"` // never serialize
	Blogs        []primitive.ObjectID `json:"blogs"    bson:"blogs"`
}

// UserWithBlogs is a User with its blog references resolved, as
// returned by GET /api/users.
type UserWithBlogs struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Name     string             `json:"name"`
	Blogs    []BlogSummary      `json:"blogs"`
}

// RegisterRequest is the JSON body for POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned on a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
