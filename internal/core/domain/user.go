package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// User models an account of the planner. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID              int64  `json:"id" bson:"_id"`
	Username        string `json:"username" bson:"username"`
	PasswordHash    string `json:"-" bson:"password_hash"`
	FullName        string `json:"fullName" bson:"full_name"`
	CurrentLocation string `json:"currentLocation" bson:"current_location,omitempty"`
	ProfileImage    string `json:"profileImage" bson:"profile_image,omitempty"`
}
