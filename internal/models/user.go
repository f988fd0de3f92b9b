package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored account. Password holds the bcrypt hash and never leaves
// the server.
type User struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Username       string               `json:"Username" bson:"Username"`
	Password       string               `json:"-" bson:"Password"`
	Email          string               `json:"Email" bson:"Email"`
	Birth          *time.Time           `json:"Birth,omitempty" bson:"Birth,omitempty"`
	FavoriteMovies []primitive.ObjectID `json:"FavoriteMovies" bson:"FavoriteMovies"`
}

// UserUpdate is a partial profile change. Nil fields are left untouched.
// Password, when set, must already be hashed.
type UserUpdate struct {
	Username *string
	Password *string
	Email    *string
	Birth    *time.Time
}

// Empty reports whether no field is set.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil && u.Birth == nil
}

// Apply copies the set fields onto user.
func (u UserUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Birth != nil {
		b := *u.Birth
		user.Birth = &b
	}
}
