package models

import "time"

type User struct {
	UserID    string    `json:"userid" bson:"userid"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Role      string    `json:"role" bson:"role"` // "vendor" or "seller"
	Location  string    `json:"location" bson:"location"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	LastLogin time.Time `json:"last_login" bson:"last_login"`
}

// UserProfile is the editable profile record, upserted by userId.
type UserProfile struct {
	UserID     string `json:"userId" bson:"userId"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone" bson:"phone"`
	Location   string `json:"location" bson:"location"`
	ProfilePic string `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
}
