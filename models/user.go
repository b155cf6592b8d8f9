package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role value the store ever holds.
const RoleAdmin = "admin"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserInput is the body of POST /users and PUT /users. It has no role field,
// so registration and sign-in can never grant admin.
type UserInput struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
}

// AdminRequest is the body of PUT /users/admin.
type AdminRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AdminStatus is the response of GET /users/:email.
type AdminStatus struct {
	Admin bool `json:"admin"`
}
