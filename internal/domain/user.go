package domain

import "time"

type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	UserName     string    `json:"userName" dynamodbav:"user_name"`
	Email        string    `json:"email" dynamodbav:"email"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Verified     bool      `json:"verified" dynamodbav:"verified"`
	CreatedAt    time.Time `json:"createdOn" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updatedOn" dynamodbav:"updated_at"`
}
