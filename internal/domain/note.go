package domain

import "time"

type Note struct {
	NoteID    string    `json:"id" dynamodbav:"note_id"`
	UserID    string    `json:"userId" dynamodbav:"user_id"`
	Title     string    `json:"title" dynamodbav:"title"`
	Content   string    `json:"content" dynamodbav:"content"`
	Tags      []string  `json:"tags" dynamodbav:"tags"`
	IsPinned  bool      `json:"isPinned" dynamodbav:"is_pinned"`
	CreatedAt time.Time `json:"createdOn" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updatedOn" dynamodbav:"updated_at"`
}
