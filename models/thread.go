package models

import "time"

// Thread is a discussion topic started by an account.
type Thread struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedBy int64     `json:"created_by"`
	CreatedOn time.Time `json:"created_on"`
}

// TableName returns the name of the database table associated with Thread.
func (t Thread) TableName() string {
	return "threads"
}

// ThreadPage selects a window of threads ordered newest first.
type ThreadPage struct {
	Limit  uint64
	Offset uint64
}
