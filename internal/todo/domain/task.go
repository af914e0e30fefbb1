package domain

import "time"

// Task is a single to-do item. Every task has exactly one owner and every
// store access is scoped by that owner id.
type Task struct {
	ID        string
	OwnerID   string
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
