package models

import "time"

// Todo is a single to-do item. UserID and Username are stamped from the
// caller identity at creation and never change afterwards.
type Todo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Note is a free-form text record with the same ownership fields as Todo.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// TodoPatch is a partial update. Nil means "field not supplied"; only
// supplied fields overwrite the stored record. Ownership fields cannot be
// expressed here, so a patch can never reassign a record to another owner.
type TodoPatch struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// NotePatch is the partial-update shape for notes.
type NotePatch struct {
	Content *string `json:"content"`
}
