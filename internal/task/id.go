package task

import "github.com/google/uuid"

// IDPrefix tags generated ids so they are recognisable in output and logs.
const IDPrefix = "todo-"

// NewID returns a fresh task identifier.
func NewID() string {
	return IDPrefix + uuid.New().String()
}
