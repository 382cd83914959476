package model

import "github.com/google/uuid"

// ItemID identifies one rendered todo entry for as long as it lives.
type ItemID string

// NewItemID returns a fresh random identifier.
func NewItemID() ItemID { return ItemID(uuid.NewString()) }

// Item is the domain model for a todo entry.
// There is no update operation: an item is created by add and gone after delete.
type Item struct {
	ID    ItemID `json:"id"`
	Title string `json:"title"`
}
