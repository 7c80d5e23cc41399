package models

import (
	"time"

	"gorm.io/datatypes"
)

// MenuItem is a value record embedded in a Menu's items column. Items keep
// the id assigned when they were appended; updates and removals locate them
// by that id, never by position.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl"`
}

// Menu is the single menu document for one restaurant. The unique index on
// RestaurantID is what keeps get-or-create from producing two menus for the
// same restaurant. Items live in one JSON column so the whole ordered
// sequence is read and written as a single row.
type Menu struct {
	ID           uint                          `json:"id" gorm:"primaryKey"`
	RestaurantID uint                          `json:"restaurant_id" gorm:"uniqueIndex;not null"`
	Items        datatypes.JSONSlice[MenuItem] `json:"items"`
	CreatedAt    time.Time                     `json:"created_at"`
	UpdatedAt    time.Time                     `json:"updated_at"`
}
