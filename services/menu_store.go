package services

import (
	"errors"

	"restaurant-directory-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemPatch carries a presence-based partial update: nil keeps the
// stored value, non-nil sets it, including explicit empty strings and zero
// prices.
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}

// MenuStore owns the one-menu-per-restaurant documents. Every mutation is a
// read-modify-write of a single menu row; the items sequence is rewritten
// whole, so concurrent item mutations are last-write-wins at the sequence
// level.
type MenuStore struct {
	db *gorm.DB
}

func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{db: db}
}

// FindByRestaurant returns the menu, or (nil, nil) when the restaurant has
// none yet. Callers must treat absence and an empty items sequence as
// distinct states.
func (s *MenuStore) FindByRestaurant(restaurantID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.Where("restaurant_id = ?", restaurantID).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

// GetOrCreate returns the restaurant's menu, creating an empty one if
// missing. The unique index on restaurant_id arbitrates concurrent
// creators: the loser's insert fails and it re-reads the winner's row.
func (s *MenuStore) GetOrCreate(restaurantID uint) (*models.Menu, error) {
	menu, err := s.FindByRestaurant(restaurantID)
	if err != nil || menu != nil {
		return menu, err
	}

	fresh := models.Menu{RestaurantID: restaurantID, Items: []models.MenuItem{}}
	if err := s.db.Create(&fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.FindByRestaurant(restaurantID)
		}
		return nil, err
	}
	return &fresh, nil
}

// AppendItem adds an item to the end of the restaurant's menu, creating the
// menu on first use. The item id is assigned here and stays stable for the
// item's lifetime.
func (s *MenuStore) AppendItem(restaurantID uint, item models.MenuItem) (*models.Menu, error) {
	menu, err := s.GetOrCreate(restaurantID)
	if err != nil {
		return nil, err
	}

	item.ID = uuid.NewString()
	menu.Items = append(menu.Items, item)
	if err := s.db.Save(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

// UpdateItem merges patch over the item with the given id. Items are located
// by id, never by position, so updates stay stable across concurrent
// appends.
func (s *MenuStore) UpdateItem(restaurantID uint, itemID string, patch MenuItemPatch) (*models.Menu, error) {
	menu, err := s.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}

	idx := -1
	for i := range menu.Items {
		if menu.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	item := &menu.Items[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		item.ImageURL = patch.ImageURL
	}

	if err := s.db.Save(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

// RemoveItem deletes the item with the given id, keeping the remaining
// items' order and ids. Removing an id that is not present is not an error;
// only a missing menu is.
func (s *MenuStore) RemoveItem(restaurantID uint, itemID string) (*models.Menu, error) {
	menu, err := s.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}

	kept := menu.Items[:0:0]
	for _, item := range menu.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	menu.Items = kept

	if err := s.db.Save(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}
