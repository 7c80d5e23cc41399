package services

import (
	"errors"

	"restaurant-directory-api/models"

	"gorm.io/gorm"
)

// RestaurantStore owns the canonical restaurant records. It is persistence
// only; ownership checks live in RestaurantService.
type RestaurantStore struct {
	db *gorm.DB
}

func NewRestaurantStore(db *gorm.DB) *RestaurantStore {
	return &RestaurantStore{db: db}
}

// Create persists a new restaurant. The email pre-check gives a clean
// domain error; the unique index backstops it under concurrency.
func (s *RestaurantStore) Create(r *models.Restaurant) error {
	var existing models.Restaurant
	if err := s.db.Where("email = ?", r.Email).First(&existing).Error; err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.db.Create(r).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *RestaurantStore) GetByID(id uint) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *RestaurantStore) ListAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RestaurantStore) ListByOwner(ownerID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Where("owner_id = ?", ownerID).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Save writes back a mutated restaurant record as a single row update.
func (s *RestaurantStore) Save(r *models.Restaurant) error {
	if err := s.db.Save(r).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Delete removes the restaurant record. The associated menu is left in
// place; see DESIGN.md.
func (s *RestaurantStore) Delete(r *models.Restaurant) error {
	return s.db.Delete(r).Error
}
