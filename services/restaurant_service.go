package services

import (
	"context"
	"strings"

	"restaurant-directory-api/models"

	"go.uber.org/zap"
)

type CreateRestaurantInput struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
	Description string
}

// UpdateRestaurantInput uses pointer fields for presence-based partial
// updates: nil keeps the stored value. The owner reference is never part of
// an update.
type UpdateRestaurantInput struct {
	Name        *string
	Address     *string
	PhoneNumber *string
	Email       *string
	Description *string
}

type AddMenuItemInput struct {
	Name        string
	Description string
	Price       float64
}

// RestaurantDetail is the read view joining a restaurant with its menu
// items. Items is always present, empty when the restaurant has no menu
// yet.
type RestaurantDetail struct {
	models.Restaurant
	Items []models.MenuItem `json:"items"`
}

// RestaurantService orchestrates the stores, the ownership guard and the
// image uploader into the public operations. Every mutation resolves the
// restaurant, authorizes the actor, performs any image upload, and only
// then writes — an upload failure aborts the operation before anything is
// persisted.
type RestaurantService struct {
	restaurants *RestaurantStore
	menus       *MenuStore
	uploader    ImageUploader
	log         *zap.SugaredLogger
}

func NewRestaurantService(restaurants *RestaurantStore, menus *MenuStore, uploader ImageUploader, log *zap.SugaredLogger) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, menus: menus, uploader: uploader, log: log}
}

// CreateRestaurant persists a new restaurant owned by the acting user.
func (svc *RestaurantService) CreateRestaurant(in CreateRestaurantInput, actorID uint) (*models.Restaurant, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, ErrValidation
	}

	restaurant := models.Restaurant{
		OwnerID:     actorID,
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Description: in.Description,
	}
	if err := svc.restaurants.Create(&restaurant); err != nil {
		return nil, err
	}
	svc.log.Infow("restaurant created", "restaurant_id", restaurant.ID, "owner_id", actorID)
	return &restaurant, nil
}

func (svc *RestaurantService) GetRestaurants() ([]models.Restaurant, error) {
	return svc.restaurants.ListAll()
}

// GetRestaurantDetail returns the restaurant with its menu items embedded.
func (svc *RestaurantService) GetRestaurantDetail(id uint) (*RestaurantDetail, error) {
	restaurant, err := svc.restaurants.GetByID(id)
	if err != nil {
		return nil, err
	}
	items, err := svc.GetMenuByRestaurant(id)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: *restaurant, Items: items}, nil
}

// GetMyRestaurants lists the actor's restaurants, each joined with its menu
// items.
func (svc *RestaurantService) GetMyRestaurants(actorID uint) ([]RestaurantDetail, error) {
	restaurants, err := svc.restaurants.ListByOwner(actorID)
	if err != nil {
		return nil, err
	}
	details := make([]RestaurantDetail, 0, len(restaurants))
	for _, r := range restaurants {
		items, err := svc.GetMenuByRestaurant(r.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, RestaurantDetail{Restaurant: r, Items: items})
	}
	return details, nil
}

// UpdateRestaurant applies the provided fields to the restaurant. Ownership
// is checked only after the restaurant resolves.
func (svc *RestaurantService) UpdateRestaurant(id uint, in UpdateRestaurantInput, actorID uint) (*models.Restaurant, error) {
	restaurant, err := svc.restaurants.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanModify(restaurant, actorID) {
		return nil, ErrUnauthorized
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, ErrValidation
		}
		restaurant.Name = *in.Name
	}
	if in.Address != nil {
		restaurant.Address = *in.Address
	}
	if in.PhoneNumber != nil {
		restaurant.PhoneNumber = *in.PhoneNumber
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return nil, ErrValidation
		}
		restaurant.Email = *in.Email
	}
	if in.Description != nil {
		restaurant.Description = *in.Description
	}

	if err := svc.restaurants.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// DeleteRestaurant removes the restaurant record. Its menu, if any, is left
// behind; that gap is deliberate.
func (svc *RestaurantService) DeleteRestaurant(id, actorID uint) error {
	restaurant, err := svc.restaurants.GetByID(id)
	if err != nil {
		return err
	}
	if !CanModify(restaurant, actorID) {
		return ErrUnauthorized
	}
	if err := svc.restaurants.Delete(restaurant); err != nil {
		return err
	}
	svc.log.Infow("restaurant deleted", "restaurant_id", id, "owner_id", actorID)
	return nil
}

// AddMenuItem appends a new item to the restaurant's menu, creating the menu
// on first use. When an image is supplied it is validated and uploaded
// before the menu row is touched, so a failed upload never leaves a
// half-written item.
func (svc *RestaurantService) AddMenuItem(ctx context.Context, restaurantID uint, in AddMenuItemInput, image *ImageUpload, actorID uint) (*models.Menu, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price < 0 {
		return nil, ErrValidation
	}
	restaurant, err := svc.restaurants.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if !CanModify(restaurant, actorID) {
		return nil, ErrUnauthorized
	}

	item := models.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}
	if image != nil {
		url, err := svc.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		item.ImageURL = &url
	}

	menu, err := svc.menus.AppendItem(restaurantID, item)
	if err != nil {
		return nil, err
	}
	svc.log.Infow("menu item added", "restaurant_id", restaurantID, "item", in.Name)
	return menu, nil
}

// UpdateMenuItem merges the patch over an existing item. The item must
// resolve before any upload happens, and the upload must succeed before the
// menu row is written.
func (svc *RestaurantService) UpdateMenuItem(ctx context.Context, restaurantID uint, itemID string, patch MenuItemPatch, image *ImageUpload, actorID uint) (*models.Menu, error) {
	restaurant, err := svc.restaurants.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if !CanModify(restaurant, actorID) {
		return nil, ErrUnauthorized
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrValidation
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, ErrValidation
	}

	menu, err := svc.menus.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}
	if !menuHasItem(menu.Items, itemID) {
		return nil, ErrItemNotFound
	}

	if image != nil {
		url, err := svc.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		patch.ImageURL = &url
	}

	return svc.menus.UpdateItem(restaurantID, itemID, patch)
}

// RemoveMenuItem deletes the item from the menu sequence. A missing menu is
// a NotFound; a missing item id in an existing menu is a no-op.
func (svc *RestaurantService) RemoveMenuItem(restaurantID uint, itemID string, actorID uint) (*models.Menu, error) {
	restaurant, err := svc.restaurants.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if !CanModify(restaurant, actorID) {
		return nil, ErrUnauthorized
	}
	return svc.menus.RemoveItem(restaurantID, itemID)
}

// GetMenuByRestaurant returns the restaurant's items, defaulting to an
// empty sequence when no menu exists. Callers can always render a list.
func (svc *RestaurantService) GetMenuByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	menu, err := svc.menus.FindByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if menu == nil || menu.Items == nil {
		return []models.MenuItem{}, nil
	}
	return menu.Items, nil
}

func (svc *RestaurantService) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	if err := image.Validate(); err != nil {
		return "", err
	}
	url, err := svc.uploader.Upload(ctx, image.Data, image.FileName, image.ContentType)
	if err != nil {
		svc.log.Errorw("image upload failed", "file", image.FileName, "error", err)
		return "", err
	}
	return url, nil
}

func menuHasItem(items []models.MenuItem, itemID string) bool {
	for i := range items {
		if items[i].ID == itemID {
			return true
		}
	}
	return false
}
