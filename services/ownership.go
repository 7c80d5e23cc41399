package services

import "restaurant-directory-api/models"

// CanModify is the single ownership decision for every mutating operation on
// a restaurant or its menu. actorID 0 means unauthenticated. The owner
// reference is written once at creation and never updated, so this
// comparison is the whole authorization model.
func CanModify(restaurant *models.Restaurant, actorID uint) bool {
	return actorID != 0 && restaurant.OwnerID == actorID
}
