package services

import (
	"testing"

	"restaurant-directory-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantStoreCreateRejectsDuplicateEmail(t *testing.T) {
	store := NewRestaurantStore(testDB(t))

	first := models.Restaurant{OwnerID: 1, Name: "Cafe A", Email: "a@x.com"}
	require.NoError(t, store.Create(&first))

	second := models.Restaurant{OwnerID: 2, Name: "Cafe B", Email: "a@x.com"}
	err := store.Create(&second)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	all, err := store.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRestaurantStoreGetByIDNotFound(t *testing.T) {
	store := NewRestaurantStore(testDB(t))

	_, err := store.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantStoreListByOwner(t *testing.T) {
	store := NewRestaurantStore(testDB(t))

	require.NoError(t, store.Create(&models.Restaurant{OwnerID: 1, Name: "Cafe A", Email: "a@x.com"}))
	require.NoError(t, store.Create(&models.Restaurant{OwnerID: 2, Name: "Cafe B", Email: "b@x.com"}))
	require.NoError(t, store.Create(&models.Restaurant{OwnerID: 1, Name: "Cafe C", Email: "c@x.com"}))

	mine, err := store.ListByOwner(1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Cafe A", mine[0].Name)
	assert.Equal(t, "Cafe C", mine[1].Name)
}

func TestRestaurantStoreSaveDetectsEmailClash(t *testing.T) {
	store := NewRestaurantStore(testDB(t))

	require.NoError(t, store.Create(&models.Restaurant{OwnerID: 1, Name: "Cafe A", Email: "a@x.com"}))
	b := models.Restaurant{OwnerID: 1, Name: "Cafe B", Email: "b@x.com"}
	require.NoError(t, store.Create(&b))

	b.Email = "a@x.com"
	assert.ErrorIs(t, store.Save(&b), ErrDuplicateEmail)
}
