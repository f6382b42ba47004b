package services

import "errors"

var (
	// ErrDishNotFound is returned when no dish matches the requested name
	ErrDishNotFound = errors.New("dish not found")
	// ErrDishExists is returned when adding a dish whose name is taken
	ErrDishExists = errors.New("dish already exists")
	// ErrIngredientNotFound is returned when no ingredient matches the requested name
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrStoreRejected wraps the store error of a raw query that could not run
	ErrStoreRejected = errors.New("store rejected query")
)
