package dish

import "errors"

var (
	ErrInvalidDish  = errors.New("invalid dish")
	ErrDishNotFound = errors.New("dish not found")
)
