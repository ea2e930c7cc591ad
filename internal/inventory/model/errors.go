package model

import "errors"

var (
	ErrEmptyCatalog     = errors.New("catalog has no products")
	ErrDuplicateProduct = errors.New("duplicate product name")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrInvalidQuantity  = errors.New("requested quantity must not be negative")
	ErrUnknownBackend   = errors.New("unknown cache backend")
)
