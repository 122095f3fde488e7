package types

import (
	"fmt"
)

// ErrPhotoNotExists is an error when a photo does not exist in the catalog
type ErrPhotoNotExists struct {
	ID int
}

func (e ErrPhotoNotExists) Error() string {
	return fmt.Sprintf("No photo found ID %v", e.ID)
}

// ErrInvalidCategory is an error when a category value is outside the fixed set
type ErrInvalidCategory struct {
	Category string
}

func (e ErrInvalidCategory) Error() string {
	return fmt.Sprintf("Invalid category %q", e.Category)
}
