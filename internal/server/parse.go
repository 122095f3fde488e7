package server

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/types"
)

const (
	MAX_TITLE_LEN       = 200
	MAX_DESCRIPTION_LEN = 2000
)

func validateTitle(title string) error {
	if title == "" {
		return errors.New("title is required")
	}
	if len(title) > MAX_TITLE_LEN {
		return errors.New("title is too long")
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return errors.New("category is required")
	}
	if !types.ValidCategory(category) {
		return types.ErrInvalidCategory{Category: category}
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len(*description) > MAX_DESCRIPTION_LEN {
		return errors.New("description is too long")
	}
	return nil
}

func validateDraft(draft types.PhotoDraft) error {
	if err := validateTitle(draft.Title); err != nil {
		return err
	}
	if err := validateCategory(draft.Category); err != nil {
		return err
	}
	if err := validateDescription(draft.Description); err != nil {
		return err
	}
	if draft.BlobKey == "" {
		return errors.New("blobKey is required")
	}
	if draft.URL == "" {
		return errors.New("url is required")
	}
	if u, err := url.Parse(draft.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url is not absolute: %q", draft.URL)
	}
	return nil
}

func validateUploadRequest(req types.UploadRequest) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if err := validateCategory(req.Category); err != nil {
		return err
	}
	return validateDescription(req.Description)
}
