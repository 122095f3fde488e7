package types

type (
	// Category is one of the fixed portfolio categories.
	Category string

	// Photo is a single catalog record. BlobKey is the storage-internal
	// object name backing the public URL and is never shown to end users.
	Photo struct {
		ID          int     `json:"id"`
		URL         string  `json:"url"`
		Title       string  `json:"title"`
		Category    string  `json:"category"`
		Description *string `json:"description"`
		BlobKey     string  `json:"blobKey"`
		Featured    bool    `json:"featured"`
	}

	// PhotoDraft is a Photo before the store has assigned an id.
	PhotoDraft struct {
		URL         string  `json:"url"`
		Title       string  `json:"title"`
		Category    string  `json:"category"`
		Description *string `json:"description"`
		BlobKey     string  `json:"blobKey"`
		Featured    bool    `json:"featured"`
	}

	UploadRequest struct {
		Title       string  `json:"title"`
		Category    string  `json:"category"`
		Description *string `json:"description"`
		Featured    bool    `json:"featured"`
	}

	UploadResponse struct {
		UploadURL string `json:"uploadUrl"`
		BlobKey   string `json:"blobKey"`
	}
)

const (
	CategoryPortrait   Category = "portrait"
	CategoryEditorial  Category = "editorial"
	CategoryCommercial Category = "commercial"
	CategoryRunway     Category = "runway"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryPortrait,
	CategoryEditorial,
	CategoryCommercial,
	CategoryRunway,
}

// ValidCategory reports whether s is one of the fixed category values.
// Matching is exact, no normalization.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}
