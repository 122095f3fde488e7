package blob

import (
	"context"
	"time"
)

// Object is one stored blob as seen through an enumeration.
type Object struct {
	Key string
	URL string
}

// Store is the capability surface we need from an object store. The bucket
// (container) is bound at construction time.
type Store interface {
	// ListObjects enumerates every object in the bound container.
	ListObjects(ctx context.Context) ([]Object, error)

	// IssueWriteURL returns a signed URL that allows a single client to PUT
	// the object bytes for key until the ttl expires.
	IssueWriteURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// ObjectURL returns the public read location for key.
	ObjectURL(key string) string

	// DeleteObject removes the object for key.
	DeleteObject(ctx context.Context, key string) error
}

// WriteURLTTL is how long an issued upload capability stays valid.
const WriteURLTTL = 15 * time.Minute
