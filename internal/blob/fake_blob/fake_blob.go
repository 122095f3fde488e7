package fake_blob

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob"
)

// FakeBlob is an in-memory blob.Store for tests. Any of the Fail* switches
// forces the matching operation to return an error.
type FakeBlob struct {
	mu      sync.Mutex
	objects []blob.Object

	FailList   bool
	FailSign   bool
	FailDelete bool
}

func New(objects ...blob.Object) *FakeBlob {
	return &FakeBlob{objects: objects}
}

func (f *FakeBlob) ListObjects(ctx context.Context) ([]blob.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailList {
		return nil, errors.New("fake blob: list failed")
	}
	out := make([]blob.Object, len(f.objects))
	copy(out, f.objects)
	return out, nil
}

func (f *FakeBlob) IssueWriteURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSign {
		return "", errors.New("fake blob: sign failed")
	}
	return fmt.Sprintf("https://blobs.example.com/upload/%s?sig=fake&ttl=%d", key, int(ttl.Seconds())), nil
}

func (f *FakeBlob) ObjectURL(key string) string {
	return "https://blobs.example.com/" + key
}

func (f *FakeBlob) DeleteObject(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailDelete {
		return errors.New("fake blob: delete failed")
	}
	for i, obj := range f.objects {
		if obj.Key == key {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			return nil
		}
	}
	return nil
}

// Keys returns the keys currently held, in insertion order.
func (f *FakeBlob) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.objects))
	for _, obj := range f.objects {
		keys = append(keys, obj.Key)
	}
	return keys
}
