package blob_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/LingarajMishra/ModelPortfolioWebsite/internal/blob"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	for _, row := range []struct {
		title string
		want  string
	}{
		{title: "Sunset", want: "1700000000000-sunset"},
		{title: "Evening Light", want: "1700000000000-evening-light"},
		{title: "  Studio   Session ", want: "1700000000000-studio-session"},
		{title: "MIXED Case Title", want: "1700000000000-mixed-case-title"},
	} {
		t.Run(row.title, func(t *testing.T) {
			require.Equal(t, row.want, blob.NewKey(row.title, now))
		})
	}
}

func TestTitleFromKey(t *testing.T) {
	for _, row := range []struct {
		key  string
		want string
	}{
		{key: "1700000000000-evening-light", want: "evening light"},
		{key: "1700000001000-studio", want: "studio"},
		{key: "justakey", want: "justakey"},
		{key: "1700000000000-", want: "1700000000000-"},
	} {
		t.Run(row.key, func(t *testing.T) {
			require.Equal(t, row.want, blob.TitleFromKey(row.key))
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	now := time.Now()
	key := blob.NewKey("Evening Light", now)
	require.True(t, strings.HasPrefix(key, fmt.Sprintf("%d-", now.UnixMilli())))
	require.Equal(t, "evening light", blob.TitleFromKey(key))
}
