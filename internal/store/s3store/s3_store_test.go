package s3store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectURLRoundTrip(t *testing.T) {
	u := objectURL("librarian-data", "us-east-1", "memex/ads/ads-20260505-080000123456/sub/b.txt")
	assert.Equal(t, "https://librarian-data.s3.us-east-1.amazonaws.com/memex/ads/ads-20260505-080000123456/sub/b.txt", u)

	bucket, key, err := parseObjectURL(u)
	require.NoError(t, err)
	assert.Equal(t, "librarian-data", bucket)
	assert.Equal(t, "memex/ads/ads-20260505-080000123456/sub/b.txt", key)
}

func TestParseObjectURLRejectsOtherHosts(t *testing.T) {
	for _, bad := range []string{
		"https://example.com/some/file",
		"https://bucket.s3.us-east-1.amazonaws.com/",
		"not a url at all\x00",
	} {
		_, _, err := parseObjectURL(bad)
		assert.Error(t, err, bad)
	}
}
