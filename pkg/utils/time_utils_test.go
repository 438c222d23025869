package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnixSecondsPT(t *testing.T) {
	t.Run("round trips an epoch value through RFC3339", func(t *testing.T) {
		epoch := int64(1767225600) // 2026-01-01T00:00:00Z

		rendered := FormatRFC3339PT(FromUnixSecondsPT(epoch))

		parsed, err := time.Parse(time.RFC3339, rendered)
		require.NoError(t, err)
		assert.Equal(t, epoch, parsed.Unix())
	})

	t.Run("zero and negative values render empty", func(t *testing.T) {
		assert.Equal(t, "", FormatRFC3339PT(FromUnixSecondsPT(0)))
		assert.Equal(t, "", FormatRFC3339PT(FromUnixSecondsPT(-1)))
		assert.Equal(t, "", FormatDisplayDatePT(FromUnixSecondsPT(0)))
	})

	t.Run("display date is a plain calendar day", func(t *testing.T) {
		rendered := FormatDisplayDatePT(FromUnixSecondsPT(1767225600))

		_, err := time.Parse("2006-01-02", rendered)
		assert.NoError(t, err)
	})
}
