package debug

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidentSetSize(t *testing.T) {
	rss, err := residentSetSize(context.Background())
	require.NoError(t, err)
	assert.Positive(t, rss)
}
