package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlways(t *testing.T) {
	ok, err := Always(true).Confirm("Delete this file?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Always(false).Confirm("Delete this file?", true)
	require.NoError(t, err)
	assert.False(t, ok)
}
