package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("project_id", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "-1", "0", "4.2", "1e3"} {
		_, err := parseID("project_id", raw)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, raw)
		assert.Equal(t, raw, vErr.Value)
	}

	_, err = parseID("project_id", "")
	assert.EqualError(t, err, "project_id is required")
}
