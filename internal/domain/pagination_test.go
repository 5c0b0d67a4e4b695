package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	limit, offset, err := Page(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultPageSize), limit)
	assert.Equal(t, uint64(0), offset)

	limit, offset, err = Page(3, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), limit)
	assert.Equal(t, uint64(20), offset)

	_, _, err = Page(-1, 10)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, _, err = Page(1, MaxPageSize+1)
	assert.ErrorIs(t, err, ErrInvalidPage)
}
