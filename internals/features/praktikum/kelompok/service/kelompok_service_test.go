package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{2, 4}, UniqueIDs([]uint{2, 4, 2, 4}))
	assert.Equal(t, []uint{3, 1, 2}, UniqueIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, UniqueIDs(nil))
}
