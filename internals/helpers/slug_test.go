package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "praktikum-basis-data", Slugify("  Praktikum Basis Data ", 0))
	assert.Equal(t, "jaringan-komputer-2", Slugify("Jaringan_Komputer (2)", 0))
	assert.Equal(t, "cafe", Slugify("Café", 0))
	assert.Equal(t, "abc", Slugify("abc-def", 4))
	assert.Equal(t, "", Slugify("!!!", 0))
}
