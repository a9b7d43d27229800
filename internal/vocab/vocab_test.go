package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBrand(t *testing.T) {
	assert.True(t, IsBrand("GUCCI"))
	assert.True(t, IsBrand("OTHERS"))
	assert.False(t, IsBrand("NOTABRAND"))
	assert.False(t, IsBrand("gucci"), "matching is case-sensitive; extraction upper-cases first")
	assert.False(t, IsBrand(""))
}

func TestIsFirstCategory(t *testing.T) {
	assert.Len(t, FirstCategories, 10)
	for _, c := range FirstCategories {
		assert.True(t, IsFirstCategory(c))
	}
	assert.False(t, IsFirstCategory("백팩"), "second-level labels are not first-level keys")
	assert.False(t, IsFirstCategory(""))
}

func TestIsSecondCategory(t *testing.T) {
	assert.True(t, IsSecondCategory("백팩"))
	assert.True(t, IsSecondCategory("메탈"))
	assert.True(t, IsSecondCategory("WOC"))
	assert.False(t, IsSecondCategory("가방"), "first-level keys are not second-level labels")
	assert.False(t, IsSecondCategory(""))
}

func TestTaxonomyShape(t *testing.T) {
	assert.Len(t, Categories, len(FirstCategories))
	for _, first := range FirstCategories {
		_, ok := Categories[first]
		assert.True(t, ok, "first category %q has no taxonomy entry", first)
	}
	assert.Empty(t, Categories["벨트"])
}
