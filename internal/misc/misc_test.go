package misc

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, 3, Max(2, 3))
	assert.Equal(t, "a", Min("b", "a"))
}

func TestHead(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, Head(s, 2))
	assert.Equal(t, []int{1, 2, 3}, Head(s, 10))
	assert.Empty(t, Head(s, 0))
	assert.Empty(t, Head(s, -1))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"lidl": 1, "kaufland": 2, "profi": 3}
	assert.Equal(t, []string{"kaufland", "lidl", "profi"}, SortedKeys(m))
}

func TestStringLimit(t *testing.T) {
	assert.Equal(t, "", StringLimit("abc", -1))
	assert.Equal(t, "ab", StringLimit("abcdef", 2))
	assert.Equal(t, "ab...", StringLimit("abcdefgh", 5))
	assert.Equal(t, "abc", StringLimit("abc", 5))
}

func TestStringLimitKeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "a...", StringLimit("aăăă", 5))
	assert.Equal(t, "ă", StringLimit("ăb", 2))
	assert.Equal(t, "", StringLimit("ăb", 1))
	assert.Equal(t, "pâine ...", StringLimit("pâine albă feliată", 10))
	assert.True(t, utf8.ValidString(StringLimit("șșșșșșșș", 8)))
}

func TestBytesLimit(t *testing.T) {
	src := []byte("abcdefgh")
	assert.Equal(t, []byte("ab..."), BytesLimit(src, 5))
	assert.Equal(t, []byte("abcdefgh"), src)
	assert.Nil(t, BytesLimit(src, -1))
	assert.Equal(t, []byte("a..."), BytesLimit([]byte("aăăă"), 5))
}
