package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_RuneBoundaries(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))

	// Multi-byte text must not be cut mid-rune.
	long := strings.Repeat("é", 50)
	got := truncate(long, 30)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 30), got)
}
