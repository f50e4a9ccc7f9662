package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, `100\%`, EscapeLikePattern(`100%`))
	assert.Equal(t, `under\_score`, EscapeLikePattern(`under_score`))
	assert.Equal(t, `back\\slash`, EscapeLikePattern(`back\slash`))
	assert.Equal(t, "plain term", EscapeLikePattern("plain term"))

	// Backslash is escaped before the wildcards; a pre-escaped sequence
	// stays literal instead of re-activating the wildcard.
	assert.Equal(t, `\\\%`, EscapeLikePattern(`\%`))
	assert.Equal(t, `\\\\\%\_`, EscapeLikePattern(`\\%_`))
}
