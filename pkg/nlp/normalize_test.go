package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "john smith example com", NormalizeText("  John.Smith@Example.com "))
	assert.Equal(t, "", NormalizeText("--"))
}

func TestMatchesAll(t *testing.T) {
	assert.True(t, MatchesAll("", "anything"))
	assert.True(t, MatchesAll("john", "John Smith", "john.smith@example.com"))
	assert.True(t, MatchesAll("smith example", "John Smith", "john.smith@example.com"))
	assert.False(t, MatchesAll("sarah", "John Smith", "john.smith@example.com"))
	assert.False(t, MatchesAll("john jones", "John Smith"))
}
