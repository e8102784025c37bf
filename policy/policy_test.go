package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleSetRejectsBlankPatterns(t *testing.T) {
	_, err := NewRuleSet([]string{"format", "   "})
	require.Error(t, err)

	_, err = NewRuleSet([]string{""})
	require.Error(t, err)
}

func TestNewRuleSetLowercasesPatterns(t *testing.T) {
	rs, err := NewRuleSet([]string{"FORMAT", "Invoke-Expression"})
	require.NoError(t, err)

	assert.Equal(t, []string{"format", "invoke-expression"}, rs.Patterns())
}

func TestClassify(t *testing.T) {
	rs, err := NewRuleSet([]string{"format", "shutdown", "del /f"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		allowed bool
		matched string
	}{
		{"exact hit", "format c:", false, "format"},
		{"case insensitive hit", "FORMAT C:", false, "format"},
		{"hit inside a longer line", "echo done && shutdown /s /t 0", false, "shutdown"},
		{"multi word pattern", "del /f C:\\temp\\x", false, "del /f"},
		{"clean command", "echo hello", true, ""},
		{"plain del is not listed", "del C:\\temp\\x", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Classify(tt.input, rs)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.matched, d.MatchedPattern)
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	rs, err := NewRuleSet([]string{"format", "shutdown"})
	require.NoError(t, err)

	// both patterns occur; the first pattern in ruleset order is reported
	d := Classify("shutdown now, then format c:", rs)
	assert.False(t, d.Allowed)
	assert.Equal(t, "format", d.MatchedPattern)
}

// An unlisted synonym of a denied operation passes the screen. This is an
// accepted property of the substring check, not a bug to fix here.
func TestClassifySynonymPasses(t *testing.T) {
	rs, err := NewRuleSet([]string{"format"})
	require.NoError(t, err)

	d := Classify("mkfs.ext4 /dev/sda1", rs)
	assert.True(t, d.Allowed)
}

// The inverse property: an unrelated input containing a listed substring is
// rejected.
func TestClassifyOverBlocks(t *testing.T) {
	rs, err := NewRuleSet([]string{"format"})
	require.NoError(t, err)

	d := Classify("cat notes-on-date-formatting.txt", rs)
	assert.False(t, d.Allowed)
	assert.Equal(t, "format", d.MatchedPattern)
}

func TestClassifyIsPure(t *testing.T) {
	rs, err := NewRuleSet([]string{"format"})
	require.NoError(t, err)

	first := Classify("format c:", rs)
	second := Classify("format c:", rs)
	assert.Equal(t, first, second)
}
