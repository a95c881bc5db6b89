package escline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_SimpleFit(t *testing.T) {
	out := wrap("Hi", wrapOptions{Columns: 42, Width: 1, Indent: 0})
	assert.Equal(t, []string{"Hi"}, out)
}

func TestWrap_GreedyWordPacking(t *testing.T) {
	out := wrap("the quick brown fox", wrapOptions{Columns: 10, Width: 1, Indent: 0})
	assert.Equal(t, []string{"the quick", "brown fox"}, out)
}

func TestWrap_IndentShrinksFirstLineOnly(t *testing.T) {
	out := wrap("ab cd", wrapOptions{Columns: 5, Width: 1, Indent: 3})
	assert.Equal(t, []string{"ab", "cd"}, out)
}

func TestWrap_WidthMultiplierShrinksBudget(t *testing.T) {
	out := wrap("abcdef", wrapOptions{Columns: 10, Width: 2, Indent: 0})
	assert.Equal(t, []string{"abcde", "f"}, out)
}

func TestWrap_LongTokenSplitCharacterwise(t *testing.T) {
	out := wrap("abcdefghijklmnop", wrapOptions{Columns: 5, Width: 1, Indent: 0})
	assert.Equal(t, []string{"abcde", "fghij", "klmno", "p"}, out)
}

func TestWrap_ExplicitNewlinesPreserveEmptyLines(t *testing.T) {
	out := wrap("a\n\nb", wrapOptions{Columns: 10, Width: 1, Indent: 0})
	assert.Equal(t, []string{"a", "", "b"}, out)
}

func TestWrap_LongTokenWithRoomKeepsPrefixOnCurrentLine(t *testing.T) {
	// "ab " leaves 9 cells of room on a 12-column budget before the 16-char token.
	out := wrap("ab "+"0123456789abcdef", wrapOptions{Columns: 12, Width: 1, Indent: 0})
	assert.Equal(t, "ab 012345678", out[0])
	assert.Equal(t, "9abcdef", out[1])
}

func TestWrap_HyphenatedTokenBreaksAfterHyphen(t *testing.T) {
	out := wrap("multi-part", wrapOptions{Columns: 6, Width: 1, Indent: 0})
	assert.Equal(t, []string{"multi-", "part"}, out)
}

func TestWrap_HyphenatedTokenFitsWholeOnOneLine(t *testing.T) {
	out := wrap("multi-part", wrapOptions{Columns: 20, Width: 1, Indent: 0})
	assert.Equal(t, []string{"multi-part"}, out)
}
