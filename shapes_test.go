package escline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_PadsShorterCellsToTallest(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)

	e.Table([]int{4, 4}, [][]string{{"a", "a very long wrapped cell value"}}, TableOptions{})
	require.NoError(t, e.Err())

	lines, err := e.Commands()
	require.NoError(t, err)
	assert.Greater(t, len(lines), 1, "the long cell should wrap across multiple rows")
}

func TestTable_RejectedWhenEmbedded(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)
	sub := e.newEmbedded(20)

	sub.Table([]int{4}, [][]string{{"x"}}, TableOptions{})
	assert.Error(t, sub.Err())
}

func TestRule_EmitsGlyphRepeatedToWidth(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)

	e.Rule(RuleOptions{Style: RuleSingle, Width: 10})
	require.NoError(t, e.Err())

	out, err := e.Encode()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), strings.Repeat("-", 10)))
}

func TestRule_NoneEmitsNothing(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)

	e.Rule(RuleOptions{Style: RuleNone, Width: 10})
	lines, err := e.Commands()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBox_DrawsBorderAndContent(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)

	e.Box(BoxOptions{Style: RuleSingle, Width: 12, PaddingLeft: 1, PaddingRight: 1}, func(sub *Encoder) {
		sub.Text("hi")
	})
	require.NoError(t, e.Err())

	out, err := e.Encode()
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "+")
	assert.Contains(t, s, "|")
	assert.Contains(t, s, "hi")
}

func TestBox_RejectedWhenEmbedded(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)
	sub := e.newEmbedded(20)

	sub.Box(BoxOptions{Width: 10}, func(*Encoder) {})
	assert.Error(t, sub.Err())
}
