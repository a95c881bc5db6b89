package escline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodepageClient_SupportsKnownAndUnknown(t *testing.T) {
	c := newCodepageClient()
	assert.True(t, c.supports("cp437"))
	assert.False(t, c.supports("cp999"))
}

func TestCodepageClient_WireIDs(t *testing.T) {
	c := newCodepageClient()
	assert.Equal(t, byte(0), c.wireID("cp437"))
	assert.Equal(t, byte(16), c.wireID("windows1252"))
}

func TestCodepageClient_EncodeASCIIIsIdentity(t *testing.T) {
	c := newCodepageClient()
	assert.Equal(t, []byte("Hi"), c.encode("Hi", "cp437"))
}

func TestCodepageClient_AutoEncodeSegmentsByCandidate(t *testing.T) {
	c := newCodepageClient()
	runs := c.autoEncode("cafe", []string{"cp437", "gbk"})
	require.Len(t, runs, 1)
	assert.Equal(t, "cafe", runs[0].Text)
	assert.Equal(t, "cp437", runs[0].Codepage)
}

func TestCodepageClient_AutoEncodeNoCandidatesReturnsUntaggedRun(t *testing.T) {
	c := newCodepageClient()
	runs := c.autoEncode("hello", nil)
	require.Len(t, runs, 1)
	assert.Equal(t, "", runs[0].Codepage)
	assert.Equal(t, "hello", runs[0].Text)
}
