package sink

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/adaptergen/pkg/substitute"
)

func TestCopyToClipboard(t *testing.T) {
	var copied string
	c := NewClipboard(nil).WithWriter(func(s string) error {
		copied = s
		return nil
	})

	artifact := substitute.NewArtifact("X=1;")
	require.NoError(t, c.CopyToClipboard(artifact))
	assert.Equal(t, "X=1;", copied)
	assert.Equal(t, "X=1;", artifact.String(), "copy must not mutate the artifact")
}

func TestCopyToClipboardDenied(t *testing.T) {
	calls := 0
	c := NewClipboard(nil).WithWriter(func(string) error {
		calls++
		return errors.New("access denied")
	})

	err := c.CopyToClipboard(substitute.NewArtifact("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Equal(t, 1, calls, "no retry")
}

func TestDownloadAsFile(t *testing.T) {
	dir := t.TempDir()
	d := NewDownload(dir, nil)

	content := "Class A { Property Name As %String [ InitialExpression = \"Grüße\" ]; }\n"
	path, err := d.DownloadAsFile("InboundAdapter.cls", content)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "InboundAdapter.cls"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(written))

	// a second download replaces the first
	_, err = d.DownloadArtifact("InboundAdapter.cls", substitute.NewArtifact("v2"))
	require.NoError(t, err)
	written, _ = os.ReadFile(path)
	assert.Equal(t, "v2", string(written))
}

func TestDownloadAsFileRejectsBadNames(t *testing.T) {
	d := NewDownload(t.TempDir(), nil)

	_, err := d.DownloadAsFile("", "x")
	assert.Error(t, err)

	_, err = d.DownloadAsFile("../escape.cls", "x")
	assert.Error(t, err)
}

func TestEscapeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abcXYZ019", "abcXYZ019"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a b", "a%20b"},
		{"+#Name#+", "%2B%23Name%23%2B"},
		{"line\n", "line%0A"},
		{"ü", "%C3%BC"},
		{"%", "%25"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeComponent(tt.in))
		})
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	content := "Property X As %String [ InitialExpression = \"a&b=c\" ];\n"
	uri := DataURI(content)

	require.Contains(t, uri, "data:text/plain;charset=utf-8,")
	decoded, err := url.PathUnescape(uri[len(dataURIPrefix):])
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}
