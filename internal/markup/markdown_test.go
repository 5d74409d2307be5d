package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	c := New()

	html, err := c.Convert([]byte("# Hello World\n\nSome *text* and ~~old~~.\n"))
	require.NoError(t, err)
	assert.Contains(t, html, `<h1 id="hello-world">Hello World</h1>`)
	assert.Contains(t, html, "<em>text</em>")
	assert.Contains(t, html, "<del>old</del>")
}

func TestConvertPassesRawHTML(t *testing.T) {
	html, err := New().Convert([]byte("<div class=\"note\">kept</div>\n"))
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="note">kept</div>`)
}

func TestConvertDeterministic(t *testing.T) {
	c := New()
	src := []byte("## Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

	first, err := c.Convert(src)
	require.NoError(t, err)
	second, err := c.Convert(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
