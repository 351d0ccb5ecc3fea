package linktray_test

import (
	"testing"

	"github.com/mwalczak/linktray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWebURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts http and https", func(t *testing.T) {
		t.Parallel()

		assert.True(t, linktray.IsWebURL("https://example.com/page"))
		assert.True(t, linktray.IsWebURL("http://example.com"))
	})

	t.Run("rejects other schemes", func(t *testing.T) {
		t.Parallel()

		assert.False(t, linktray.IsWebURL("chrome://extensions"))
		assert.False(t, linktray.IsWebURL("ftp://example.com"))
		assert.False(t, linktray.IsWebURL("mailto:someone@example.com"))
		assert.False(t, linktray.IsWebURL("javascript:void(0)"))
	})

	t.Run("rejects relative and empty input", func(t *testing.T) {
		t.Parallel()

		assert.False(t, linktray.IsWebURL("/docs/page"))
		assert.False(t, linktray.IsWebURL("example.com"))
		assert.False(t, linktray.IsWebURL(""))
	})
}

func TestDomainTitle(t *testing.T) {
	t.Parallel()

	t.Run("uses hostname", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "example.com", linktray.DomainTitle("https://example.com/page"))
	})

	t.Run("strips leading www label", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "example.com", linktray.DomainTitle("https://www.example.com/page"))
	})

	t.Run("keeps non-leading www intact", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "docs.www.example.com", linktray.DomainTitle("https://docs.www.example.com"))
	})

	t.Run("falls back to Link for unparseable URLs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Link", linktray.DomainTitle("://not-a-url"))
		assert.Equal(t, "Link", linktray.DomainTitle(""))
	})
}

func TestNewLink(t *testing.T) {
	t.Parallel()

	t.Run("keeps a non-empty trimmed title", func(t *testing.T) {
		t.Parallel()

		link := linktray.NewLink("https://example.com", "  My Page  ")

		assert.Equal(t, "My Page", link.Title)
		assert.Equal(t, "https://example.com", link.URL)
	})

	t.Run("treats whitespace-only titles as empty", func(t *testing.T) {
		t.Parallel()

		link := linktray.NewLink("https://www.example.com/page", " \t\n ")

		assert.Equal(t, "example.com", link.Title)
	})
}

func TestLinkFromSelection(t *testing.T) {
	t.Parallel()

	t.Run("accepts a selected URL with surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		link := linktray.LinkFromSelection("  https://www.example.com/page \n")

		require.NotNil(t, link)
		assert.Equal(t, "https://www.example.com/page", link.URL)
		assert.Equal(t, "example.com", link.Title)
	})

	t.Run("ignores selected text that is not a URL", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, linktray.LinkFromSelection("hello world"))
	})

	t.Run("ignores non-web schemes", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, linktray.LinkFromSelection("file:///etc/hosts"))
	})

	t.Run("ignores empty selections", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, linktray.LinkFromSelection("   "))
	})
}

func TestLink_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid link passes", func(t *testing.T) {
		t.Parallel()

		link := linktray.Link{Title: "Example", URL: "https://example.com"}
		require.NoError(t, link.Validate())
	})

	t.Run("missing title fails", func(t *testing.T) {
		t.Parallel()

		link := linktray.Link{Title: "  ", URL: "https://example.com"}
		err := link.Validate()

		assert.Equal(t, linktray.EINVALID, linktray.ErrorCode(err))
	})

	t.Run("non-web URL fails", func(t *testing.T) {
		t.Parallel()

		link := linktray.Link{Title: "Example", URL: "chrome://extensions"}
		err := link.Validate()

		assert.Equal(t, linktray.EINVALID, linktray.ErrorCode(err))
	})
}
