package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwalczak/linktray"
	"github.com/mwalczak/linktray/bubbletea"
	"github.com/mwalczak/linktray/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testLinks() bubbletea.LinksMsg {
	return bubbletea.LinksMsg{
		{Title: "A", URL: "https://x.com"},
		{Title: "B", URL: "https://y.com"},
	}
}

func updateModel(t *testing.T, m tea.Model, msgs ...tea.Msg) bubbletea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	model, ok := m.(bubbletea.Model)
	require.True(t, ok)
	return model
}

func TestModel_CopyAll(t *testing.T) {
	t.Parallel()

	t.Run("copies plain URLs by default", func(t *testing.T) {
		t.Parallel()

		var copied string
		clip := &mock.Clipboard{WriteFn: func(text string) error {
			copied = text
			return nil
		}}

		m := bubbletea.New(&mock.LinkStore{}, clip, nil, false)
		updateModel(t, m, testLinks(), keyPress("a"))

		assert.Equal(t, "https://x.com\nhttps://y.com", copied)
	})

	t.Run("global markdown toggle affects bulk copy", func(t *testing.T) {
		t.Parallel()

		var copied string
		clip := &mock.Clipboard{WriteFn: func(text string) error {
			copied = text
			return nil
		}}

		m := bubbletea.New(&mock.LinkStore{}, clip, nil, false)
		updateModel(t, m, testLinks(), keyPress("m"), keyPress("a"))

		assert.Equal(t, "[A](https://x.com)\n[B](https://y.com)", copied)
	})

	t.Run("bulleted copy prefixes each line", func(t *testing.T) {
		t.Parallel()

		var copied string
		clip := &mock.Clipboard{WriteFn: func(text string) error {
			copied = text
			return nil
		}}

		m := bubbletea.New(&mock.LinkStore{}, clip, nil, false)
		updateModel(t, m, testLinks(), keyPress("b"))

		assert.Equal(t, "- https://x.com\n- https://y.com", copied)
	})

	t.Run("clipboard failure is not user-visible", func(t *testing.T) {
		t.Parallel()

		clip := &mock.Clipboard{WriteFn: func(string) error {
			return linktray.Errorf(linktray.EUNAVAILABLE, "no display")
		}}

		m := bubbletea.New(&mock.LinkStore{}, clip, nil, false)
		model := updateModel(t, m, testLinks(), keyPress("a"))

		assert.NotContains(t, model.View(), "no display")
	})
}

func TestModel_CopyLink(t *testing.T) {
	t.Parallel()

	t.Run("copies the selected link plain when unchecked", func(t *testing.T) {
		t.Parallel()

		var copied string
		clip := &mock.Clipboard{WriteFn: func(text string) error {
			copied = text
			return nil
		}}

		m := bubbletea.New(&mock.LinkStore{}, clip, nil, false)
		updateModel(t, m, testLinks(), keyPress("c"))

		assert.Equal(t, "https://x.com", copied)
	})

	t.Run("per-link toggle renders markdown independently of the global toggle", func(t *testing.T) {
		t.Parallel()

		var copied string
		clip := &mock.Clipboard{WriteFn: func(text string) error {
			copied = text
			return nil
		}}

		m := bubbletea.New(&mock.LinkStore{}, clip, nil, false)
		updateModel(t, m, testLinks(), keyPress(" "), keyPress("c"))

		assert.Equal(t, "[A](https://x.com)", copied)
	})
}

func TestModel_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the link under the cursor by position", func(t *testing.T) {
		t.Parallel()

		removed := -1
		store := &mock.LinkStore{
			RemoveAtFn: func(_ context.Context, index int) error {
				removed = index
				return nil
			},
			LinksFn: func(context.Context) ([]linktray.Link, error) {
				return []linktray.Link{{Title: "A", URL: "https://x.com"}}, nil
			},
		}

		m := bubbletea.New(store, &mock.Clipboard{}, nil, false)
		updateModel(t, m, testLinks(), keyPress("j"), keyPress("d"))

		assert.Equal(t, 1, removed)
	})
}

func TestModel_DeleteAll(t *testing.T) {
	t.Parallel()

	t.Run("requires confirmation", func(t *testing.T) {
		t.Parallel()

		cleared := false
		store := &mock.LinkStore{
			ClearFn: func(context.Context) error {
				cleared = true
				return nil
			},
			LinksFn: func(context.Context) ([]linktray.Link, error) {
				return nil, nil
			},
		}

		m := bubbletea.New(store, &mock.Clipboard{}, nil, false)
		model := updateModel(t, m, testLinks(), keyPress("D"))

		assert.False(t, cleared)
		assert.Contains(t, model.View(), "Delete all")

		updateModel(t, model, keyPress("y"))
		assert.True(t, cleared)
	})

	t.Run("n cancels", func(t *testing.T) {
		t.Parallel()

		cleared := false
		store := &mock.LinkStore{
			ClearFn: func(context.Context) error {
				cleared = true
				return nil
			},
		}

		m := bubbletea.New(store, &mock.Clipboard{}, nil, false)
		model := updateModel(t, m, testLinks(), keyPress("D"), keyPress("n"))

		assert.False(t, cleared)
		assert.NotContains(t, model.View(), "Delete all")
	})
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	t.Run("lists links in order with checkboxes", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.New(&mock.LinkStore{}, &mock.Clipboard{}, nil, false)
		model := updateModel(t, m, testLinks())

		view := model.View()
		assert.Contains(t, view, "https://x.com")
		assert.Contains(t, view, "https://y.com")
		assert.Contains(t, view, "[ ]")
	})

	t.Run("empty list shows a hint", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.New(&mock.LinkStore{}, &mock.Clipboard{}, nil, false)
		model := updateModel(t, m, bubbletea.LinksMsg{})

		assert.Contains(t, model.View(), "Nothing captured yet")
	})
}
