package action

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, TypeDefer, NewDefer(true).Kind())
	assert.Equal(t, TypeSend, NewSend(map[string]any{"content": "hi"}).Kind())
	assert.Equal(t, TypeDelete, NewDelete(1, 2, "spam").Kind())
	assert.Equal(t, TypeEdit, NewEdit(map[string]any{"content": "hi"}, 2).Kind())
	assert.Equal(t, TypeCreateReaction, NewCreateReaction(1, "👍", 2).Kind())
	assert.Equal(t, TypeSendModal, NewSendModal(map[string]any{"title": "t"}).Kind())
	assert.Equal(t, TypeSendChoices, NewSendChoices(nil).Kind())
}

func TestActionsAreTimestamped(t *testing.T) {
	before := time.Now()
	a := NewDefer(false)
	after := time.Now()

	assert.False(t, a.At().Before(before))
	assert.False(t, a.At().After(after))
}

func TestLedger_SinceFiltersAndSorts(t *testing.T) {
	l := NewLedger()

	early := NewDefer(false)
	l.Append(early)

	time.Sleep(time.Millisecond)
	cut := time.Now()

	first := NewSend(map[string]any{"content": "first"})
	second := NewDelete(42, 0, "")
	// Append out of order; Since must sort by creation time.
	l.Append(second)
	l.Append(first)

	got := l.Since(cut)
	require.Len(t, got, 2)
	assert.Equal(t, TypeSend, got[0].Kind())
	assert.Equal(t, TypeDelete, got[1].Kind())

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, TypeDefer, all[0].Kind())
}

func TestLedger_Len(t *testing.T) {
	l := NewLedger()
	assert.Zero(t, l.Len())
	l.Append(NewDefer(true))
	l.Append(NewDefer(false))
	assert.Equal(t, 2, l.Len())
}
