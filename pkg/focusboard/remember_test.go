package focusboard

import (
	"errors"
	"testing"

	"github.com/focusboard/focusboard/pkg/layoutstore"
	"github.com/focusboard/focusboard/pkg/layoutstore/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeQuerier struct {
	class string
	err   error
}

func (f *fakeQuerier) ActiveWindowClass() (string, error) {
	return f.class, f.err
}

func TestRememberActiveWindow(t *testing.T) {
	store := memory.NewStore()
	layouts := &fakeLayouts{current: 2}
	r := NewRecorder(&fakeQuerier{class: "firefox"}, layouts, store, zaptest.NewLogger(t).Sugar())

	class, layout, err := r.RememberActiveWindow()
	require.NoError(t, err)
	assert.Equal(t, "firefox", class)
	assert.Equal(t, layoutstore.LayoutID(2), layout)

	// the mapping is visible through the store immediately
	id, ok, err := store.LayoutFor("firefox")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, layoutstore.LayoutID(2), id)
}

func TestRememberOverwritesPreviousLayout(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Remember("firefox", 0))

	layouts := &fakeLayouts{current: 1}
	r := NewRecorder(&fakeQuerier{class: "firefox"}, layouts, store, zaptest.NewLogger(t).Sugar())

	_, _, err := r.RememberActiveWindow()
	require.NoError(t, err)

	id, _, err := store.LayoutFor("firefox")
	require.NoError(t, err)
	assert.Equal(t, layoutstore.LayoutID(1), id)
}

func TestRememberFailsWithoutActiveWindow(t *testing.T) {
	store := memory.NewStore()
	r := NewRecorder(&fakeQuerier{class: ""}, &fakeLayouts{}, store, zaptest.NewLogger(t).Sugar())

	_, _, err := r.RememberActiveWindow()
	assert.ErrorIs(t, err, ErrNoActiveWindow)
}

func TestRememberFailsOnQuerierError(t *testing.T) {
	store := memory.NewStore()
	q := &fakeQuerier{err: errors.New("no display")}
	r := NewRecorder(q, &fakeLayouts{}, store, zaptest.NewLogger(t).Sugar())

	_, _, err := r.RememberActiveWindow()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve active window")
}

func TestRememberFailsOnLayoutReadError(t *testing.T) {
	store := memory.NewStore()
	layouts := &fakeLayouts{readErr: errors.New("adapter gone")}
	r := NewRecorder(&fakeQuerier{class: "firefox"}, layouts, store, zaptest.NewLogger(t).Sugar())

	_, _, err := r.RememberActiveWindow()
	require.Error(t, err)

	// nothing was written
	_, ok, lookupErr := store.LayoutFor("firefox")
	require.NoError(t, lookupErr)
	assert.False(t, ok)
}

type failingStore struct {
	*memory.Store
}

func (f *failingStore) Remember(string, layoutstore.LayoutID) error {
	return errors.New("disk full")
}

func TestRememberPropagatesStoreError(t *testing.T) {
	store := &failingStore{Store: memory.NewStore()}
	layouts := &fakeLayouts{current: 1}
	r := NewRecorder(&fakeQuerier{class: "firefox"}, layouts, store, zaptest.NewLogger(t).Sugar())

	_, _, err := r.RememberActiveWindow()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
