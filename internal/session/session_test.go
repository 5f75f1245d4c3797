package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	s := NewSlot()

	_, ok := s.Current()
	assert.False(t, ok)

	s.Set(Login{Username: "alice1", Password: "secret1"})
	login, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "alice1", login.Username)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestSlotRename(t *testing.T) {
	s := NewSlot()
	s.Set(Login{Username: "alice1", Password: "secret1"})

	s.Rename("someone_else", "bob")
	login, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "alice1", login.Username, "renaming another user must not touch the slot")

	s.Rename("alice1", "alice2")
	login, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, "alice2", login.Username)
	assert.Equal(t, "secret1", login.Password)
}

func TestSlotRenameWhenEmpty(t *testing.T) {
	s := NewSlot()
	s.Rename("alice1", "alice2")
	_, ok := s.Current()
	assert.False(t, ok)
}
