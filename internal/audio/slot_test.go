package audio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Mr-Dark-debug/glossa/internal/audio"
	mock_audio "github.com/Mr-Dark-debug/glossa/internal/mocks/audio"
)

func TestSlot_InstallReplacesAndClosesPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)

	first := mock_audio.NewMockClip(ctrl)
	second := mock_audio.NewMockClip(ctrl)
	first.EXPECT().Close().Return(nil).Times(1)

	var slot audio.Slot
	assert.True(t, slot.Install(slot.Ticket(), first))
	assert.True(t, slot.Install(slot.Ticket(), second))
	assert.Equal(t, audio.Clip(second), slot.Current())
}

func TestSlot_Release(t *testing.T) {
	ctrl := gomock.NewController(t)

	clip := mock_audio.NewMockClip(ctrl)
	clip.EXPECT().Close().Return(nil).Times(1)

	var slot audio.Slot
	assert.NoError(t, slot.Release(), "releasing an empty slot is a no-op")

	slot.Install(slot.Ticket(), clip)
	assert.NoError(t, slot.Release())
	assert.Nil(t, slot.Current())
	assert.NoError(t, slot.Release())
}

func TestSlot_LateLoadAfterReleaseIsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)

	late := mock_audio.NewMockClip(ctrl)
	late.EXPECT().Close().Return(nil).Times(1)

	var slot audio.Slot
	ticket := slot.Ticket()
	assert.NoError(t, slot.Release())

	assert.False(t, slot.Install(ticket, late))
	assert.Nil(t, slot.Current())
}

func TestSlot_InstallSameClipTwice(t *testing.T) {
	ctrl := gomock.NewController(t)

	clip := mock_audio.NewMockClip(ctrl)
	clip.EXPECT().Close().Times(0)

	var slot audio.Slot
	slot.Install(slot.Ticket(), clip)
	slot.Install(slot.Ticket(), clip)
	assert.Equal(t, audio.Clip(clip), slot.Current())
}
