package event

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/client"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

func TestHandler_FiresEvents(t *testing.T) {
	mgr := event.New(logr.Discard())
	h := NewHandler(mgr, nil)

	var chats []*ChatEvent
	event.Subscribe(mgr, 0, func(e *ChatEvent) { chats = append(chats, e) })
	var logins []*LoginSuccessEvent
	event.Subscribe(mgr, 0, func(e *LoginSuccessEvent) { logins = append(logins, e) })
	var lost []*DisconnectEvent
	event.Subscribe(mgr, 0, func(e *DisconnectEvent) { lost = append(lost, e) })

	id := uuid.OfflinePlayerUUID("Alex")
	h.OnLoginSuccess(id, "Alex", nil)
	h.OnTextReceived(&client.ChatMessage{Kind: client.SystemMessage, Content: "welcome"})
	h.OnConnectionLost(client.InGameKick, "bye")

	require.Len(t, logins, 1)
	assert.Equal(t, id, logins[0].ID)
	assert.Equal(t, "Alex", logins[0].Username)
	require.Len(t, chats, 1)
	assert.Equal(t, "welcome", chats[0].Message.Content)
	require.Len(t, lost, 1)
	assert.Equal(t, client.InGameKick, lost[0].Reason)
	assert.Equal(t, "bye", lost[0].Message)
}

func TestHandler_WithoutSubscribers(t *testing.T) {
	h := NewHandler(event.New(logr.Discard()), nil)
	assert.NotPanics(t, func() {
		h.OnTimeUpdate(1, 2)
		h.OnPlayerLeave(uuid.New())
		h.OnInventoryClose(1)
		h.OnTransfer("example.com", 25565)
	})
}

func TestHandler_Cookies(t *testing.T) {
	h := NewHandler(event.New(logr.Discard()), nil)

	h.SetCookie("session", []byte{1, 2, 3})
	got, ok := h.GetCookie("minecraft:session")
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)
	assert.Equal(t, 1, h.Cookies().Len())

	h.DeleteCookie("session")
	_, ok = h.GetCookie("session")
	assert.False(t, ok)
}
