// Package event publishes the callbacks of a client session as events
// on an event.Manager, so several subscribers can observe one session.
package event

import (
	"github.com/robinbraemer/event"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/client"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/cookie"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/playerinfo"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/title"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// LoginSuccessEvent is fired when the server accepted the login.
type LoginSuccessEvent struct {
	ID         uuid.UUID
	Username   string
	Properties []packet.Property
}

// GameJoinedEvent is fired for every join game packet.
type GameJoinedEvent struct {
	Join *packet.JoinGame
}

// RespawnEvent is fired when the player changes dimension or respawns.
type RespawnEvent struct {
	Respawn *packet.Respawn
}

// ChatEvent is fired for every chat message.
type ChatEvent struct {
	Message *client.ChatMessage
}

// TitleEvent is fired for every title packet.
type TitleEvent struct {
	Update title.Update
}

// TabCompleteEvent carries the answer to a tab completion request.
type TabCompleteEvent struct {
	Start, Length int
	Results       []string
}

type PlayerJoinEvent struct {
	Player *playerinfo.Entry
}

type PlayerLeaveEvent struct {
	ID uuid.UUID
}

// HealthEvent is fired when the health or food level changed.
type HealthEvent struct {
	Health float32
	Food   int
}

// LocationEvent is fired when the server moved the player.
type LocationEvent struct {
	Location   client.Location
	Yaw, Pitch float32
}

type InventoryOpenEvent struct {
	WindowID, WindowType int
	Title                string
}

type InventoryCloseEvent struct {
	WindowID byte
}

// InventoryItemsEvent is fired when the server sent all slots of a window.
type InventoryItemsEvent struct {
	WindowID byte
	Items    []component.Slot
	Carried  component.Slot
	StateID  int
}

// InventorySlotEvent is fired when one slot changed, FromClient is set
// for changes the session sent itself.
type InventorySlotEvent struct {
	WindowID   int8
	Slot       int16
	Item       component.Slot
	StateID    int
	FromClient bool
}

type SpawnEntityEvent struct {
	Entity *packet.SpawnEntity
}

type DestroyEntitiesEvent struct {
	EntityIDs []int
}

type TimeUpdateEvent struct {
	WorldAge, TimeOfDay int64
}

type PluginMessageEvent struct {
	Channel string
	Data    []byte
}

// TransferEvent is fired when the server asked to reconnect elsewhere.
type TransferEvent struct {
	Host string
	Port int
}

// DisconnectEvent is fired once when the session ended.
type DisconnectEvent struct {
	Reason  client.DisconnectReason
	Message string
}

// Handler is a client.ComHandler firing events on a Manager.
// Events are fired synchronously on the calling goroutine.
// Cookies are kept in a cookie.Jar.
type Handler struct {
	client.NopHandler
	mgr     event.Manager
	cookies *cookie.Jar
}

var _ client.ComHandler = (*Handler)(nil)

// NewHandler returns a Handler firing on mgr. A nil jar uses a new one
// with the default expiry.
func NewHandler(mgr event.Manager, jar *cookie.Jar) *Handler {
	if jar == nil {
		jar = cookie.NewJar(cookie.DefaultTTL)
	}
	return &Handler{mgr: mgr, cookies: jar}
}

// Cookies returns the cookie jar of the handler.
func (h *Handler) Cookies() *cookie.Jar { return h.cookies }

func (h *Handler) OnLoginSuccess(id uuid.UUID, name string, properties []packet.Property) {
	h.mgr.Fire(&LoginSuccessEvent{ID: id, Username: name, Properties: properties})
}

func (h *Handler) OnGameJoined(join *packet.JoinGame) {
	h.mgr.Fire(&GameJoinedEvent{Join: join})
}

func (h *Handler) OnRespawn(respawn *packet.Respawn) {
	h.mgr.Fire(&RespawnEvent{Respawn: respawn})
}

func (h *Handler) OnTextReceived(msg *client.ChatMessage) {
	h.mgr.Fire(&ChatEvent{Message: msg})
}

func (h *Handler) OnTitle(update title.Update) {
	h.mgr.Fire(&TitleEvent{Update: update})
}

func (h *Handler) OnTabCompleteDone(start, length int, results []string) {
	h.mgr.Fire(&TabCompleteEvent{Start: start, Length: length, Results: results})
}

func (h *Handler) OnPlayerJoin(player *playerinfo.Entry) {
	h.mgr.Fire(&PlayerJoinEvent{Player: player})
}

func (h *Handler) OnPlayerLeave(id uuid.UUID) {
	h.mgr.Fire(&PlayerLeaveEvent{ID: id})
}

func (h *Handler) OnUpdateHealth(health float32, food int) {
	h.mgr.Fire(&HealthEvent{Health: health, Food: food})
}

func (h *Handler) UpdateLocation(loc client.Location, yaw, pitch float32) {
	h.mgr.Fire(&LocationEvent{Location: loc, Yaw: yaw, Pitch: pitch})
}

func (h *Handler) OnInventoryOpen(windowID, windowType int, title string) {
	h.mgr.Fire(&InventoryOpenEvent{WindowID: windowID, WindowType: windowType, Title: title})
}

func (h *Handler) OnInventoryClose(windowID byte) {
	h.mgr.Fire(&InventoryCloseEvent{WindowID: windowID})
}

func (h *Handler) OnInventoryItems(windowID byte, items []component.Slot, carried component.Slot, stateID int) {
	h.mgr.Fire(&InventoryItemsEvent{WindowID: windowID, Items: items, Carried: carried, StateID: stateID})
}

func (h *Handler) OnInventorySlot(windowID int8, slot int16, item component.Slot, stateID int, fromClient bool) {
	h.mgr.Fire(&InventorySlotEvent{
		WindowID:   windowID,
		Slot:       slot,
		Item:       item,
		StateID:    stateID,
		FromClient: fromClient,
	})
}

func (h *Handler) OnSpawnEntity(entity *packet.SpawnEntity) {
	h.mgr.Fire(&SpawnEntityEvent{Entity: entity})
}

func (h *Handler) OnDestroyEntities(entityIDs []int) {
	h.mgr.Fire(&DestroyEntitiesEvent{EntityIDs: entityIDs})
}

func (h *Handler) OnTimeUpdate(worldAge, timeOfDay int64) {
	h.mgr.Fire(&TimeUpdateEvent{WorldAge: worldAge, TimeOfDay: timeOfDay})
}

func (h *Handler) OnPluginChannelMessage(channel string, data []byte) {
	h.mgr.Fire(&PluginMessageEvent{Channel: channel, Data: data})
}

func (h *Handler) OnTransfer(host string, port int) {
	h.mgr.Fire(&TransferEvent{Host: host, Port: port})
}

func (h *Handler) OnConnectionLost(reason client.DisconnectReason, message string) {
	h.mgr.Fire(&DisconnectEvent{Reason: reason, Message: message})
}

func (h *Handler) GetCookie(key string) ([]byte, bool) { return h.cookies.GetCookie(key) }
func (h *Handler) SetCookie(key string, data []byte)   { h.cookies.SetCookie(key, data) }
func (h *Handler) DeleteCookie(key string)             { h.cookies.DeleteCookie(key) }
