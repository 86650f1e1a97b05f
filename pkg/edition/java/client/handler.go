package client

import (
	"time"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/playerinfo"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/title"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// ComHandler receives the events of a session.
//
// Inbound callbacks are called from the network goroutine of the session,
// one at a time and in wire order. Outbound OnNetworkPacket calls and
// OnInventorySlot with fromClient set run on the goroutine that sent. Implementations hand work that touches main
// thread state to the session's Dispatcher. A slow handler stalls decoding
// of further packets.
//
// Embed NopHandler to implement only the callbacks of interest.
type ComHandler interface {
	// OnNetworkPacket is called for every packet read or written,
	// known or not, before it is handled or sent.
	OnNetworkPacket(pc *proto.PacketContext, inbound bool)

	OnLoginSuccess(id uuid.UUID, name string, properties []packet.Property)
	OnGameJoined(join *packet.JoinGame)
	OnReceivePlayerEntityID(entityID int)
	OnRespawn(respawn *packet.Respawn)
	OnServerKeepAlive()
	OnServerDataReceived(data *packet.ServerData)
	OnPluginChannelMessage(channel string, data []byte)
	// OnTransfer is called when the server transfers the client to another
	// server. The session ends with the transfer; reconnecting is up to the
	// handler and cookies are expected to survive it.
	OnTransfer(host string, port int)
	// OnConnectionLost is called exactly once when the session ended.
	OnConnectionLost(reason DisconnectReason, message string)

	OnTextReceived(msg *ChatMessage)
	OnTabCompleteDone(start, length int, results []string)
	OnTitle(update title.Update)

	OnPlayerJoin(player *playerinfo.Entry)
	OnPlayerLeave(id uuid.UUID)
	OnPlayerKilled(playerEntityID int, message string)
	OnGamemodeUpdate(id uuid.UUID, gamemode int)
	OnLatencyUpdate(id uuid.UUID, latency int)
	// UpdateLocation is called after the server moved the player.
	// The location is absolute, relative fields already applied.
	UpdateLocation(loc Location, yaw, pitch float32)
	OnUpdateHealth(health float32, food int)
	OnSetExperience(bar float32, level, total int)
	OnHeldItemChange(slot byte)

	OnInventoryOpen(windowID, windowType int, title string)
	OnInventoryClose(windowID byte)
	OnInventoryItems(windowID byte, items []component.Slot, carried component.Slot, stateID int)
	OnInventorySlot(windowID int8, slot int16, item component.Slot, stateID int, fromClient bool)
	OnInventoryProperty(windowID byte, property, value int16)
	OnTradeList(offers *packet.MerchantOffers)

	OnSpawnEntity(entity *packet.SpawnEntity)
	OnEntityEquipment(entityID int, slot byte, item component.Slot)
	OnDestroyEntities(entityIDs []int)
	// OnEntityPosition reports a relative move in blocks.
	OnEntityPosition(entityID int, dx, dy, dz float64, onGround bool)
	OnEntityRotation(entityID int, yaw, pitch packet.Angle, onGround bool)
	OnEntityHeadLook(entityID int, headYaw packet.Angle)
	OnEntityTeleport(entityID int, x, y, z float64, onGround bool)
	// OnEntityProperties maps attribute ids to their base value.
	OnEntityProperties(entityID int, properties map[int]float64)
	OnEntityStatus(entityID int, status int8)
	// OnEntityMetadata passes the metadata in wire form.
	OnEntityMetadata(entityID int, raw []byte)
	OnEntityEffect(effect *packet.EntityEffect)
	OnEntityAnimation(entityID int, animation byte)
	OnBlockBreakAnimation(entityID int, loc util.Position, stage byte)

	OnTimeUpdate(worldAge, timeOfDay int64)
	OnExplosion(loc Location, strength float32, affectedBlocks int)
	OnRainChange(begin bool)
	OnMapData(data *packet.MapData)
	OnScoreboardObjective(name string, mode byte, value string, renderType int)
	OnUpdateScore(score *packet.UpdateScore)

	// Cookies are stored by the handler so they outlive the session.
	// A cookie.Jar can be embedded to implement them.
	GetCookie(key string) ([]byte, bool)
	SetCookie(key string, data []byte)
	DeleteCookie(key string)
}

// Location is a position in the world.
type Location struct {
	X, Y, Z float64
}

// ChatKind tells where a chat message came from.
type ChatKind int

const (
	SystemMessage ChatKind = iota
	PlayerMessage
	DisguisedMessage
)

// ChatMessage is a chat message as display text with § formatting codes.
type ChatMessage struct {
	Kind    ChatKind
	Content string
	// Overlay messages are shown above the hotbar.
	Overlay bool
	// Sender is the zero UUID unless Kind is PlayerMessage.
	Sender     uuid.UUID
	SenderName string
	TargetName string
	Signed     bool
	Timestamp  time.Time
}

// NopHandler implements ComHandler doing nothing.
// Cookies are not stored.
type NopHandler struct{}

var _ ComHandler = NopHandler{}

func (NopHandler) OnNetworkPacket(*proto.PacketContext, bool) {}
func (NopHandler) OnLoginSuccess(uuid.UUID, string, []packet.Property) {}
func (NopHandler) OnGameJoined(*packet.JoinGame) {}
func (NopHandler) OnReceivePlayerEntityID(int) {}
func (NopHandler) OnRespawn(*packet.Respawn) {}
func (NopHandler) OnServerKeepAlive() {}
func (NopHandler) OnServerDataReceived(*packet.ServerData) {}
func (NopHandler) OnPluginChannelMessage(string, []byte) {}
func (NopHandler) OnTransfer(string, int) {}
func (NopHandler) OnConnectionLost(DisconnectReason, string) {}
func (NopHandler) OnTextReceived(*ChatMessage) {}
func (NopHandler) OnTabCompleteDone(int, int, []string) {}
func (NopHandler) OnTitle(title.Update) {}
func (NopHandler) OnPlayerJoin(*playerinfo.Entry) {}
func (NopHandler) OnPlayerLeave(uuid.UUID) {}
func (NopHandler) OnPlayerKilled(int, string) {}
func (NopHandler) OnGamemodeUpdate(uuid.UUID, int) {}
func (NopHandler) OnLatencyUpdate(uuid.UUID, int) {}
func (NopHandler) UpdateLocation(Location, float32, float32) {}
func (NopHandler) OnUpdateHealth(float32, int) {}
func (NopHandler) OnSetExperience(float32, int, int) {}
func (NopHandler) OnHeldItemChange(byte) {}
func (NopHandler) OnInventoryOpen(int, int, string) {}
func (NopHandler) OnInventoryClose(byte) {}
func (NopHandler) OnInventoryItems(byte, []component.Slot, component.Slot, int) {}
func (NopHandler) OnInventorySlot(int8, int16, component.Slot, int, bool) {}
func (NopHandler) OnInventoryProperty(byte, int16, int16) {}
func (NopHandler) OnTradeList(*packet.MerchantOffers) {}
func (NopHandler) OnSpawnEntity(*packet.SpawnEntity) {}
func (NopHandler) OnEntityEquipment(int, byte, component.Slot) {}
func (NopHandler) OnDestroyEntities([]int) {}
func (NopHandler) OnEntityPosition(int, float64, float64, float64, bool) {}
func (NopHandler) OnEntityRotation(int, packet.Angle, packet.Angle, bool) {}
func (NopHandler) OnEntityHeadLook(int, packet.Angle) {}
func (NopHandler) OnEntityTeleport(int, float64, float64, float64, bool) {}
func (NopHandler) OnEntityProperties(int, map[int]float64) {}
func (NopHandler) OnEntityStatus(int, int8) {}
func (NopHandler) OnEntityMetadata(int, []byte) {}
func (NopHandler) OnEntityEffect(*packet.EntityEffect) {}
func (NopHandler) OnEntityAnimation(int, byte) {}
func (NopHandler) OnBlockBreakAnimation(int, util.Position, byte) {}
func (NopHandler) OnTimeUpdate(int64, int64) {}
func (NopHandler) OnExplosion(Location, float32, int) {}
func (NopHandler) OnRainChange(bool) {}
func (NopHandler) OnMapData(*packet.MapData) {}
func (NopHandler) OnScoreboardObjective(string, byte, string, int) {}
func (NopHandler) OnUpdateScore(*packet.UpdateScore) {}
func (NopHandler) GetCookie(string) ([]byte, bool) { return nil, false }
func (NopHandler) SetCookie(string, []byte) {}
func (NopHandler) DeleteCookie(string) {}
