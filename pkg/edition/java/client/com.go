package client

import (
	"context"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// MinecraftCom is the command side of a session.
//
// Send methods return true when the packet was written or, while the server
// reconfigures the session, queued for the next play phase. They return false
// when the session is not in a state the packet can be sent in or the
// connection failed. Failures of the connection itself are reported to the
// ComHandler through OnConnectionLost.
type MinecraftCom interface {
	// Login connects to the server and starts the login.
	Login(ctx context.Context) bool
	// Disconnect ends the session with reason UserLogout.
	Disconnect()
	// Wait blocks until the session ended.
	Wait() error

	State() State
	ProtocolVersion() proto.Protocol
	MaxChatMessageLength() int
	// NetMainThread returns the dispatcher of the session.
	NetMainThread() *Dispatcher

	// SendChatMessage sends a chat message or, when prefixed with a
	// slash, a command.
	SendChatMessage(message string) bool
	SendAutoCompleteText(text string) bool
	SendRespawnPacket() bool
	SendBrandInfo(brand string) bool
	SendClientSettings(settings packet.ClientSettings) bool
	// SendLocationUpdate sends the player position and, if yaw and pitch
	// are not nil, the look direction.
	SendLocationUpdate(loc Location, onGround bool, yaw, pitch *float32) bool
	SendPluginChannelPacket(channel string, data []byte) bool
	SendPlayerSession() bool

	SendEntityAction(action int) bool
	SendHeldItemChange(slot int16) bool
	SendInteractEntity(entityID, interactType, hand int) bool
	SendInteractEntityAt(entityID int, x, y, z float32, hand int) bool
	SendUseItem(hand int) bool
	SendPickItem(slot int) bool
	SendAnimation(hand int) bool
	SendSpectate(target uuid.UUID) bool

	SendInventoryAction(windowID byte, slot int16, button int8, mode int, changed []packet.ChangedSlot, carried component.Slot) bool
	SendInventoryButtonClick(windowID, buttonID byte) bool
	SendCreativeInventoryAction(slot int16, item component.Slot) bool
	SendCloseInventory(windowID byte) bool
	SendRenameItem(name string) bool
	SendBeaconEffects(primary, secondary *int) bool
	SelectTrade(slot int) bool

	SendPlayerBlockPlacement(hand int, loc util.Position, face int) bool
	SendPlayerDigging(status int, loc util.Position, face byte) bool
	SendUpdateSign(loc util.Position, front bool, lines [4]string) bool
}

var _ MinecraftCom = (*Session)(nil)
