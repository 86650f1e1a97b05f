package client

import (
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/plugin"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// all skin parts shown
const defaultSkinParts = 0x7F

func (s *Session) clientSettings() *packet.ClientSettings {
	return &packet.ClientSettings{
		Locale:         s.opts.Locale,
		ViewDistance:   s.opts.ViewDistance,
		ChatVisibility: packet.ChatEnabled,
		ChatColors:     true,
		SkinParts:      defaultSkinParts,
		MainHand:       1,
		ClientListing:  true,
	}
}

func brandMessage(brand string) *plugin.Message {
	return plugin.BrandMessage(brand)
}

func (s *Session) nextSequence() int { return int(s.sequence.Inc()) }

func (s *Session) look() (float32, float32) {
	s.locMu.Lock()
	defer s.locMu.Unlock()
	return s.yaw, s.pitch
}

func (s *Session) SendChatMessage(message string) bool {
	n := utf8.RuneCountInString(message)
	if n == 0 || n > chat.MaxMessageLength {
		return false
	}
	if !s.chatLimiter.Allow() {
		s.log.V(1).Info("chat message dropped by rate limit")
		return false
	}
	if cmd, ok := strings.CutPrefix(message, "/"); ok {
		return s.send(&chat.UnsignedPlayerCommand{Command: cmd})
	}
	return s.send(&chat.SessionPlayerChat{
		Message:   message,
		Timestamp: time.Now(),
		Salt:      rand.Int64(),
	})
}

func (s *Session) SendAutoCompleteText(text string) bool {
	if len(text) > packet.MaxTabCompleteLen {
		return false
	}
	return s.send(&packet.TabCompleteRequest{
		TransactionID: int(s.transaction.Inc()),
		Command:       text,
	})
}

func (s *Session) SendRespawnPacket() bool {
	return s.send(&packet.ClientStatus{Action: packet.PerformRespawn})
}

func (s *Session) SendBrandInfo(brand string) bool {
	if brand == "" {
		return false
	}
	return s.send(brandMessage(brand))
}

func (s *Session) SendClientSettings(settings packet.ClientSettings) bool {
	return s.send(&settings)
}

func (s *Session) SendLocationUpdate(loc Location, onGround bool, yaw, pitch *float32) bool {
	s.locMu.Lock()
	s.loc = loc
	if yaw != nil && pitch != nil {
		s.yaw, s.pitch = *yaw, *pitch
	}
	s.locMu.Unlock()
	if yaw != nil && pitch != nil {
		return s.send(&packet.PlayerPositionRotation{
			X:        loc.X,
			FeetY:    loc.Y,
			Z:        loc.Z,
			Yaw:      *yaw,
			Pitch:    *pitch,
			OnGround: onGround,
		})
	}
	return s.send(&packet.PlayerPosition{X: loc.X, FeetY: loc.Y, Z: loc.Z, OnGround: onGround})
}

func (s *Session) SendPluginChannelPacket(channel string, data []byte) bool {
	if channel == "" {
		return false
	}
	return s.send(&plugin.Message{Channel: channel, Data: data})
}

// SendPlayerSession is not supported, the session has no signing keys.
func (s *Session) SendPlayerSession() bool { return false }

func (s *Session) SendEntityAction(action int) bool {
	ok := s.send(&packet.EntityAction{EntityID: int(s.entityID.Load()), Action: action})
	if ok {
		switch action {
		case packet.StartSneaking:
			s.sneaking.Store(true)
		case packet.StopSneaking:
			s.sneaking.Store(false)
		}
	}
	return ok
}

func (s *Session) SendHeldItemChange(slot int16) bool {
	if slot < 0 || slot > 8 {
		return false
	}
	return s.send(&packet.HeldItemChange{Slot: slot})
}

func (s *Session) SendInteractEntity(entityID, interactType, hand int) bool {
	if interactType == packet.InteractAt {
		return s.SendInteractEntityAt(entityID, 0, 0, 0, hand)
	}
	return s.send(&packet.Interact{
		EntityID: entityID,
		Type:     interactType,
		Hand:     hand,
		Sneaking: s.sneaking.Load(),
	})
}

func (s *Session) SendInteractEntityAt(entityID int, x, y, z float32, hand int) bool {
	return s.send(&packet.Interact{
		EntityID: entityID,
		Type:     packet.InteractAt,
		TargetX:  x,
		TargetY:  y,
		TargetZ:  z,
		Hand:     hand,
		Sneaking: s.sneaking.Load(),
	})
}

func (s *Session) SendUseItem(hand int) bool {
	yaw, pitch := s.look()
	return s.send(&packet.UseItem{Hand: hand, Sequence: s.nextSequence(), Yaw: yaw, Pitch: pitch})
}

func (s *Session) SendPickItem(slot int) bool {
	return s.send(&packet.PickItem{Slot: slot})
}

func (s *Session) SendAnimation(hand int) bool {
	return s.send(&packet.SwingArm{Hand: hand})
}

func (s *Session) SendSpectate(target uuid.UUID) bool {
	return s.send(&packet.Spectate{Target: target})
}

// SendInventoryAction clicks a container slot with the last state id
// received from the server.
func (s *Session) SendInventoryAction(windowID byte, slot int16, button int8, mode int,
	changed []packet.ChangedSlot, carried component.Slot) bool {
	ok := s.send(&packet.ClickContainer{
		WindowID:     windowID,
		StateID:      int(s.stateID.Load()),
		Slot:         slot,
		Button:       button,
		Mode:         mode,
		ChangedSlots: changed,
		Carried:      carried,
	})
	if ok {
		for _, c := range changed {
			s.handler.OnInventorySlot(int8(windowID), c.Slot, c.Item, int(s.stateID.Load()), true)
		}
	}
	return ok
}

func (s *Session) SendInventoryButtonClick(windowID, buttonID byte) bool {
	return s.send(&packet.ClickContainerButton{WindowID: windowID, ButtonID: buttonID})
}

func (s *Session) SendCreativeInventoryAction(slot int16, item component.Slot) bool {
	return s.send(&packet.CreativeSlot{Slot: slot, Item: item})
}

func (s *Session) SendCloseInventory(windowID byte) bool {
	return s.send(&packet.CloseContainer{WindowID: windowID})
}

func (s *Session) SendRenameItem(name string) bool {
	return s.send(&packet.RenameItem{Name: name})
}

func (s *Session) SendBeaconEffects(primary, secondary *int) bool {
	return s.send(&packet.BeaconEffect{Primary: primary, Secondary: secondary})
}

func (s *Session) SelectTrade(slot int) bool {
	return s.send(&packet.SelectTrade{Slot: slot})
}

// SendPlayerBlockPlacement uses the item in hand on the center of a block face.
func (s *Session) SendPlayerBlockPlacement(hand int, loc util.Position, face int) bool {
	return s.send(&packet.UseItemOn{
		Hand:     hand,
		Location: loc,
		Face:     face,
		CursorX:  0.5,
		CursorY:  0.5,
		CursorZ:  0.5,
		Sequence: s.nextSequence(),
	})
}

func (s *Session) SendPlayerDigging(status int, loc util.Position, face byte) bool {
	return s.send(&packet.PlayerAction{
		Status:   status,
		Location: loc,
		Face:     face,
		Sequence: s.nextSequence(),
	})
}

func (s *Session) SendUpdateSign(loc util.Position, front bool, lines [4]string) bool {
	return s.send(&packet.UpdateSign{Location: loc, IsFrontText: front, Lines: lines})
}
