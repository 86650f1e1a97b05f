package client

import (
	"fmt"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/config"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/playerinfo"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

type playSessionHandler struct {
	sessionHandler
	bundle packet.Bundle
}

func newPlaySessionHandler(s *Session) *playSessionHandler {
	return &playSessionHandler{sessionHandler: sessionHandler{s: s}}
}

func (h *playSessionHandler) HandlePacket(pc *proto.PacketContext) {
	p, ok := h.inbound(pc)
	if !ok {
		return
	}
	s := h.s
	if _, ok := p.(*packet.BundleDelimiter); ok {
		if n := h.bundle.Toggle(); n > 0 {
			s.log.V(2).Info("applied bundle", "packets", n)
		}
		return
	}
	if err := h.bundle.Add(); err != nil {
		s.log.Error(err, "server sent an oversized bundle")
		s.end(ConnectionLost, err.Error())
		return
	}
	if s.handleCommon(p) {
		return
	}
	if u, ok := s.titles.Apply(p); ok {
		s.handler.OnTitle(u)
		return
	}
	hd := s.handler
	switch t := p.(type) {
	case *packet.JoinGame:
		h.handleJoinGame(t)
	case *packet.Respawn:
		hd.OnRespawn(t)
	case *config.StartUpdate:
		h.handleStartUpdate()
	case *packet.Disconnect:
		s.end(InGameKick, s.text(&t.Reason))
	case *packet.SyncPlayerPosition:
		h.handleSyncPlayerPosition(t)
	case *packet.ServerData:
		hd.OnServerDataReceived(t)

	case *chat.SystemChat:
		hd.OnTextReceived(&ChatMessage{Kind: SystemMessage, Content: s.text(&t.Content), Overlay: t.Overlay})
	case *chat.PlayerChat:
		h.handlePlayerChat(t)
	case *chat.DisguisedChat:
		hd.OnTextReceived(&ChatMessage{
			Kind:       DisguisedMessage,
			Content:    s.text(&t.Message),
			SenderName: s.text(&t.SenderName),
			TargetName: s.text(t.TargetName),
		})
	case *packet.TabCompleteResponse:
		results := make([]string, len(t.Offers))
		for i, o := range t.Offers {
			results[i] = o.Text
		}
		hd.OnTabCompleteDone(t.Start, t.Length, results)

	case *playerinfo.Upsert:
		h.handlePlayerInfoUpsert(t)
	case *playerinfo.Remove:
		for _, id := range t.PlayersToRemove {
			hd.OnPlayerLeave(id)
		}
	case *packet.CombatDeath:
		hd.OnPlayerKilled(t.PlayerID, t.Message)
	case *packet.SetHealth:
		hd.OnUpdateHealth(t.Health, t.Food)
	case *packet.SetExperience:
		hd.OnSetExperience(t.Bar, t.Level, t.Total)
	case *packet.HeldItem:
		hd.OnHeldItemChange(t.Slot)
	case *packet.GameEvent:
		h.handleGameEvent(t)

	case *packet.OpenScreen:
		hd.OnInventoryOpen(t.WindowID, t.WindowType, t.Title)
	case *packet.CloseContainer:
		hd.OnInventoryClose(t.WindowID)
	case *packet.ContainerContent:
		s.stateID.Store(int32(t.StateID))
		hd.OnInventoryItems(t.WindowID, t.Slots, t.Carried, t.StateID)
	case *packet.ContainerSlot:
		s.stateID.Store(int32(t.StateID))
		hd.OnInventorySlot(t.WindowID, t.Slot, t.Item, t.StateID, false)
	case *packet.ContainerProperty:
		hd.OnInventoryProperty(t.WindowID, t.Property, t.Value)
	case *packet.MerchantOffers:
		hd.OnTradeList(t)

	case *packet.SpawnEntity:
		hd.OnSpawnEntity(t)
	case *packet.SetEquipment:
		for _, eq := range t.Equipment {
			hd.OnEntityEquipment(t.EntityID, eq.Slot, eq.Item)
		}
	case *packet.RemoveEntities:
		hd.OnDestroyEntities(t.EntityIDs)
	case *packet.EntityPosition:
		hd.OnEntityPosition(t.EntityID, delta(t.DeltaX), delta(t.DeltaY), delta(t.DeltaZ), t.OnGround)
	case *packet.EntityPositionRotation:
		hd.OnEntityPosition(t.EntityID, delta(t.DeltaX), delta(t.DeltaY), delta(t.DeltaZ), t.OnGround)
		hd.OnEntityRotation(t.EntityID, t.Yaw, t.Pitch, t.OnGround)
	case *packet.EntityRotation:
		hd.OnEntityRotation(t.EntityID, t.Yaw, t.Pitch, t.OnGround)
	case *packet.HeadRotation:
		hd.OnEntityHeadLook(t.EntityID, t.HeadYaw)
	case *packet.TeleportEntity:
		hd.OnEntityTeleport(t.EntityID, t.X, t.Y, t.Z, t.OnGround)
	case *packet.UpdateAttributes:
		props := make(map[int]float64, len(t.Attributes))
		for _, a := range t.Attributes {
			props[a.ID] = a.Value
		}
		hd.OnEntityProperties(t.EntityID, props)
	case *packet.EntityEvent:
		hd.OnEntityStatus(int(t.EntityID), t.Status)
	case *packet.EntityMetadata:
		hd.OnEntityMetadata(t.EntityID, t.Metadata)
	case *packet.EntityEffect:
		hd.OnEntityEffect(t)
	case *packet.EntityAnimation:
		hd.OnEntityAnimation(t.EntityID, t.Animation)
	case *packet.BlockDestroyStage:
		hd.OnBlockBreakAnimation(t.EntityID, t.Location, t.Stage)

	case *packet.UpdateTime:
		hd.OnTimeUpdate(t.WorldAge, t.TimeOfDay)
	case *packet.Explosion:
		hd.OnExplosion(Location{X: t.X, Y: t.Y, Z: t.Z}, t.Strength, len(t.Records))
	case *packet.MapData:
		hd.OnMapData(t)
	case *packet.UpdateObjectives:
		hd.OnScoreboardObjective(t.Name, t.Mode, t.Value, t.Type)
	case *packet.UpdateScore:
		hd.OnUpdateScore(t)

	default:
		s.log.V(2).Info("unhandled packet", "type", fmt.Sprintf("%T", p))
	}
}

func delta(d int16) float64 { return float64(d) / packet.DeltaScale }

func (h *playSessionHandler) handleJoinGame(p *packet.JoinGame) {
	s := h.s
	s.entityID.Store(p.EntityID)
	first := !s.joined.Swap(true)
	s.log.Info("joined game", "entityID", p.EntityID, "dimension", p.DimensionName, "first", first)
	s.handler.OnGameJoined(p)
	s.handler.OnReceivePlayerEntityID(int(p.EntityID))
}

// handleStartUpdate moves the session back to configuration.
func (h *playSessionHandler) handleStartUpdate() {
	s := h.s
	if err := s.write(&config.StartUpdate{}); err != nil {
		return
	}
	s.switchState(Configuration, newConfigSessionHandler(s))
}

func (h *playSessionHandler) handleSyncPlayerPosition(p *packet.SyncPlayerPosition) {
	s := h.s
	s.locMu.Lock()
	x, y, z, yaw, pitch := p.Apply(s.loc.X, s.loc.Y, s.loc.Z, s.yaw, s.pitch)
	s.loc = Location{X: x, Y: y, Z: z}
	s.yaw, s.pitch = yaw, pitch
	loc := s.loc
	s.locMu.Unlock()

	if s.write(&packet.ConfirmTeleport{TeleportID: p.TeleportID}) != nil {
		return
	}
	_ = s.write(&packet.PlayerPositionRotation{X: x, FeetY: y, Z: z, Yaw: yaw, Pitch: pitch})
	s.handler.UpdateLocation(loc, yaw, pitch)
}

func (h *playSessionHandler) handlePlayerChat(p *chat.PlayerChat) {
	msg := &ChatMessage{
		Kind:       PlayerMessage,
		Content:    p.Message,
		Sender:     p.Sender,
		SenderName: h.s.text(&p.SenderName),
		TargetName: h.s.text(p.TargetName),
		Signed:     p.Signature != nil,
		Timestamp:  p.Timestamp,
	}
	if p.UnsignedContent != nil {
		msg.Content = h.s.text(p.UnsignedContent)
	}
	h.s.handler.OnTextReceived(msg)
}

func (h *playSessionHandler) handlePlayerInfoUpsert(p *playerinfo.Upsert) {
	hd := h.s.handler
	add := playerinfo.ContainsAction(p.ActionSet, playerinfo.AddPlayerAction)
	gameMode := playerinfo.ContainsAction(p.ActionSet, playerinfo.UpdateGameModeAction)
	latency := playerinfo.ContainsAction(p.ActionSet, playerinfo.UpdateLatencyAction)
	for _, e := range p.Entries {
		if add {
			hd.OnPlayerJoin(e)
		}
		if gameMode {
			hd.OnGamemodeUpdate(e.ProfileID, e.GameMode)
		}
		if latency {
			hd.OnLatencyUpdate(e.ProfileID, e.Latency)
		}
	}
}

func (h *playSessionHandler) handleGameEvent(p *packet.GameEvent) {
	switch p.Event {
	case packet.GameEventBeginRaining:
		h.s.handler.OnRainChange(true)
	case packet.GameEventEndRaining:
		h.s.handler.OnRainChange(false)
	case packet.GameEventChangeGamemode:
		h.s.handler.OnGamemodeUpdate(h.s.profileID, int(p.Value))
	}
}
