package client

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/config"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/cookie"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/plugin"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

type configSessionHandler struct {
	sessionHandler
}

func newConfigSessionHandler(s *Session) *configSessionHandler {
	return &configSessionHandler{sessionHandler{s: s}}
}

func (h *configSessionHandler) HandlePacket(pc *proto.PacketContext) {
	p, ok := h.inbound(pc)
	if !ok {
		return
	}
	if h.s.handleCommon(p) {
		return
	}
	switch t := p.(type) {
	case *config.KnownPacks:
		h.handleKnownPacks(t)
	case *config.RegistryData:
		h.handleRegistryData(t)
	case *config.ActiveFeatures:
		h.s.log.V(1).Info("feature flags", "features", len(t.ActiveFeatures))
	case *config.FinishedUpdate:
		h.handleFinishedUpdate()
	case *packet.Disconnect:
		if h.s.joined.Load() {
			h.s.end(InGameKick, h.s.text(&t.Reason))
		} else {
			h.s.end(LoginRejected, h.s.text(&t.Reason))
		}
	case *packet.CustomReportDetails, *packet.ServerLinks:
	default:
		h.s.log.V(1).Info("unhandled packet during configuration", "type", fmt.Sprintf("%T", p))
	}
}

// handleKnownPacks answers that only the core pack of our version is known,
// so the server sends the registry entries of all other packs inline.
func (h *configSessionHandler) handleKnownPacks(p *config.KnownPacks) {
	h.s.log.V(1).Info("server known packs", "packs", len(p.Packs))
	name := h.s.opts.Version.LastName()
	_ = h.s.write(&config.KnownPacks{Packs: []config.KnownPack{config.VanillaPack(name)}})
}

func (h *configSessionHandler) handleRegistryData(p *config.RegistryData) {
	if p.RegistryID != packet.DimensionTypeRegistry {
		h.s.log.V(2).Info("registry data", "registry", p.RegistryID, "entries", len(p.Entries))
		return
	}
	dims, err := packet.DimensionTypes(p)
	if err != nil {
		h.s.log.Error(err, "error reading dimension types")
		return
	}
	h.s.dimensions = dims
}

func (h *configSessionHandler) handleFinishedUpdate() {
	s := h.s
	if err := s.write(&config.FinishedUpdate{}); err != nil {
		return
	}
	s.lastKeepAlive.Store(time.Now())
	s.switchState(Play, newPlaySessionHandler(s))
}

// handleCommon handles the packets shared by configuration and play.
// It returns false if p is none of them.
func (s *Session) handleCommon(p proto.Packet) bool {
	switch t := p.(type) {
	case *packet.KeepAlive:
		s.lastKeepAlive.Store(time.Now())
		_ = s.write(&packet.KeepAlive{RandomID: t.RandomID})
		s.handler.OnServerKeepAlive()
	case *packet.Ping:
		_ = s.write(&packet.Pong{ID: t.ID})
	case *plugin.Message:
		if plugin.McBrand(t) {
			s.log.V(1).Info("server brand", "brand", plugin.ReadBrand(t))
		}
		s.handler.OnPluginChannelMessage(t.Channel, t.Data)
	case *cookie.CookieRequest:
		s.handleCookieRequest(t)
	case *cookie.CookieStore:
		s.handler.SetCookie(t.Key.String(), t.Payload)
	case *packet.ResourcePackRequest:
		s.handleResourcePackRequest(t)
	case *packet.RemoveResourcePack:
	case *packet.Transfer:
		s.handler.OnTransfer(t.Host, t.Port)
		s.end(UserLogout, "transferred to "+net.JoinHostPort(t.Host, strconv.Itoa(t.Port)))
	default:
		return false
	}
	return true
}

func (s *Session) handleCookieRequest(p *cookie.CookieRequest) {
	payload, ok := s.handler.GetCookie(p.Key.String())
	if !ok {
		payload = nil
	}
	_ = s.write(&cookie.CookieResponse{Key: p.Key, Payload: payload})
}

// handleResourcePackRequest pretends to load every pack with a valid URL.
// Packs are not downloaded.
func (s *Session) handleResourcePackRequest(p *packet.ResourcePackRequest) {
	if !p.ValidURL() {
		s.log.V(1).Info("rejecting resource pack", "url", p.URL)
		_ = s.write(&packet.ResourcePackResponse{ID: p.ID, Status: packet.InvalidURLResourcePackResponseStatus})
		return
	}
	s.log.V(1).Info("accepting resource pack", "url", p.URL, "required", p.Required)
	for _, status := range []packet.ResourcePackResponseStatus{
		packet.AcceptedResourcePackResponseStatus,
		packet.SuccessfulResourcePackResponseStatus,
	} {
		if s.write(&packet.ResourcePackResponse{ID: p.ID, Status: status}) != nil {
			return
		}
	}
}
