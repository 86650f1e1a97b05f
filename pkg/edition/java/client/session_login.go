package client

import (
	"fmt"
	"time"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/cookie"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// sessionHandler is embedded by the state handlers of a session.
type sessionHandler struct {
	s *Session
}

func (h *sessionHandler) Disconnected() { h.s.disconnected() }
func (h *sessionHandler) Activated()    {}
func (h *sessionHandler) Deactivated()  {}

// inbound reports pc to the handler and returns the packet if it is known.
func (h *sessionHandler) inbound(pc *proto.PacketContext) (proto.Packet, bool) {
	h.s.handler.OnNetworkPacket(pc, true)
	if !pc.KnownPacket() {
		h.s.log.V(2).Info("skipping unknown packet", "id", pc.PacketID, "state", h.s.State())
		return nil, false
	}
	return pc.Packet, true
}

type loginSessionHandler struct {
	sessionHandler
}

func newLoginSessionHandler(s *Session) *loginSessionHandler {
	return &loginSessionHandler{sessionHandler{s: s}}
}

func (h *loginSessionHandler) HandlePacket(pc *proto.PacketContext) {
	p, ok := h.inbound(pc)
	if !ok {
		return
	}
	switch t := p.(type) {
	case *packet.SetCompression:
		h.handleSetCompression(t)
	case *packet.LoginPluginMessage:
		// Don't understand
		_ = h.s.write(&packet.LoginPluginResponse{ID: t.ID, Success: false})
	case *cookie.CookieRequest:
		h.s.handleCookieRequest(t)
	case *packet.EncryptionRequest:
		h.s.end(LoginRejected, "server is in online mode, which is not supported")
	case *packet.LoginDisconnect:
		h.s.end(LoginRejected, h.s.text(&t.Reason))
	case *packet.ServerLoginSuccess:
		h.handleServerLoginSuccess(t)
	default:
		h.s.log.Info("received unexpected packet while logging in", "type", fmt.Sprintf("%T", p))
	}
}

func (h *loginSessionHandler) handleSetCompression(p *packet.SetCompression) {
	if err := h.s.conn.SetCompressionThreshold(p.Threshold); err != nil {
		h.s.log.Error(err, "error setting compression threshold", "threshold", p.Threshold)
		h.s.end(ConnectionLost, err.Error())
	}
}

func (h *loginSessionHandler) handleServerLoginSuccess(p *packet.ServerLoginSuccess) {
	s := h.s
	if err := s.write(&packet.LoginAcknowledged{}); err != nil {
		return
	}
	s.profileID = p.UUID
	s.lastKeepAlive.Store(time.Now())
	s.switchState(Configuration, newConfigSessionHandler(s))
	s.log.Info("logged in", "uuid", p.UUID, "name", p.Username)
	s.handler.OnLoginSuccess(p.UUID, p.Username, p.Properties)

	// a vanilla client introduces itself first thing in configuration
	_ = s.write(s.clientSettings())
	_ = s.write(brandMessage(s.opts.Brand))
}
