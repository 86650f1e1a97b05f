package packet

import (
	"fmt"
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// Intent is the state a handshake asks the server to continue in.
type Intent int

const (
	IntentStatus   Intent = 1
	IntentLogin    Intent = 2
	IntentTransfer Intent = 3 // login after a transfer packet, 1.20.5+
)

func (i Intent) String() string {
	switch i {
	case IntentStatus:
		return "status"
	case IntentLogin:
		return "login"
	case IntentTransfer:
		return "transfer"
	}
	return fmt.Sprintf("intent(%d)", int(i))
}

// maxHandshakeAddress bounds the server address, which may carry
// forwarding data appended by proxies.
const maxHandshakeAddress = 255

// Handshake opens every connection. It names the address the client
// dialed and the state to continue in.
type Handshake struct {
	ProtocolVersion int
	ServerAddress   string
	Port            int
	Intent          Intent
}

func (h *Handshake) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(h.ProtocolVersion)
	w.String(h.ServerAddress)
	w.Uint16(uint16(h.Port))
	w.VarInt(int(h.Intent))
	return nil
}

func (h *Handshake) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&h.ProtocolVersion)
	r.StringMax(&h.ServerAddress, maxHandshakeAddress)
	var port uint16
	r.Uint16(&port)
	h.Port = int(port)
	h.Intent = Intent(r.VarIntVal())
	if h.Intent < IntentStatus || h.Intent > IntentTransfer {
		return errs.Desyncf("handshake: unknown %s", h.Intent)
	}
	return nil
}

var _ proto.Packet = (*Handshake)(nil)
