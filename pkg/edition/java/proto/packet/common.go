package packet

import (
	"io"
	"net"
	"strconv"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Packets shared by the configuration and play states.

// KeepAlive is sent by the server periodically and must be echoed.
type KeepAlive struct {
	RandomID int64
}

func (k *KeepAlive) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteInt64(wr, k.RandomID)
}

func (k *KeepAlive) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	k.RandomID, err = util.ReadInt64(rd)
	return
}

// Ping is sent by the server and answered with a Pong of the same id.
type Ping struct {
	ID int32
}

func (p *Ping) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteInt32(wr, p.ID)
}

func (p *Ping) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.ID, err = util.ReadInt32(rd)
	return
}

// Pong answers a Ping.
type Pong struct {
	ID int32
}

func (p *Pong) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteInt32(wr, p.ID)
}

func (p *Pong) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.ID, err = util.ReadInt32(rd)
	return
}

// Disconnect is the disconnect packet of the configuration and play state.
type Disconnect struct {
	Reason chat.ComponentHolder
}

func (d *Disconnect) Encode(c *proto.PacketContext, wr io.Writer) error {
	return d.Reason.Write(wr, c.Protocol)
}

func (d *Disconnect) Decode(c *proto.PacketContext, rd io.Reader) error {
	h, err := chat.ReadComponentHolder(rd, c.Protocol)
	if err != nil {
		return err
	}
	d.Reason = *h
	return nil
}

// LoginDisconnect is the disconnect packet of the login state,
// which always carries a JSON text component.
type LoginDisconnect struct {
	Reason chat.ComponentHolder
}

// JSON framing regardless of the session version
var loginDisconnectProtocol = version.Minecraft_1_20_2.Protocol

func (d *LoginDisconnect) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return d.Reason.Write(wr, loginDisconnectProtocol)
}

func (d *LoginDisconnect) Decode(_ *proto.PacketContext, rd io.Reader) error {
	h, err := chat.ReadComponentHolder(rd, loginDisconnectProtocol)
	if err != nil {
		return err
	}
	d.Reason = *h
	return nil
}

// Transfer tells the client to connect to another server.
type Transfer struct {
	Host string
	Port int
}

// Addr returns the host:port address to connect to.
func (t *Transfer) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

func (t *Transfer) Encode(_ *proto.PacketContext, wr io.Writer) error {
	if err := util.WriteString(wr, t.Host); err != nil {
		return err
	}
	return util.WriteVarInt(wr, t.Port)
}

func (t *Transfer) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	t.Host, err = util.ReadString(rd)
	if err != nil {
		return err
	}
	t.Port, err = util.ReadVarInt(rd)
	return err
}

var (
	_ proto.Packet = (*KeepAlive)(nil)
	_ proto.Packet = (*Ping)(nil)
	_ proto.Packet = (*Pong)(nil)
	_ proto.Packet = (*Disconnect)(nil)
	_ proto.Packet = (*LoginDisconnect)(nil)
	_ proto.Packet = (*Transfer)(nil)
)
