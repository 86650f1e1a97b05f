package cookie

import (
	"io"

	"go.minekube.com/common/minecraft/key"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

const MaxPayloadSize = 5 * 1024 // 5 kiB

// CookieResponse answers a CookieRequest. A nil Payload means the
// cookie is unknown.
type CookieResponse struct {
	Key     key.Key
	Payload []byte
}

func (c *CookieResponse) Encode(_ *proto.PacketContext, wr io.Writer) error {
	if err := writeKey(wr, c.Key); err != nil {
		return err
	}
	hasPayload := c.Payload != nil
	if err := util.WriteBool(wr, hasPayload); err != nil {
		return err
	}
	if hasPayload {
		return util.WriteBytes(wr, c.Payload)
	}
	return nil
}

func (c *CookieResponse) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	c.Key, err = readKey(rd)
	if err != nil {
		return err
	}
	c.Payload = nil
	ok, err := util.ReadBool(rd)
	if err != nil || !ok {
		return err
	}
	c.Payload, err = util.ReadBytesLen(rd, MaxPayloadSize)
	return err
}

var _ proto.Packet = (*CookieResponse)(nil)
