package cookie

import (
	"io"

	"go.minekube.com/common/minecraft/key"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// CookieStore asks the client to store a cookie.
type CookieStore struct {
	Key     key.Key
	Payload []byte
}

func (c *CookieStore) Encode(_ *proto.PacketContext, wr io.Writer) error {
	if err := writeKey(wr, c.Key); err != nil {
		return err
	}
	return util.WriteBytes(wr, c.Payload)
}

func (c *CookieStore) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	if c.Key, err = readKey(rd); err != nil {
		return err
	}
	c.Payload, err = util.ReadBytesLen(rd, MaxPayloadSize)
	return err
}

var _ proto.Packet = (*CookieStore)(nil)
