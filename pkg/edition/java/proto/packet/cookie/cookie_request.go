package cookie

import (
	"io"

	"go.minekube.com/common/minecraft/key"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// CookieRequest asks the client for a stored cookie.
type CookieRequest struct {
	Key key.Key
}

func (c *CookieRequest) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return writeKey(wr, c.Key)
}

func (c *CookieRequest) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	c.Key, err = readKey(rd)
	return err
}

func readKey(rd io.Reader) (key.Key, error) {
	s, err := util.ReadIdentifier(rd)
	if err != nil {
		return nil, err
	}
	k, err := key.Parse(s)
	if err != nil {
		return nil, errs.Wrap(errs.KindDesync, "cookie key", err)
	}
	return k, nil
}

func writeKey(wr io.Writer, k key.Key) error {
	if k == nil {
		return errs.Missing("cookie key")
	}
	return util.WriteString(wr, k.String())
}

var _ proto.Packet = (*CookieRequest)(nil)
