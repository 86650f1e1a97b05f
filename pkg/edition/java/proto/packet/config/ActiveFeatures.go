package config

import (
	"io"

	"go.minekube.com/common/minecraft/key"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// ActiveFeatures lists the feature flags enabled on the server.
type ActiveFeatures struct {
	ActiveFeatures []key.Key
}

var _ proto.Packet = (*ActiveFeatures)(nil)

func (p *ActiveFeatures) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(len(p.ActiveFeatures))
	for _, k := range p.ActiveFeatures {
		w.String(k.String())
	}
	return nil
}

func (p *ActiveFeatures) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	r := util.PanicReader(rd)
	p.ActiveFeatures = make([]key.Key, r.Count(1024))
	for i := range p.ActiveFeatures {
		var s string
		r.Identifier(&s)
		if p.ActiveFeatures[i], err = key.Parse(s); err != nil {
			return errs.Wrap(errs.KindDesync, "feature flag", err)
		}
	}
	return nil
}
