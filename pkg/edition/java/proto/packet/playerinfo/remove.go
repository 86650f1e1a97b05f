package playerinfo

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// Remove removes players from the player list.
type Remove struct {
	PlayersToRemove []uuid.UUID
}

func (r *Remove) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(len(r.PlayersToRemove))
	for _, id := range r.PlayersToRemove {
		w.UUID(id)
	}
	return nil
}

func (r *Remove) Decode(_ *proto.PacketContext, rd io.Reader) error {
	pr := util.PanicReader(rd)
	r.PlayersToRemove = make([]uuid.UUID, pr.Count(maxEntries))
	for i := range r.PlayersToRemove {
		pr.UUID(&r.PlayersToRemove[i])
	}
	return nil
}

var _ proto.Packet = (*Remove)(nil)
