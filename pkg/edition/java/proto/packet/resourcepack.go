package packet

import (
	"errors"
	"io"
	"strings"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

const maxPackURL = 32767

// ResourcePackRequest asks the client to apply a resource pack.
type ResourcePackRequest struct {
	ID       uuid.UUID
	URL      string
	Hash     string // hex SHA-1, may be empty
	Required bool
	Prompt   *string // nil-able
}

// ValidURL reports whether the pack can be downloaded over http(s).
func (r *ResourcePackRequest) ValidURL() bool {
	return strings.HasPrefix(r.URL, "http://") || strings.HasPrefix(r.URL, "https://")
}

func (r *ResourcePackRequest) Encode(c *proto.PacketContext, wr io.Writer) error {
	if len(r.URL) == 0 {
		return errors.New("url is missing")
	}
	w := util.PanicWriter(wr)
	w.UUID(r.ID)
	w.String(r.URL)
	w.String(r.Hash)
	w.Bool(r.Required)
	if w.Bool(r.Prompt != nil) {
		w.Text(*r.Prompt, c.Protocol)
	}
	return nil
}

func (r *ResourcePackRequest) Decode(c *proto.PacketContext, rd io.Reader) error {
	pr := util.PanicReader(rd)
	pr.UUID(&r.ID)
	pr.StringMax(&r.URL, maxPackURL)
	pr.StringMax(&r.Hash, 40)
	pr.Bool(&r.Required)
	r.Prompt = nil
	if pr.Ok() {
		r.Prompt = new(string)
		pr.Text(r.Prompt, c.Protocol)
	}
	return nil
}

// RemoveResourcePack removes one (ID set) or all resource packs.
type RemoveResourcePack struct {
	ID *uuid.UUID // nil-able
}

func (r *RemoveResourcePack) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteOptional(wr, r.ID, util.WriteUUID)
}

func (r *RemoveResourcePack) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	r.ID, err = util.ReadOptional(rd, util.ReadUUID)
	return
}

type (
	ResourcePackResponse struct {
		ID     uuid.UUID
		Status ResourcePackResponseStatus
	}
	ResourcePackResponseStatus int
)

const (
	SuccessfulResourcePackResponseStatus ResourcePackResponseStatus = iota
	DeclinedResourcePackResponseStatus
	FailedDownloadResourcePackResponseStatus
	AcceptedResourcePackResponseStatus
	DownloadedResourcePackResponseStatus
	InvalidURLResourcePackResponseStatus
	FailedReloadResourcePackResponseStatus
	DiscardedResourcePackResponseStatus
)

func (r *ResourcePackResponse) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.UUID(r.ID)
	w.VarInt(int(r.Status))
	return nil
}

func (r *ResourcePackResponse) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	if r.ID, err = util.ReadUUID(rd); err != nil {
		return err
	}
	status, err := util.ReadVarInt(rd)
	r.Status = ResourcePackResponseStatus(status)
	return
}

var (
	_ proto.Packet = (*ResourcePackRequest)(nil)
	_ proto.Packet = (*RemoveResourcePack)(nil)
	_ proto.Packet = (*ResourcePackResponse)(nil)
)
