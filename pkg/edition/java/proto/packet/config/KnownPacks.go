package config

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

const MaxLengthPacks = 64

// ErrTooManyPacks is returned when the server sends too many packs.
var ErrTooManyPacks = errs.NewSilentErr("too many packs")

// KnownPacks is sent by the server with the data packs it has and
// answered by the client with the subset it knows.
type KnownPacks struct {
	Packs []KnownPack
}

func (p *KnownPacks) Decode(_ *proto.PacketContext, rd io.Reader) error {
	packCount, err := util.ReadVarInt(rd)
	if err != nil {
		return err
	}
	if packCount < 0 || packCount > MaxLengthPacks {
		return ErrTooManyPacks
	}
	packs := make([]KnownPack, packCount)
	for i := range packs {
		packs[i].Read(rd)
	}
	p.Packs = packs
	return nil
}

func (p *KnownPacks) Encode(_ *proto.PacketContext, wr io.Writer) error {
	util.PWriteVarInt(wr, len(p.Packs))
	for _, pack := range p.Packs {
		pack.Write(wr)
	}
	return nil
}

// KnownPack identifies a data pack.
type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

// VanillaPack is the core data pack of a game version.
func VanillaPack(version string) KnownPack {
	return KnownPack{Namespace: "minecraft", ID: "core", Version: version}
}

func (p *KnownPack) Write(wr io.Writer) {
	util.PWriteString(wr, p.Namespace)
	util.PWriteString(wr, p.ID)
	util.PWriteString(wr, p.Version)
}

func (p *KnownPack) Read(rd io.Reader) {
	util.PReadString(rd, &p.Namespace)
	util.PReadString(rd, &p.ID)
	util.PReadString(rd, &p.Version)
}
