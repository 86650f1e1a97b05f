package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// Hands.
const (
	MainHand = 0
	OffHand  = 1
)

// Interact types.
const (
	InteractEntity = 0
	AttackEntity   = 1
	InteractAt     = 2
)

// Interact interacts with or attacks an entity.
type Interact struct {
	EntityID int
	Type     int
	// TargetX/Y/Z are only sent for InteractAt.
	TargetX, TargetY, TargetZ float32
	// Hand is not sent for AttackEntity.
	Hand     int
	Sneaking bool
}

func (p *Interact) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.VarInt(p.Type)
	if p.Type == InteractAt {
		w.Float32(p.TargetX)
		w.Float32(p.TargetY)
		w.Float32(p.TargetZ)
	}
	if p.Type != AttackEntity {
		w.VarInt(p.Hand)
	}
	w.Bool(p.Sneaking)
	return nil
}

func (p *Interact) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.VarInt(&p.Type)
	if p.Type == InteractAt {
		r.Float32(&p.TargetX)
		r.Float32(&p.TargetY)
		r.Float32(&p.TargetZ)
	}
	if p.Type != AttackEntity {
		r.VarInt(&p.Hand)
	}
	r.Bool(&p.Sneaking)
	return nil
}

// SwingArm plays the arm swing animation.
type SwingArm struct {
	Hand int
}

func (p *SwingArm) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteVarInt(wr, p.Hand)
}

func (p *SwingArm) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Hand, err = util.ReadVarInt(rd)
	return
}

// Entity actions of EntityAction.
const (
	StartSneaking = iota
	StopSneaking
	LeaveBed
	StartSprinting
	StopSprinting
	StartHorseJump
	StopHorseJump
	OpenVehicleInventory
	StartFlyingElytra
)

// EntityAction is the player command packet: sneaking, sprinting and the like.
type EntityAction struct {
	EntityID  int
	Action    int
	JumpBoost int
}

func (p *EntityAction) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.VarInt(p.Action)
	w.VarInt(p.JumpBoost)
	return nil
}

func (p *EntityAction) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.VarInt(&p.Action)
	r.VarInt(&p.JumpBoost)
	return nil
}

// Digging status of PlayerAction.
const (
	StartedDigging = iota
	CancelledDigging
	FinishedDigging
	DropItemStack
	DropItem
	ReleaseUseItem
	SwapItemInHand
)

// PlayerAction is the player digging packet.
type PlayerAction struct {
	Status   int
	Location util.Position
	Face     byte
	Sequence int
}

func (p *PlayerAction) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.Status)
	w.Position(p.Location, c.Protocol)
	w.Byte(p.Face)
	w.VarInt(p.Sequence)
	return nil
}

func (p *PlayerAction) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.Status)
	r.Position(&p.Location, c.Protocol)
	r.Byte(&p.Face)
	r.VarInt(&p.Sequence)
	return nil
}

// UseItemOn places a block or uses an item on a block face.
type UseItemOn struct {
	Hand                      int
	Location                  util.Position
	Face                      int
	CursorX, CursorY, CursorZ float32
	InsideBlock               bool
	Sequence                  int
}

func (p *UseItemOn) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.Hand)
	w.Position(p.Location, c.Protocol)
	w.VarInt(p.Face)
	w.Float32(p.CursorX)
	w.Float32(p.CursorY)
	w.Float32(p.CursorZ)
	w.Bool(p.InsideBlock)
	w.VarInt(p.Sequence)
	return nil
}

func (p *UseItemOn) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.Hand)
	r.Position(&p.Location, c.Protocol)
	r.VarInt(&p.Face)
	r.Float32(&p.CursorX)
	r.Float32(&p.CursorY)
	r.Float32(&p.CursorZ)
	r.Bool(&p.InsideBlock)
	r.VarInt(&p.Sequence)
	return nil
}

// UseItem uses the item in a hand. The look direction is sent since 1.21.
type UseItem struct {
	Hand       int
	Sequence   int
	Yaw, Pitch float32
}

func (p *UseItem) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.Hand)
	w.VarInt(p.Sequence)
	if c.Protocol.GreaterEqual(version.Minecraft_1_21) {
		w.Float32(p.Yaw)
		w.Float32(p.Pitch)
	}
	return nil
}

func (p *UseItem) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.Hand)
	r.VarInt(&p.Sequence)
	if c.Protocol.GreaterEqual(version.Minecraft_1_21) {
		r.Float32(&p.Yaw)
		r.Float32(&p.Pitch)
	}
	return nil
}

// PickItem swaps a slot of the player inventory into the hotbar.
type PickItem struct {
	Slot int
}

func (p *PickItem) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteVarInt(wr, p.Slot)
}

func (p *PickItem) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Slot, err = util.ReadVarInt(rd)
	return
}

// Spectate teleports a spectator to an entity.
type Spectate struct {
	Target uuid.UUID
}

func (p *Spectate) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteUUID(wr, p.Target)
}

func (p *Spectate) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Target, err = util.ReadUUID(rd)
	return
}

const maxSignLine = 384

// UpdateSign sets the text of a sign side.
type UpdateSign struct {
	Location    util.Position
	IsFrontText bool
	Lines       [4]string
}

func (p *UpdateSign) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Position(p.Location, c.Protocol)
	w.Bool(p.IsFrontText)
	for _, l := range p.Lines {
		w.String(l)
	}
	return nil
}

func (p *UpdateSign) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Position(&p.Location, c.Protocol)
	r.Bool(&p.IsFrontText)
	for i := range p.Lines {
		r.StringMax(&p.Lines[i], maxSignLine)
	}
	return nil
}

// PlayerSession announces the chat session public key of the player.
type PlayerSession struct {
	SessionID    uuid.UUID
	ExpiresAt    int64 // unix millis
	PublicKey    []byte
	KeySignature []byte
}

func (p *PlayerSession) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.UUID(p.SessionID)
	w.Int64(p.ExpiresAt)
	w.Bytes(p.PublicKey)
	w.Bytes(p.KeySignature)
	return nil
}

func (p *PlayerSession) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	if p.SessionID, err = util.ReadUUID(rd); err != nil {
		return err
	}
	if p.ExpiresAt, err = util.ReadInt64(rd); err != nil {
		return err
	}
	if p.PublicKey, err = util.ReadBytesLen(rd, 512); err != nil {
		return err
	}
	p.KeySignature, err = util.ReadBytesLen(rd, 4096)
	return err
}

var (
	_ proto.Packet = (*Interact)(nil)
	_ proto.Packet = (*SwingArm)(nil)
	_ proto.Packet = (*EntityAction)(nil)
	_ proto.Packet = (*PlayerAction)(nil)
	_ proto.Packet = (*UseItemOn)(nil)
	_ proto.Packet = (*UseItem)(nil)
	_ proto.Packet = (*PickItem)(nil)
	_ proto.Packet = (*Spectate)(nil)
	_ proto.Packet = (*UpdateSign)(nil)
	_ proto.Packet = (*PlayerSession)(nil)
)
