package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// Angle is a rotation in steps of 1/256 of a full turn.
type Angle byte

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float32 { return float32(a) * 360 / 256 }

// DeltaScale converts relative move deltas to blocks.
const DeltaScale = 4096

// SpawnEntity spawns a non-player or player entity.
type SpawnEntity struct {
	EntityID   int
	EntityUUID uuid.UUID
	Type       int
	X, Y, Z    float64
	Pitch, Yaw Angle
	HeadYaw    Angle
	Data       int
	VelocityX  int16
	VelocityY  int16
	VelocityZ  int16
}

func (p *SpawnEntity) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.UUID(p.EntityUUID)
	w.VarInt(p.Type)
	w.Float64(p.X)
	w.Float64(p.Y)
	w.Float64(p.Z)
	w.Byte(byte(p.Pitch))
	w.Byte(byte(p.Yaw))
	w.Byte(byte(p.HeadYaw))
	w.VarInt(p.Data)
	w.Int16(p.VelocityX)
	w.Int16(p.VelocityY)
	w.Int16(p.VelocityZ)
	return nil
}

func (p *SpawnEntity) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.UUID(&p.EntityUUID)
	r.VarInt(&p.Type)
	r.Float64(&p.X)
	r.Float64(&p.Y)
	r.Float64(&p.Z)
	readAngle(r, &p.Pitch)
	readAngle(r, &p.Yaw)
	readAngle(r, &p.HeadYaw)
	r.VarInt(&p.Data)
	r.Int16(&p.VelocityX)
	r.Int16(&p.VelocityY)
	r.Int16(&p.VelocityZ)
	return nil
}

func readAngle(r *util.PReader, a *Angle) {
	var b byte
	r.Byte(&b)
	*a = Angle(b)
}

// EntityAnimation plays an animation such as swinging the main arm.
type EntityAnimation struct {
	EntityID  int
	Animation byte
}

func (p *EntityAnimation) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Byte(p.Animation)
	return nil
}

func (p *EntityAnimation) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.Byte(&p.Animation)
	return nil
}

// BlockDestroyStage shows the breaking progress (0-9) of a block.
// Other values remove it.
type BlockDestroyStage struct {
	EntityID int
	Location util.Position
	Stage    byte
}

func (p *BlockDestroyStage) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Position(p.Location, c.Protocol)
	w.Byte(p.Stage)
	return nil
}

func (p *BlockDestroyStage) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.Position(&p.Location, c.Protocol)
	r.Byte(&p.Stage)
	return nil
}

// Equipment is an item in an equipment slot of an entity.
type Equipment struct {
	Slot byte
	Item component.Slot
}

// SetEquipment sets equipment of an entity.
type SetEquipment struct {
	EntityID  int
	Equipment []Equipment
}

const (
	moreEquipment = 0x80
	maxEquipment  = 16
)

func (p *SetEquipment) Encode(c *proto.PacketContext, wr io.Writer) error {
	if len(p.Equipment) == 0 {
		return errs.Missing("equipment")
	}
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	for i, e := range p.Equipment {
		slot := e.Slot &^ moreEquipment
		if i < len(p.Equipment)-1 {
			slot |= moreEquipment
		}
		w.Byte(slot)
		writeSlot(c, wr, e.Item)
	}
	return nil
}

func (p *SetEquipment) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	p.Equipment = p.Equipment[:0]
	for {
		var slot byte
		r.Byte(&slot)
		p.Equipment = append(p.Equipment, Equipment{
			Slot: slot &^ moreEquipment,
			Item: readSlot(c, rd),
		})
		if slot&moreEquipment == 0 {
			break
		}
		if len(p.Equipment) == maxEquipment {
			panic(errs.Desyncf("more than %d equipment entries", maxEquipment))
		}
	}
	return nil
}

// RemoveEntities destroys entities on the client.
type RemoveEntities struct {
	EntityIDs []int
}

func (p *RemoveEntities) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteVarIntArray(wr, p.EntityIDs)
}

func (p *RemoveEntities) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.EntityIDs, err = util.ReadVarIntArray(rd)
	return
}

// EntityPosition moves an entity by less than 8 blocks.
// Deltas are in 1/DeltaScale blocks.
type EntityPosition struct {
	EntityID               int
	DeltaX, DeltaY, DeltaZ int16
	OnGround               bool
}

func (p *EntityPosition) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Int16(p.DeltaX)
	w.Int16(p.DeltaY)
	w.Int16(p.DeltaZ)
	w.Bool(p.OnGround)
	return nil
}

func (p *EntityPosition) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.Int16(&p.DeltaX)
	r.Int16(&p.DeltaY)
	r.Int16(&p.DeltaZ)
	r.Bool(&p.OnGround)
	return nil
}

// EntityPositionRotation moves and rotates an entity.
type EntityPositionRotation struct {
	EntityID               int
	DeltaX, DeltaY, DeltaZ int16
	Yaw, Pitch             Angle
	OnGround               bool
}

func (p *EntityPositionRotation) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Int16(p.DeltaX)
	w.Int16(p.DeltaY)
	w.Int16(p.DeltaZ)
	w.Byte(byte(p.Yaw))
	w.Byte(byte(p.Pitch))
	w.Bool(p.OnGround)
	return nil
}

func (p *EntityPositionRotation) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.Int16(&p.DeltaX)
	r.Int16(&p.DeltaY)
	r.Int16(&p.DeltaZ)
	readAngle(r, &p.Yaw)
	readAngle(r, &p.Pitch)
	r.Bool(&p.OnGround)
	return nil
}

// EntityRotation rotates an entity.
type EntityRotation struct {
	EntityID   int
	Yaw, Pitch Angle
	OnGround   bool
}

func (p *EntityRotation) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Byte(byte(p.Yaw))
	w.Byte(byte(p.Pitch))
	w.Bool(p.OnGround)
	return nil
}

func (p *EntityRotation) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	readAngle(r, &p.Yaw)
	readAngle(r, &p.Pitch)
	r.Bool(&p.OnGround)
	return nil
}

// HeadRotation rotates the head of an entity.
type HeadRotation struct {
	EntityID int
	HeadYaw  Angle
}

func (p *HeadRotation) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Byte(byte(p.HeadYaw))
	return nil
}

func (p *HeadRotation) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	readAngle(r, &p.HeadYaw)
	return nil
}

// TeleportEntity moves an entity to an absolute location.
type TeleportEntity struct {
	EntityID   int
	X, Y, Z    float64
	Yaw, Pitch Angle
	OnGround   bool
}

func (p *TeleportEntity) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Float64(p.X)
	w.Float64(p.Y)
	w.Float64(p.Z)
	w.Byte(byte(p.Yaw))
	w.Byte(byte(p.Pitch))
	w.Bool(p.OnGround)
	return nil
}

func (p *TeleportEntity) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.Float64(&p.X)
	r.Float64(&p.Y)
	r.Float64(&p.Z)
	readAngle(r, &p.Yaw)
	readAngle(r, &p.Pitch)
	r.Bool(&p.OnGround)
	return nil
}

// AttributeModifier modifies an attribute value.
// UUID identifies it before 1.21, Key since.
type AttributeModifier struct {
	UUID      uuid.UUID
	Key       string
	Amount    float64
	Operation byte
}

// Attribute is an entity attribute and its modifiers.
type Attribute struct {
	ID        int
	Value     float64
	Modifiers []AttributeModifier
}

// UpdateAttributes sets attributes (entity properties) of an entity.
type UpdateAttributes struct {
	EntityID   int
	Attributes []Attribute
}

func (p *UpdateAttributes) Encode(c *proto.PacketContext, wr io.Writer) error {
	keyed := c.Protocol.GreaterEqual(version.Minecraft_1_21)
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.VarInt(len(p.Attributes))
	for _, a := range p.Attributes {
		w.VarInt(a.ID)
		w.Float64(a.Value)
		w.VarInt(len(a.Modifiers))
		for _, m := range a.Modifiers {
			if keyed {
				w.String(m.Key)
			} else {
				w.UUID(m.UUID)
			}
			w.Float64(m.Amount)
			w.Byte(m.Operation)
		}
	}
	return nil
}

func (p *UpdateAttributes) Decode(c *proto.PacketContext, rd io.Reader) error {
	keyed := c.Protocol.GreaterEqual(version.Minecraft_1_21)
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	p.Attributes = make([]Attribute, r.Count(256))
	for i := range p.Attributes {
		a := &p.Attributes[i]
		r.VarInt(&a.ID)
		r.Float64(&a.Value)
		a.Modifiers = make([]AttributeModifier, r.Count(1024))
		for j := range a.Modifiers {
			m := &a.Modifiers[j]
			if keyed {
				r.Identifier(&m.Key)
			} else {
				r.UUID(&m.UUID)
			}
			r.Float64(&m.Amount)
			r.Byte(&m.Operation)
		}
	}
	return nil
}

// EntityEvent triggers an entity status such as death or totem use.
type EntityEvent struct {
	EntityID int32
	Status   int8
}

func (p *EntityEvent) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Int32(p.EntityID)
	w.Byte(byte(p.Status))
	return nil
}

func (p *EntityEvent) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Int32(&p.EntityID)
	r.Int8(&p.Status)
	return nil
}

// EntityMetadata updates entity metadata.
// The metadata entries are kept in wire form.
type EntityMetadata struct {
	EntityID int
	Metadata []byte
}

func (p *EntityMetadata) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.Raw(p.Metadata)
	return nil
}

func (p *EntityMetadata) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.Remaining(&p.Metadata)
	return nil
}

// Effect flags of EntityEffect.
const (
	EffectAmbient byte = 1 << iota
	EffectShowParticles
	EffectShowIcon
	EffectBlend
)

// EntityEffect applies a potion effect to an entity.
type EntityEffect struct {
	EntityID  int
	EffectID  int
	Amplifier int
	Duration  int // ticks, -1 is infinite
	Flags     byte
}

func (p *EntityEffect) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.EntityID)
	w.VarInt(p.EffectID)
	w.VarInt(p.Amplifier)
	w.VarInt(p.Duration)
	w.Byte(p.Flags)
	return nil
}

func (p *EntityEffect) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.EntityID)
	r.VarInt(&p.EffectID)
	r.VarInt(&p.Amplifier)
	r.VarInt(&p.Duration)
	r.Byte(&p.Flags)
	return nil
}

var (
	_ proto.Packet = (*SpawnEntity)(nil)
	_ proto.Packet = (*EntityAnimation)(nil)
	_ proto.Packet = (*BlockDestroyStage)(nil)
	_ proto.Packet = (*SetEquipment)(nil)
	_ proto.Packet = (*RemoveEntities)(nil)
	_ proto.Packet = (*EntityPosition)(nil)
	_ proto.Packet = (*EntityPositionRotation)(nil)
	_ proto.Packet = (*EntityRotation)(nil)
	_ proto.Packet = (*HeadRotation)(nil)
	_ proto.Packet = (*TeleportEntity)(nil)
	_ proto.Packet = (*UpdateAttributes)(nil)
	_ proto.Packet = (*EntityEvent)(nil)
	_ proto.Packet = (*EntityMetadata)(nil)
	_ proto.Packet = (*EntityEffect)(nil)
)
