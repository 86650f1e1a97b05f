package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/component"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

const (
	maxContainerSlots = 1024
	maxRenameLength   = 50
	maxTrades         = 256
)

// PlayerInventory is the window id of the player inventory, always open.
const PlayerInventory = 0

func readSlot(c *proto.PacketContext, rd io.Reader) component.Slot {
	s, err := component.ReadSlot(component.NewContext(c.Protocol), rd)
	if err != nil {
		panic(err)
	}
	return s
}

func writeSlot(c *proto.PacketContext, wr io.Writer, s component.Slot) {
	if err := component.WriteSlot(component.NewContext(c.Protocol), wr, s); err != nil {
		panic(err)
	}
}

// OpenScreen opens a container window.
type OpenScreen struct {
	WindowID   int
	WindowType int
	Title      string
}

func (o *OpenScreen) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(o.WindowID)
	w.VarInt(o.WindowType)
	w.Text(o.Title, c.Protocol)
	return nil
}

func (o *OpenScreen) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&o.WindowID)
	r.VarInt(&o.WindowType)
	r.Text(&o.Title, c.Protocol)
	return nil
}

// CloseContainer closes a window. The same layout is used in both directions.
type CloseContainer struct {
	WindowID byte
}

func (p *CloseContainer) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteByte(wr, p.WindowID)
}

func (p *CloseContainer) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.WindowID, err = util.ReadByte(rd)
	return
}

// ContainerContent replaces all slots of a window.
type ContainerContent struct {
	WindowID byte
	StateID  int
	Slots    []component.Slot
	Carried  component.Slot
}

func (p *ContainerContent) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Byte(p.WindowID)
	w.VarInt(p.StateID)
	w.VarInt(len(p.Slots))
	for _, s := range p.Slots {
		writeSlot(c, wr, s)
	}
	writeSlot(c, wr, p.Carried)
	return nil
}

func (p *ContainerContent) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Byte(&p.WindowID)
	r.VarInt(&p.StateID)
	p.Slots = make([]component.Slot, r.Count(maxContainerSlots))
	for i := range p.Slots {
		p.Slots[i] = readSlot(c, rd)
	}
	p.Carried = readSlot(c, rd)
	return nil
}

// ContainerSlot sets one slot of a window.
// WindowID -1 sets the carried item, -2 a player inventory slot.
type ContainerSlot struct {
	WindowID int8
	StateID  int
	Slot     int16
	Item     component.Slot
}

func (p *ContainerSlot) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Byte(byte(p.WindowID))
	w.VarInt(p.StateID)
	w.Int16(p.Slot)
	writeSlot(c, wr, p.Item)
	return nil
}

func (p *ContainerSlot) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Int8(&p.WindowID)
	r.VarInt(&p.StateID)
	r.Int16(&p.Slot)
	p.Item = readSlot(c, rd)
	return nil
}

// ContainerProperty updates a window property such as furnace progress.
type ContainerProperty struct {
	WindowID byte
	Property int16
	Value    int16
}

func (p *ContainerProperty) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Byte(p.WindowID)
	w.Int16(p.Property)
	w.Int16(p.Value)
	return nil
}

func (p *ContainerProperty) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Byte(&p.WindowID)
	r.Int16(&p.Property)
	r.Int16(&p.Value)
	return nil
}

// Click modes of ClickContainer.
const (
	ClickPickup = iota
	ClickQuickMove
	ClickSwap
	ClickClone
	ClickThrow
	ClickQuickCraft
	ClickPickupAll
)

// ChangedSlot is a slot the client predicts to change by a click.
type ChangedSlot struct {
	Slot int16
	Item component.Slot
}

// ClickContainer is a click in a window.
type ClickContainer struct {
	WindowID     byte
	StateID      int
	Slot         int16
	Button       int8
	Mode         int
	ChangedSlots []ChangedSlot
	Carried      component.Slot
}

func (p *ClickContainer) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Byte(p.WindowID)
	w.VarInt(p.StateID)
	w.Int16(p.Slot)
	w.Byte(byte(p.Button))
	w.VarInt(p.Mode)
	w.VarInt(len(p.ChangedSlots))
	for _, cs := range p.ChangedSlots {
		w.Int16(cs.Slot)
		writeSlot(c, wr, cs.Item)
	}
	writeSlot(c, wr, p.Carried)
	return nil
}

func (p *ClickContainer) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Byte(&p.WindowID)
	r.VarInt(&p.StateID)
	r.Int16(&p.Slot)
	r.Int8(&p.Button)
	r.VarInt(&p.Mode)
	p.ChangedSlots = make([]ChangedSlot, r.Count(128))
	for i := range p.ChangedSlots {
		r.Int16(&p.ChangedSlots[i].Slot)
		p.ChangedSlots[i].Item = readSlot(c, rd)
	}
	p.Carried = readSlot(c, rd)
	return nil
}

// ClickContainerButton clicks a window button such as an enchantment option.
type ClickContainerButton struct {
	WindowID byte
	ButtonID byte
}

func (p *ClickContainerButton) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Byte(p.WindowID)
	w.Byte(p.ButtonID)
	return nil
}

func (p *ClickContainerButton) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.Byte(&p.WindowID)
	r.Byte(&p.ButtonID)
	return nil
}

// CreativeSlot sets a player inventory slot in creative mode.
// Slot -1 drops the item.
type CreativeSlot struct {
	Slot int16
	Item component.Slot
}

func (p *CreativeSlot) Encode(c *proto.PacketContext, wr io.Writer) error {
	util.PanicWriter(wr).Int16(p.Slot)
	writeSlot(c, wr, p.Item)
	return nil
}

func (p *CreativeSlot) Decode(c *proto.PacketContext, rd io.Reader) error {
	util.PanicReader(rd).Int16(&p.Slot)
	p.Item = readSlot(c, rd)
	return nil
}

// HeldItem is the clientbound selected hotbar slot (0-8).
type HeldItem struct {
	Slot byte
}

func (p *HeldItem) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteByte(wr, p.Slot)
}

func (p *HeldItem) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Slot, err = util.ReadByte(rd)
	return
}

// HeldItemChange is the serverbound selected hotbar slot (0-8).
type HeldItemChange struct {
	Slot int16
}

func (p *HeldItemChange) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteInt16(wr, p.Slot)
}

func (p *HeldItemChange) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Slot, err = util.ReadInt16(rd)
	return
}

// TradeItem is a cost of a villager trade: an item matching exact components.
type TradeItem struct {
	ItemID     int
	Count      int
	Components []component.Component
}

func (t *TradeItem) encode(c *proto.PacketContext, w *util.PWriter) {
	w.VarInt(t.ItemID)
	w.VarInt(t.Count)
	w.VarInt(len(t.Components))
	ctx := component.NewContext(c.Protocol)
	for _, comp := range t.Components {
		if err := component.WriteComponent(ctx, w.Writer(), comp); err != nil {
			panic(err)
		}
	}
}

func (t *TradeItem) decode(c *proto.PacketContext, r *util.PReader) {
	r.VarInt(&t.ItemID)
	r.VarInt(&t.Count)
	t.Components = make([]component.Component, r.Count(256))
	ctx := component.NewContext(c.Protocol)
	for i := range t.Components {
		comp, err := component.ReadComponent(ctx, r.Reader())
		if err != nil {
			panic(err)
		}
		t.Components[i] = comp
	}
}

// Trade is one offer of a merchant.
type Trade struct {
	Input           TradeItem
	Output          component.Slot
	Input2          *TradeItem // nil-able
	Disabled        bool
	Uses            int32
	MaxUses         int32
	Experience      int32
	SpecialPrice    int32
	PriceMultiplier float32
	Demand          int32
}

// MerchantOffers lists the trades of an open merchant window.
type MerchantOffers struct {
	WindowID          int
	Trades            []Trade
	VillagerLevel     int
	Experience        int
	IsRegularVillager bool
	CanRestock        bool
}

func (p *MerchantOffers) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(p.WindowID)
	w.VarInt(len(p.Trades))
	for i := range p.Trades {
		t := &p.Trades[i]
		t.Input.encode(c, w)
		writeSlot(c, wr, t.Output)
		if w.Bool(t.Input2 != nil) {
			t.Input2.encode(c, w)
		}
		w.Bool(t.Disabled)
		w.Int32(t.Uses)
		w.Int32(t.MaxUses)
		w.Int32(t.Experience)
		w.Int32(t.SpecialPrice)
		w.Float32(t.PriceMultiplier)
		w.Int32(t.Demand)
	}
	w.VarInt(p.VillagerLevel)
	w.VarInt(p.Experience)
	w.Bool(p.IsRegularVillager)
	w.Bool(p.CanRestock)
	return nil
}

func (p *MerchantOffers) Decode(c *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.VarInt(&p.WindowID)
	p.Trades = make([]Trade, r.Count(maxTrades))
	for i := range p.Trades {
		t := &p.Trades[i]
		t.Input.decode(c, r)
		t.Output = readSlot(c, rd)
		if r.Ok() {
			t.Input2 = new(TradeItem)
			t.Input2.decode(c, r)
		}
		r.Bool(&t.Disabled)
		r.Int32(&t.Uses)
		r.Int32(&t.MaxUses)
		r.Int32(&t.Experience)
		r.Int32(&t.SpecialPrice)
		r.Float32(&t.PriceMultiplier)
		r.Int32(&t.Demand)
	}
	r.VarInt(&p.VillagerLevel)
	r.VarInt(&p.Experience)
	r.Bool(&p.IsRegularVillager)
	r.Bool(&p.CanRestock)
	return nil
}

// SelectTrade selects a trade in a merchant window.
type SelectTrade struct {
	Slot int
}

func (p *SelectTrade) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteVarInt(wr, p.Slot)
}

func (p *SelectTrade) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Slot, err = util.ReadVarInt(rd)
	return
}

// RenameItem sets the item name in an anvil.
type RenameItem struct {
	Name string
}

func (p *RenameItem) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteString(wr, p.Name)
}

func (p *RenameItem) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	p.Name, err = util.ReadStringMax(rd, maxRenameLength)
	return
}

// BeaconEffect selects the effects of a beacon. Nil means none.
type BeaconEffect struct {
	Primary   *int
	Secondary *int
}

func (p *BeaconEffect) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	if w.Bool(p.Primary != nil) {
		w.VarInt(*p.Primary)
	}
	if w.Bool(p.Secondary != nil) {
		w.VarInt(*p.Secondary)
	}
	return nil
}

func (p *BeaconEffect) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.Primary, p.Secondary = nil, nil
	if r.Ok() {
		p.Primary = new(int)
		r.VarInt(p.Primary)
	}
	if r.Ok() {
		p.Secondary = new(int)
		r.VarInt(p.Secondary)
	}
	return nil
}

var (
	_ proto.Packet = (*OpenScreen)(nil)
	_ proto.Packet = (*CloseContainer)(nil)
	_ proto.Packet = (*ContainerContent)(nil)
	_ proto.Packet = (*ContainerSlot)(nil)
	_ proto.Packet = (*ContainerProperty)(nil)
	_ proto.Packet = (*ClickContainer)(nil)
	_ proto.Packet = (*ClickContainerButton)(nil)
	_ proto.Packet = (*CreativeSlot)(nil)
	_ proto.Packet = (*HeldItem)(nil)
	_ proto.Packet = (*HeldItemChange)(nil)
	_ proto.Packet = (*MerchantOffers)(nil)
	_ proto.Packet = (*SelectTrade)(nil)
	_ proto.Packet = (*RenameItem)(nil)
	_ proto.Packet = (*BeaconEffect)(nil)
)
