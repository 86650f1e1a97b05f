package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Gamemode ids as sent by the server. PreviousGamemode uses -1 for none.
const (
	Survival  = 0
	Creative  = 1
	Adventure = 2
	Spectator = 3
)

// DeathLocation is the dimension and block the player last died at.
type DeathLocation struct {
	Dimension string
	Position  util.Position
}

// SpawnInfo holds the dimension fields shared by JoinGame and Respawn.
type SpawnInfo struct {
	DimensionType    int
	DimensionName    string
	HashedSeed       int64
	Gamemode         byte
	PreviousGamemode int8
	Debug            bool
	Flat             bool
	DeathLocation    *DeathLocation // nil-able
	PortalCooldown   int
}

func (s *SpawnInfo) encode(c *proto.PacketContext, w *util.PWriter) {
	w.VarInt(s.DimensionType)
	w.String(s.DimensionName)
	w.Int64(s.HashedSeed)
	w.Byte(s.Gamemode)
	w.Byte(byte(s.PreviousGamemode))
	w.Bool(s.Debug)
	w.Bool(s.Flat)
	if w.Bool(s.DeathLocation != nil) {
		w.String(s.DeathLocation.Dimension)
		w.Position(s.DeathLocation.Position, c.Protocol)
	}
	w.VarInt(s.PortalCooldown)
}

func (s *SpawnInfo) decode(c *proto.PacketContext, r *util.PReader) {
	r.VarInt(&s.DimensionType)
	r.Identifier(&s.DimensionName)
	r.Int64(&s.HashedSeed)
	r.Byte(&s.Gamemode)
	r.Int8(&s.PreviousGamemode)
	r.Bool(&s.Debug)
	r.Bool(&s.Flat)
	s.DeathLocation = nil
	if r.Ok() {
		s.DeathLocation = new(DeathLocation)
		r.Identifier(&s.DeathLocation.Dimension)
		r.Position(&s.DeathLocation.Position, c.Protocol)
	}
	r.VarInt(&s.PortalCooldown)
}

// JoinGame is the play login packet, the first packet of the play state.
type JoinGame struct {
	EntityID           int32
	Hardcore           bool
	LevelNames         []string
	MaxPlayers         int
	ViewDistance       int
	SimulationDistance int
	ReducedDebugInfo   bool
	ShowRespawnScreen  bool
	DoLimitedCrafting  bool
	SpawnInfo
	EnforcesSecureChat bool
}

func (j *JoinGame) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Int32(j.EntityID)
	w.Bool(j.Hardcore)
	w.Strings(j.LevelNames)
	w.VarInt(j.MaxPlayers)
	w.VarInt(j.ViewDistance)
	w.VarInt(j.SimulationDistance)
	w.Bool(j.ReducedDebugInfo)
	w.Bool(j.ShowRespawnScreen)
	w.Bool(j.DoLimitedCrafting)
	j.SpawnInfo.encode(c, w)
	w.Bool(j.EnforcesSecureChat)
	return nil
}

func (j *JoinGame) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.Int32(&j.EntityID)
	r.Bool(&j.Hardcore)
	n := r.Count(1024)
	j.LevelNames = make([]string, n)
	for i := range j.LevelNames {
		r.Identifier(&j.LevelNames[i])
	}
	r.VarInt(&j.MaxPlayers)
	r.VarInt(&j.ViewDistance)
	r.VarInt(&j.SimulationDistance)
	r.Bool(&j.ReducedDebugInfo)
	r.Bool(&j.ShowRespawnScreen)
	r.Bool(&j.DoLimitedCrafting)
	j.SpawnInfo.decode(c, r)
	r.Bool(&j.EnforcesSecureChat)
	return nil
}

// Respawn data kept flags.
const (
	KeepAttributes byte = 1 << iota
	KeepMetadata
)

// Respawn moves the player to a (possibly new) dimension.
type Respawn struct {
	SpawnInfo
	DataToKeep byte
}

func (r *Respawn) Encode(c *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	r.SpawnInfo.encode(c, w)
	w.Byte(r.DataToKeep)
	return nil
}

func (r *Respawn) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	pr := util.PanicReader(rd)
	r.SpawnInfo.decode(c, pr)
	pr.Byte(&r.DataToKeep)
	return nil
}

// ClientStatus actions.
const (
	PerformRespawn = 0
	RequestStats   = 1
)

// ClientStatus is sent to respawn after death or to request statistics.
type ClientStatus struct {
	Action int
}

func (s *ClientStatus) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteVarInt(wr, s.Action)
}

func (s *ClientStatus) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	s.Action, err = util.ReadVarInt(rd)
	return
}

// Game event types of GameEvent.
const (
	GameEventNoRespawnBlock  = 0
	GameEventBeginRaining    = 1
	GameEventEndRaining      = 2
	GameEventChangeGamemode  = 3
	GameEventWinGame         = 4
	GameEventDemo            = 5
	GameEventArrowHitPlayer  = 6
	GameEventRainLevel       = 7
	GameEventThunderLevel    = 8
	GameEventPufferfishSting = 9
	GameEventGuardianAppear  = 10
	GameEventRespawnScreen   = 11
	GameEventLimitedCrafting = 12
	GameEventWaitForChunks   = 13
)

// GameEvent notifies the client of a state change such as weather or gamemode.
type GameEvent struct {
	Event byte
	Value float32
}

func (g *GameEvent) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.Byte(g.Event)
	w.Float32(g.Value)
	return nil
}

func (g *GameEvent) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.Byte(&g.Event)
	r.Float32(&g.Value)
	return nil
}

var (
	_ proto.Packet = (*JoinGame)(nil)
	_ proto.Packet = (*Respawn)(nil)
	_ proto.Packet = (*ClientStatus)(nil)
	_ proto.Packet = (*GameEvent)(nil)
)
