package packet

import (
	"errors"
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

const maxUsernameLen = 16

var errEmptyUsername = errs.NewSilentErr("empty username")

// ServerLogin is the login start packet.
type ServerLogin struct {
	Username string
	PlayerID uuid.UUID
}

func (s *ServerLogin) Encode(_ *proto.PacketContext, wr io.Writer) error {
	if s.Username == "" {
		return errors.New("username not specified")
	}
	w := util.PanicWriter(wr)
	w.String(s.Username)
	w.UUID(s.PlayerID)
	return nil
}

func (s *ServerLogin) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	s.Username, err = util.ReadStringMax(rd, maxUsernameLen)
	if err != nil {
		return err
	}
	if len(s.Username) == 0 {
		return errEmptyUsername
	}
	s.PlayerID, err = util.ReadUUID(rd)
	return err
}

// EncryptionRequest asks the client to enable encryption (online mode).
type EncryptionRequest struct {
	ServerID           string
	PublicKey          []byte
	VerifyToken        []byte
	ShouldAuthenticate bool
}

func (e *EncryptionRequest) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.String(e.ServerID)
	w.Bytes(e.PublicKey)
	w.Bytes(e.VerifyToken)
	w.Bool(e.ShouldAuthenticate)
	return nil
}

func (e *EncryptionRequest) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	e.ServerID, err = util.ReadStringMax(rd, 20)
	if err != nil {
		return err
	}
	e.PublicKey, err = util.ReadBytesLen(rd, 512)
	if err != nil {
		return err
	}
	e.VerifyToken, err = util.ReadBytesLen(rd, 256)
	if err != nil {
		return err
	}
	e.ShouldAuthenticate, err = util.ReadBool(rd)
	return err
}

// Property is a game profile property.
type Property struct {
	Name      string
	Value     string
	Signature string // empty if unsigned
}

// ReadProperties reads a profile property list. It panics on error.
func ReadProperties(rd io.Reader) []Property {
	r := util.PanicReader(rd)
	props := make([]Property, r.Count(64))
	for i := range props {
		r.StringMax(&props[i].Name, 64)
		r.String(&props[i].Value)
		if r.Ok() {
			r.StringMax(&props[i].Signature, 1024)
		}
	}
	return props
}

// WriteProperties writes a profile property list. It panics on error.
func WriteProperties(wr io.Writer, props []Property) {
	w := util.PanicWriter(wr)
	w.VarInt(len(props))
	for _, p := range props {
		w.String(p.Name)
		w.String(p.Value)
		if w.Bool(p.Signature != "") {
			w.String(p.Signature)
		}
	}
}

// ServerLoginSuccess completes the login.
type ServerLoginSuccess struct {
	UUID       uuid.UUID
	Username   string
	Properties []Property
	// StrictErrorHandling makes the client disconnect on packet errors.
	StrictErrorHandling bool
}

func (s *ServerLoginSuccess) Encode(_ *proto.PacketContext, wr io.Writer) error {
	if s.Username == "" {
		return errors.New("no username specified")
	}
	w := util.PanicWriter(wr)
	w.UUID(s.UUID)
	w.String(s.Username)
	WriteProperties(wr, s.Properties)
	w.Bool(s.StrictErrorHandling)
	return nil
}

func (s *ServerLoginSuccess) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	r.UUID(&s.UUID)
	r.StringMax(&s.Username, maxUsernameLen)
	s.Properties = ReadProperties(rd)
	r.Bool(&s.StrictErrorHandling)
	return nil
}

// SetCompression enables compression of packets at least Threshold bytes long.
type SetCompression struct {
	Threshold int
}

func (s *SetCompression) Encode(_ *proto.PacketContext, wr io.Writer) error {
	return util.WriteVarInt(wr, s.Threshold)
}

func (s *SetCompression) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	s.Threshold, err = util.ReadVarInt(rd)
	return
}

// LoginPluginMessage is a login plugin request from the server.
type LoginPluginMessage struct {
	ID      int
	Channel string
	Data    []byte
}

func (l *LoginPluginMessage) Encode(_ *proto.PacketContext, wr io.Writer) error {
	err := util.WriteVarInt(wr, l.ID)
	if err != nil {
		return err
	}
	err = util.WriteString(wr, l.Channel)
	if err != nil {
		return err
	}
	return util.WriteRawBytes(wr, l.Data)
}

func (l *LoginPluginMessage) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	l.ID, err = util.ReadVarInt(rd)
	if err != nil {
		return err
	}
	l.Channel, err = util.ReadIdentifier(rd)
	if err != nil {
		return err
	}
	l.Data, err = util.ReadRemaining(rd)
	return err
}

// LoginPluginResponse answers a LoginPluginMessage.
// A client that does not know the channel answers with Success false.
type LoginPluginResponse struct {
	ID      int
	Success bool
	Data    []byte
}

func (l *LoginPluginResponse) Encode(_ *proto.PacketContext, wr io.Writer) (err error) {
	err = util.WriteVarInt(wr, l.ID)
	if err != nil {
		return err
	}
	err = util.WriteBool(wr, l.Success)
	if err != nil {
		return err
	}
	return util.WriteRawBytes(wr, l.Data)
}

func (l *LoginPluginResponse) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	l.ID, err = util.ReadVarInt(rd)
	if err != nil {
		return err
	}
	l.Success, err = util.ReadBool(rd)
	if err != nil {
		return err
	}
	l.Data, err = util.ReadRemaining(rd)
	return err
}

// LoginAcknowledged switches the connection to the configuration state.
type LoginAcknowledged struct{}

func (*LoginAcknowledged) Encode(*proto.PacketContext, io.Writer) error { return nil }
func (*LoginAcknowledged) Decode(*proto.PacketContext, io.Reader) error { return nil }

var (
	_ proto.Packet = (*ServerLogin)(nil)
	_ proto.Packet = (*ServerLoginSuccess)(nil)
	_ proto.Packet = (*LoginPluginMessage)(nil)
	_ proto.Packet = (*LoginPluginResponse)(nil)
	_ proto.Packet = (*EncryptionRequest)(nil)
	_ proto.Packet = (*SetCompression)(nil)
	_ proto.Packet = (*LoginAcknowledged)(nil)
)
