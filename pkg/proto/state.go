package proto

// State is a connection state of the Java edition protocol.
// Each state has its own packet id space.
type State int

// The states a Java edition connection can be in.
const (
	HandshakeState State = iota
	StatusState
	LoginState
	ConfigState
	PlayState
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case HandshakeState:
		return "Handshake"
	case StatusState:
		return "Status"
	case LoginState:
		return "Login"
	case ConfigState:
		return "Config"
	case PlayState:
		return "Play"
	}
	return "Unknown"
}
