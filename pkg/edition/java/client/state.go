package client

// State is the state of a session.
type State int32

// Session states. A session moves through them in order and may
// return from Play to Configuration when the server reconfigures.
const (
	Disconnected State = iota
	Login
	Configuration
	Play
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case Login:
		return "Login"
	case Configuration:
		return "Configuration"
	case Play:
		return "Play"
	}
	return "Unknown"
}

// DisconnectReason tells why a session ended.
type DisconnectReason int

const (
	// InGameKick is a disconnect packet received while playing.
	InGameKick DisconnectReason = iota
	// LoginRejected is a disconnect or an unsupported request before play.
	LoginRejected
	// ConnectionLost is a network or protocol error.
	ConnectionLost
	// UserLogout is a call to Disconnect.
	UserLogout
)

func (r DisconnectReason) String() string {
	switch r {
	case InGameKick:
		return "InGameKick"
	case LoginRejected:
		return "LoginRejected"
	case ConnectionLost:
		return "ConnectionLost"
	case UserLogout:
		return "UserLogout"
	}
	return "Unknown"
}
