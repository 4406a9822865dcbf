package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTimerFired is sent when a scheduled timer action is due.
// Run must be called from Update so the action runs on the UI goroutine.
type MsgTimerFired struct {
	Run func()
}

func (MsgTimerFired) sealed() {}

// MsgTimersClosed is sent when the scheduler stops delivering actions.
type MsgTimersClosed struct{}

func (MsgTimersClosed) sealed() {}
