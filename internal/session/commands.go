package session

import "time"

// Command is a discrete interaction applied with Session.Dispatch.
type Command interface {
	command()
}

// Tick observes the question timer. It never changes the session.
type Tick struct{}

// Finalize locks in an answer for the question at Index. It is ignored
// unless Index is the current question, so a late duplicate (a manual
// submit racing a timeout) cannot add a second record.
type Finalize struct {
	Index  int
	Answer string
	Reason FinalizeReason
}

// Reset discards all progress and starts a new session.
type Reset struct{}

func (Tick) command()     {}
func (Finalize) command() {}
func (Reset) command()    {}

// Outcome reports the effect of a dispatched command.
type Outcome struct {
	// Applied is false when the command was ignored.
	Applied   bool
	Remaining time.Duration
	Expired   bool
	// Record is set when a Finalize was applied.
	Record    *Record
	Completed bool
}
