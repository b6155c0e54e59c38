package maze

// Phase is the screen the session is on.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhaseStory
	PhasePlaying
	PhasePaused
	PhaseEnded
)

var phaseNames = [...]string{"menu", "story", "playing", "paused", "ended"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// StoryPages is the briefing shown before the first room.
var StoryPages = []string{
	"Wake up Agent!",
	"I'm terribly sorry to tell you this, but...",
	"You're in the maze",
	"You know the drill.\nFind the key and get back to base as soon as possible.",
	"As you know, prolonged exposure usually doesn't end well.\nLuckily, the key should be in a nearby section.",
	"If you find any coins, take 'em with you.\nBut remember, coins aren't worth anything if don't\nmake it back.",
	"Good luck!",
}

// State is the outer session state. Fresh marks a Playing state that must
// start a new session; otherwise Saved, when set, is restored.
type State struct {
	Phase Phase
	Page  int
	Seed  uint64
	Coins int
	Saved *Snapshot
	Fresh bool
}

// Event drives Transition.
type Event interface {
	isEvent()
}

type (
	// EventStart leaves the menu for the story.
	EventStart struct{ Seed uint64 }
	// EventContinue advances the story.
	EventContinue struct{}
	// EventPause freezes play, keeping the snapshot.
	EventPause struct{ Snapshot Snapshot }
	// EventResume returns to play from pause.
	EventResume struct{}
	// EventMenu returns to the main menu.
	EventMenu struct{}
	// EventEscaped ends the run.
	EventEscaped struct{ Coins int }
	// EventPlayAgain starts a new run with a new seed.
	EventPlayAgain struct{ Seed uint64 }
	// EventLoad resumes a saved slot from the menu.
	EventLoad struct{ Snapshot Snapshot }
)

func (EventStart) isEvent()     {}
func (EventContinue) isEvent()  {}
func (EventPause) isEvent()     {}
func (EventResume) isEvent()    {}
func (EventMenu) isEvent()      {}
func (EventEscaped) isEvent()   {}
func (EventPlayAgain) isEvent() {}
func (EventLoad) isEvent()      {}

// Transition returns the state after e. Events that do not apply to the
// current phase leave the state unchanged.
func Transition(s State, e Event) State {
	switch s.Phase {
	case PhaseMenu:
		switch e := e.(type) {
		case EventStart:
			return State{Phase: PhaseStory, Seed: e.Seed}
		case EventLoad:
			snap := e.Snapshot
			return State{Phase: PhasePlaying, Seed: snap.Seed, Saved: &snap}
		}
	case PhaseStory:
		if _, ok := e.(EventContinue); ok {
			if s.Page+1 < len(StoryPages) {
				s.Page++
				return s
			}
			return State{Phase: PhasePlaying, Seed: s.Seed, Fresh: true}
		}
	case PhasePlaying:
		switch e := e.(type) {
		case EventPause:
			snap := e.Snapshot
			return State{Phase: PhasePaused, Seed: s.Seed, Saved: &snap}
		case EventEscaped:
			return State{Phase: PhaseEnded, Seed: s.Seed, Coins: e.Coins}
		}
	case PhasePaused:
		switch e.(type) {
		case EventResume:
			return State{Phase: PhasePlaying, Seed: s.Seed, Saved: s.Saved}
		case EventMenu:
			return State{Phase: PhaseMenu}
		}
	case PhaseEnded:
		switch e := e.(type) {
		case EventPlayAgain:
			return State{Phase: PhasePlaying, Seed: e.Seed, Fresh: true}
		case EventMenu:
			return State{Phase: PhaseMenu}
		}
	}
	return s
}

// EndText is the debrief shown after escaping with coins.
func EndText(coins int) string {
	switch {
	case coins <= 0:
		return "At least you made it back alive Agent"
	case coins == 1:
		return "Glad to have you back Agent!\nAnd a coin sure doesn't hurt either."
	case coins <= 5:
		return "Glad to have you back Agent!\nAnd these coins sure doesn't hurt either."
	default:
		return "I'm happy to have you back but,\nyou shouldn't risk your life for these coins Agent!"
	}
}
