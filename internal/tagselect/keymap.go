package tagselect

// Command names a session transition, independent of which key triggers it.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdToggle
	CmdConfirmCreate
	CmdClose
)

// Keymap maps key chords, as bubbletea reports them, to session commands.
type Keymap map[string]Command

// DefaultKeymap is the built-in picker binding set. Chords not listed fall
// through to the query input.
func DefaultKeymap() Keymap {
	return Keymap{
		"up":     CmdMoveUp,
		"ctrl+p": CmdMoveUp,
		"down":   CmdMoveDown,
		"ctrl+n": CmdMoveDown,
		"enter":  CmdToggle,
		"tab":    CmdConfirmCreate,
		"esc":    CmdClose,
	}
}

// Lookup resolves a chord to its command, or CmdNone when unbound.
func (k Keymap) Lookup(chord string) Command {
	if cmd, ok := k[chord]; ok {
		return cmd
	}
	return CmdNone
}
