package types

import "fmt"

// ActionType is the kind of mutation applied to an entry
type ActionType string

const (
	ActionRemove ActionType = "remove"
	ActionCopy   ActionType = "copy"
	ActionRename ActionType = "rename"
)

// Tense selects which form of an action verb to use
type Tense int

const (
	// TensePreview is used when listing pending changes: "Renaming"
	TensePreview Tense = iota
	// TenseFailed is used in error lines: "Rename ... ERROR"
	TenseFailed
	// TenseDone is used for completed actions: "Renamed"
	TenseDone
)

var verbs = map[ActionType][3]string{
	ActionRemove: {"Removing", "Remove", "Removed"},
	ActionCopy:   {"Copying", "Copy", "Copied"},
	ActionRename: {"Renaming", "Rename", "Renamed"},
}

// Verb returns the action verb in the given tense
func (a ActionType) Verb(t Tense) string {
	forms, ok := verbs[a]
	if !ok {
		return string(a)
	}
	return forms[t]
}

// Outcome is the result of one attempted action
type Outcome struct {
	Action ActionType
	Entry  *Entry
	// Target is the destination for renames and copies
	Target string
	// Recursive marks removals and copies of non-empty directories
	Recursive bool
	Err       error
}

// Failed reports whether the action failed
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Message renders the subject of the action line, without verb or error
func (o Outcome) Message() string {
	note := ""
	if o.Recursive {
		note = " recursively"
	}
	switch o.Action {
	case ActionRemove:
		return fmt.Sprintf(`"%s"%s`, o.Entry.DiagLabel(), note)
	case ActionCopy:
		return fmt.Sprintf(`"%s" to "%s"%s`, o.Entry.DiagLabel(), o.Target+o.Entry.Suffix(), note)
	default:
		return fmt.Sprintf(`"%s" to "%s"`, o.Entry.DiagLabel(), o.Target+o.Entry.Suffix())
	}
}
