package session

import "strings"

// Answer is a choice at the confirmation prompt
type Answer int

const (
	AnswerQuit Answer = iota
	AnswerProceed
	AnswerEdit
	AnswerRestart
	AnswerInvalid
)

// Choices lists the prompt options; the one marked [default] is taken on
// an empty answer.
const Choices = "proceed edit restart quit[default]"

// InvalidAnswer is printed before prompting again
const InvalidAnswer = "Invalid answer."

// BuildPrompt renders choices as "(P)roceed, (Q)uit: [p/q]? "
func BuildPrompt(choices string) string {
	var letters, words []string
	for _, word := range strings.Fields(choices) {
		letters = append(letters, word[:1])
		words = append(words, "("+strings.ToUpper(word[:1])+")"+word[1:])
	}
	return strings.Join(words, ", ") + ": [" + strings.Join(letters, "/") + "]? "
}

// ParseAnswer maps a typed answer to a choice
func ParseAnswer(s string) Answer {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p":
		return AnswerProceed
	case "e":
		return AnswerEdit
	case "r":
		return AnswerRestart
	case "", "q":
		return AnswerQuit
	default:
		return AnswerInvalid
	}
}
