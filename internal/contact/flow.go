// Package contact implements the scripted chat that collects a contact
// message, and the delivery of that message once it is confirmed.
package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Step is a position in the scripted conversation
type Step int

const (
	StepGreeting Step = iota
	StepName
	StepEmail
	StepMessage
	StepConfirm
	StepSent
)

func (s Step) String() string {
	switch s {
	case StepGreeting:
		return "greeting"
	case StepName:
		return "name"
	case StepEmail:
		return "email"
	case StepMessage:
		return "message"
	case StepConfirm:
		return "confirm"
	case StepSent:
		return "sent"
	default:
		return "unknown"
	}
}

// Errors returned by Flow.Reply
var (
	ErrInvalidEmail = errors.New("contact: invalid email address")
	ErrEmptyReply   = errors.New("contact: reply is empty")
	ErrFinished     = errors.New("contact: conversation finished")
)

// Speaker identifies who said a line in the transcript
type Speaker int

const (
	Bot Speaker = iota
	Visitor
)

// Line is one chat bubble
type Line struct {
	From Speaker
	Text string
}

// Draft holds the answers collected so far
type Draft struct {
	Name    string
	Email   string
	Message string
}

var validate = validator.New()

// ValidEmail reports whether s is an acceptable address
func ValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// Flow walks a visitor through greeting, name, email, message and
// confirmation. It is not safe for concurrent use.
type Flow struct {
	step       Step
	draft      Draft
	transcript []Line
}

// NewFlow returns a flow at the greeting step
func NewFlow() *Flow {
	f := &Flow{}
	f.Restart()
	return f
}

// Restart discards the draft and transcript and greets again
func (f *Flow) Restart() {
	f.step = StepGreeting
	f.draft = Draft{}
	f.transcript = nil
	f.say("Hi! I'm the contact bot. Press enter to leave a message.")
}

func (f *Flow) Step() Step         { return f.step }
func (f *Flow) Draft() Draft       { return f.draft }
func (f *Flow) Transcript() []Line { return append([]Line(nil), f.transcript...) }

// AwaitingConfirm reports whether the next reply decides submission
func (f *Flow) AwaitingConfirm() bool { return f.step == StepConfirm }

// Reply feeds one visitor answer into the flow. It returns true when the
// visitor confirmed and the draft is ready to be delivered. Validation
// errors leave the step unchanged.
func (f *Flow) Reply(text string) (bool, error) {
	text = strings.TrimSpace(text)

	switch f.step {
	case StepGreeting:
		if text != "" {
			f.hear(text)
		}
		f.step = StepName
		f.say("What's your name?")
		return false, nil

	case StepName:
		if text == "" {
			return false, ErrEmptyReply
		}
		f.hear(text)
		f.draft.Name = text
		f.step = StepEmail
		f.say("Nice to meet you, " + text + ". What's your email?")
		return false, nil

	case StepEmail:
		if !ValidEmail(text) {
			return false, ErrInvalidEmail
		}
		f.hear(text)
		f.draft.Email = text
		f.step = StepMessage
		f.say("Got it. What would you like to say?")
		return false, nil

	case StepMessage:
		if text == "" {
			return false, ErrEmptyReply
		}
		f.hear(text)
		f.draft.Message = text
		f.step = StepConfirm
		f.say("Send this message? (y/n)")
		return false, nil

	case StepConfirm:
		f.hear(text)
		switch strings.ToLower(text) {
		case "y", "yes", "":
			return true, nil
		default:
			f.step = StepMessage
			f.say("No problem. What would you like to say instead?")
			return false, nil
		}

	default:
		return false, ErrFinished
	}
}

// MarkSent moves a confirmed flow to its final step
func (f *Flow) MarkSent() {
	f.step = StepSent
	f.say("Thanks, " + f.draft.Name + "! I'll get back to you soon. Press ctrl+r to start over.")
}

// MarkFailed keeps the draft at the confirm step after a delivery error
func (f *Flow) MarkFailed() {
	f.step = StepConfirm
	f.say("Sorry, that didn't go through. Send again? (y/n)")
}

func (f *Flow) say(text string) {
	f.transcript = append(f.transcript, Line{From: Bot, Text: text})
}

func (f *Flow) hear(text string) {
	f.transcript = append(f.transcript, Line{From: Visitor, Text: text})
}
