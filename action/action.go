// Package action defines the immutable records describing side effects a
// handler attempted during a simulated invocation, plus the shared ledger
// they are appended to.
package action

import "time"

// Type identifies the kind of intercepted effect.
type Type string

const (
	TypeDefer          Type = "defer"
	TypeSend           Type = "send"
	TypeDelete         Type = "delete"
	TypeEdit           Type = "edit"
	TypeCreateReaction Type = "create_reaction"
	TypeSendModal      Type = "send_modal"
	TypeSendChoices    Type = "send_choices"
)

// Action is one recorded effect. Implementations are value records created
// exactly once at the point of interception and never mutated afterwards.
// The timestamp exists purely to order effects across emitters; it makes no
// wall-clock promise.
type Action interface {
	Kind() Type
	At() time.Time
}

// Defer records an interaction acknowledgment.
type Defer struct {
	Recorded  time.Time `json:"recorded"`
	Ephemeral bool      `json:"ephemeral"`
}

func NewDefer(ephemeral bool) Defer {
	return Defer{Recorded: time.Now(), Ephemeral: ephemeral}
}

func (Defer) Kind() Type      { return TypeDefer }
func (a Defer) At() time.Time { return a.Recorded }

// Send records a message creation. Message is the canonical record that was
// stored in the message cache, id included.
type Send struct {
	Recorded time.Time      `json:"recorded"`
	Message  map[string]any `json:"message"`
}

func NewSend(message map[string]any) Send {
	return Send{Recorded: time.Now(), Message: message}
}

func (Send) Kind() Type      { return TypeSend }
func (a Send) At() time.Time { return a.Recorded }

// Delete records a message deletion. ChannelID and Reason are zero-valued
// for context-level deletes, which only know the message.
type Delete struct {
	Recorded  time.Time `json:"recorded"`
	MessageID int64     `json:"message_id"`
	ChannelID int64     `json:"channel_id,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

func NewDelete(messageID, channelID int64, reason string) Delete {
	return Delete{Recorded: time.Now(), MessageID: messageID, ChannelID: channelID, Reason: reason}
}

func (Delete) Kind() Type      { return TypeDelete }
func (a Delete) At() time.Time { return a.Recorded }

// Edit records a message edit. Message is the full post-edit record, not
// the diff that was supplied.
type Edit struct {
	Recorded  time.Time      `json:"recorded"`
	Message   map[string]any `json:"message"`
	ChannelID int64          `json:"channel_id,omitempty"`
}

func NewEdit(message map[string]any, channelID int64) Edit {
	return Edit{Recorded: time.Now(), Message: message, ChannelID: channelID}
}

func (Edit) Kind() Type      { return TypeEdit }
func (a Edit) At() time.Time { return a.Recorded }

// CreateReaction records an emoji reaction on a cached message.
type CreateReaction struct {
	Recorded  time.Time `json:"recorded"`
	MessageID int64     `json:"message_id"`
	Emoji     string    `json:"emoji"`
	ChannelID int64     `json:"channel_id,omitempty"`
}

func NewCreateReaction(messageID int64, emoji string, channelID int64) CreateReaction {
	return CreateReaction{Recorded: time.Now(), MessageID: messageID, Emoji: emoji, ChannelID: channelID}
}

func (CreateReaction) Kind() Type      { return TypeCreateReaction }
func (a CreateReaction) At() time.Time { return a.Recorded }

// SendModal records a modal prompt in its canonical map form.
type SendModal struct {
	Recorded time.Time      `json:"recorded"`
	Modal    map[string]any `json:"modal"`
}

func NewSendModal(modal map[string]any) SendModal {
	return SendModal{Recorded: time.Now(), Modal: modal}
}

func (SendModal) Kind() Type      { return TypeSendModal }
func (a SendModal) At() time.Time { return a.Recorded }

// SendChoices records a normalized autocomplete choice list.
type SendChoices struct {
	Recorded time.Time        `json:"recorded"`
	Choices  []map[string]any `json:"choices"`
}

func NewSendChoices(choices []map[string]any) SendChoices {
	return SendChoices{Recorded: time.Now(), Choices: choices}
}

func (SendChoices) Kind() Type      { return TypeSendChoices }
func (a SendChoices) At() time.Time { return a.Recorded }
