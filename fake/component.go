package fake

// ComponentContext simulates a component interaction: a button press or
// select on an existing message. CustomID identifies the component and
// Message is the message it lives on.
type ComponentContext struct {
	SlashContext
	CustomID string
	Message  *Message
}

// NewComponentContext builds a component context over the client.
func NewComponentContext(c *Client, customID string, message *Message) *ComponentContext {
	return &ComponentContext{
		SlashContext: *NewSlashContext(c),
		CustomID:     customID,
		Message:      message,
	}
}
