package bot

// Slack Events API payload types

// EventCallback is the outer envelope Slack posts to /slack/events.
type EventCallback struct {
	Token     string       `json:"token"`
	TeamID    string       `json:"team_id"`
	Type      string       `json:"type"`
	Challenge string       `json:"challenge,omitempty"`
	Event     MessageEvent `json:"event"`
}

// MessageEvent is a message posted in a channel. Text and Channel are
// pointers so a missing field can be told apart from an empty one.
type MessageEvent struct {
	Type     string  `json:"type"`
	Text     *string `json:"text"`
	Channel  *string `json:"channel"`
	User     string  `json:"user"`
	Username string  `json:"username,omitempty"`
	BotID    string  `json:"bot_id,omitempty"`
	TS       string  `json:"ts,omitempty"`
}

func (e MessageEvent) text() (string, error) {
	if e.Text == nil {
		return "", ErrEventText
	}
	return *e.Text, nil
}

func (e MessageEvent) channel() (string, error) {
	if e.Channel == nil {
		return "", ErrEventChannel
	}
	return *e.Channel, nil
}
