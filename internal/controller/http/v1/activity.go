package v1

import "github.com/steptrek/steptrek/internal/controller/http/cards"

const ActivityTypeMessage = "message"

type ChannelAccount struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type CardAction struct {
	Action string `json:"action"`
}

// Activity is the Bot-Framework-shaped payload exchanged with the chat
// platform connector. Value carries card submit actions.
type Activity struct {
	Type        string             `json:"type"`
	Text        string             `json:"text,omitempty"`
	From        ChannelAccount     `json:"from,omitempty"`
	Value       *CardAction        `json:"value,omitempty"`
	Attachments []cards.Attachment `json:"attachments,omitempty"`
}

func NewTextReply(text string) Activity {
	return Activity{
		Type: ActivityTypeMessage,
		Text: text,
	}
}

func NewCardReply(att cards.Attachment) Activity {
	return Activity{
		Type:        ActivityTypeMessage,
		Attachments: []cards.Attachment{att},
	}
}
