// internal/model/enums.go
package model

// Channel classifies where a placement runs.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelApp   Channel = "app"
	ChannelDX    Channel = "dx"
	ChannelCmd   Channel = "cmd"
)

// Channels lists every valid channel, in display order.
var Channels = []Channel{ChannelEmail, ChannelApp, ChannelDX, ChannelCmd}

func (c Channel) Valid() bool {
	for _, v := range Channels {
		if c == v {
			return true
		}
	}
	return false
}

// Status is a campaign's lifecycle state.
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

var Statuses = []Status{StatusPlanned, StatusActive, StatusPaused, StatusCompleted, StatusCanceled}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}
