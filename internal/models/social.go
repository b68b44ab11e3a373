package models

import "time"

// Social action types.
const (
	ActionLove          = "love"
	ActionFollow        = "follow"
	ActionCreateComment = "createcomment"
	ActionLatchOn       = "latchOn"
	ActionLatchOff      = "latchOff"
)

// SocialAction is one activity entry. At most one of the target fields is set,
// depending on what the action refers to.
type SocialAction struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Action     string    `json:"action,omitempty"`
	Date       time.Time `json:"date"`
	User       *User     `json:"-"`
	Target     *User     `json:"-"`
	Track      *Track    `json:"track,omitempty"`
	ArtistName string    `json:"artist,omitempty"`
	AlbumName  string    `json:"album,omitempty"`
	UserName   string    `json:"user,omitempty"`
	TargetName string    `json:"target,omitempty"`
}
