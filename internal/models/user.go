package models

import (
	"sync"
	"time"
)

// Profile carries the values merged into a [User] by [User.SetProfile].
type Profile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	About          string    `json:"about,omitempty"`
	Image          *Image    `json:"image,omitempty"`
	NowPlaying     *Track    `json:"now_playing,omitempty"`
	NowPlayingAt   time.Time `json:"now_playing_at"`
	TotalPlays     int       `json:"total_plays"`
	FollowersCount int       `json:"followers_count"`
	FollowCount    int       `json:"follow_count"`
}

// User is a fill target describing a listener profile.
type User struct {
	mu            sync.RWMutex
	profile       Profile
	socialActions []*SocialAction
	friendsFeed   []*SocialAction
}

// NewUser creates a user known by id and/or name.
func NewUser(id, name string) *User {
	return &User{profile: Profile{ID: id, Name: name}}
}

func (u *User) TargetName() string { return "user" }

func (u *User) ID() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.profile.ID
}

func (u *User) Name() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.profile.Name
}

// Profile returns a snapshot of the user's profile fields.
func (u *User) Profile() Profile {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.profile
}

// SetProfile merges p into the user. Zero values leave the current field alone.
func (u *User) SetProfile(p Profile) {
	u.mu.Lock()
	defer u.mu.Unlock()
	cur := &u.profile
	if p.ID != "" {
		cur.ID = p.ID
	}
	if p.Name != "" {
		cur.Name = p.Name
	}
	if p.About != "" {
		cur.About = p.About
	}
	if p.Image != nil {
		cur.Image = p.Image
	}
	if p.NowPlaying != nil {
		cur.NowPlaying = p.NowPlaying
		cur.NowPlayingAt = p.NowPlayingAt
	}
	if p.TotalPlays > 0 {
		cur.TotalPlays = p.TotalPlays
	}
	if p.FollowersCount > 0 {
		cur.FollowersCount = p.FollowersCount
	}
	if p.FollowCount > 0 {
		cur.FollowCount = p.FollowCount
	}
}

// SocialActions returns the user's own activity.
func (u *User) SocialActions() []*SocialAction {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]*SocialAction(nil), u.socialActions...)
}

// FriendsFeed returns the activity of the accounts the user follows.
func (u *User) FriendsFeed() []*SocialAction {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]*SocialAction(nil), u.friendsFeed...)
}

func (u *User) SetSocialActions(actions []*SocialAction) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.socialActions = actions
}

func (u *User) SetFriendsFeed(actions []*SocialAction) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.friendsFeed = actions
}
