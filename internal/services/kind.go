package services

import (
	"fmt"
	"strings"

	"github.com/desertthunder/infosys/internal/shared"
)

// Kind enumerates the operations understood by the catalog API.
type Kind int

const (
	KindUsers Kind = iota
	KindUsersSelf
	KindUsersPlaylists
	KindUsersLovedItems
	KindUsersSocialActions
	KindUsersFriendsFeed
	KindPlaylistsEntries
	KindArtists
	KindArtistsAlbums
	KindArtistsTopHits
	KindAlbums
	KindTracks
	KindSearches
	KindPlaybackLogEntries
	KindPlaybackLogEntriesNowPlaying
	KindSocialActions

	kindCount
)

var kindNames = [kindCount]string{
	KindUsers:                        "users",
	KindUsersSelf:                    "users_self",
	KindUsersPlaylists:               "users_playlists",
	KindUsersLovedItems:              "users_loved_items",
	KindUsersSocialActions:           "users_social_actions",
	KindUsersFriendsFeed:             "users_friends_feed",
	KindPlaylistsEntries:             "playlists_entries",
	KindArtists:                      "artists",
	KindArtistsAlbums:                "artists_albums",
	KindArtistsTopHits:               "artists_top_hits",
	KindAlbums:                       "albums",
	KindTracks:                       "tracks",
	KindSearches:                     "searches",
	KindPlaybackLogEntries:           "playback_log_entries",
	KindPlaybackLogEntriesNowPlaying: "playback_log_entries_now_playing",
	KindSocialActions:                "social_actions",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// AllKinds returns every known kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", shared.ErrUnknownKind, name)
}
