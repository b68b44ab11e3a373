package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/desertthunder/infosys/internal/shared"
)

const (
	DefaultBaseURL = "https://api.hatchet.is"
	APIVersion     = "v1"
)

// MinSearchScore is the relevance score a search item must exceed to be kept.
const MinSearchScore = 5.0

const idPlaceholder = "{id}"

// routes maps each kind to its path under /v1/. A path containing {id} takes the
// first "id" parameter as its path identifier.
var routes = map[Kind]string{
	KindUsers:                        "users/",
	KindUsersSelf:                    "users/",
	KindUsersPlaylists:               "users/{id}/playlists",
	KindUsersLovedItems:              "users/{id}/lovedItems",
	KindUsersSocialActions:           "users/{id}/socialActions",
	KindUsersFriendsFeed:             "users/{id}/friendsFeed",
	KindPlaylistsEntries:             "playlists/{id}/entries",
	KindArtists:                      "artists/",
	KindArtistsAlbums:                "artists/{id}/albums/",
	KindArtistsTopHits:               "artists/{id}/topHits/",
	KindAlbums:                       "albums/",
	KindTracks:                       "tracks/",
	KindSearches:                     "searches/",
	KindPlaybackLogEntries:           "playbackLogEntries/",
	KindPlaybackLogEntriesNowPlaying: "playbackLogEntries/nowplaying/",
	KindSocialActions:                "socialActions/",
}

// RequiresPathID reports whether kind embeds an identifier in its URL path.
func RequiresPathID(kind Kind) bool {
	return strings.Contains(routes[kind], idPlaceholder)
}

// BuildQuery builds the endpoint URL for kind. For path-scoped kinds the first "id"
// value becomes the path identifier and every "id" pair is dropped from the query.
// Remaining pairs are appended in insertion order.
//
// An empty baseURL selects [DefaultBaseURL]. A missing path identifier is an [shared.ErrInvalidRequest].
func BuildQuery(baseURL string, kind Kind, params Params) (string, error) {
	route, ok := routes[kind]
	if !ok {
		return "", fmt.Errorf("%w: %w: %s", shared.ErrInvalidRequest, shared.ErrUnknownKind, kind)
	}

	if strings.Contains(route, idPlaceholder) {
		id, ok := params.First(ParamID)
		if !ok || id == "" {
			return "", fmt.Errorf("%w: %s requires an %q parameter", shared.ErrInvalidRequest, kind, ParamID)
		}
		route = strings.Replace(route, idPlaceholder, url.PathEscape(id), 1)
		params = params.Without(ParamID)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/" + APIVersion + "/")
	b.WriteString(route)
	if params.Len() > 0 {
		b.WriteByte('?')
		b.WriteString(params.Encode())
	}
	return b.String(), nil
}
