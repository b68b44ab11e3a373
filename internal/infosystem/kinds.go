package infosystem

import (
	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/tasks"
)

type (
	fetchFunc   func(*call) (*Response, error)
	convertFunc func(*Response)
	fillFunc    func(Kind, models.FillTarget, *Response) error
)

// kindSpec describes how one request kind is executed.
// Send kinds have no fetch; resolve kinds have no payload.
type kindSpec struct {
	priority tasks.Priority
	identity bool // path or query uses the signed-in user's id
	send     bool
	fetch    fetchFunc
	convert  convertFunc
	fill     fillFunc
}

var kindSpecs = map[Kind]kindSpec{
	services.KindUsers:              {fetch: fetchSimple[services.Users], fill: fillUser},
	services.KindUsersSelf:          {identity: true, fetch: fetchSelf, convert: convertSelf},
	services.KindUsersPlaylists:     {identity: true, fetch: fetchUserPlaylists, convert: convertUserPlaylists},
	services.KindUsersLovedItems:    {identity: true, fetch: fetchLovedItems, convert: convertLovedItems},
	services.KindUsersSocialActions: {fetch: fetchSimple[services.SocialActionResponse], fill: fillSocial},
	services.KindUsersFriendsFeed:   {fetch: fetchSimple[services.SocialActionResponse], fill: fillSocial},
	services.KindPlaylistsEntries:   {fetch: fetchSimple[services.PlaylistEntries], convert: convertPlaylistEntries},
	services.KindArtists:            {fetch: fetchSimple[services.Artists], fill: fillArtist},
	services.KindArtistsAlbums:      {fetch: fetchArtistAlbums, fill: fillArtistAlbums},
	services.KindArtistsTopHits:     {priority: tasks.PriorityHigh, fetch: fetchArtistTopHits, fill: fillArtistTopHits},
	services.KindAlbums:             {fetch: fetchAlbumDetail, fill: fillAlbum},
	services.KindTracks:             {fetch: fetchSimple[services.Tracks]},
	services.KindSearches:           {fetch: fetchSimple[services.Search], convert: convertSearch},

	services.KindPlaybackLogEntries:           {send: true},
	services.KindPlaybackLogEntriesNowPlaying: {send: true},
	services.KindSocialActions:                {send: true},
}

func lookupKind(kind Kind) (kindSpec, bool) {
	spec, ok := kindSpecs[kind]
	return spec, ok
}
