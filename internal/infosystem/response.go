package infosystem

import (
	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
)

// Response is the normalized result of a resolve request.
//
// Raw holds the last parsed response shape. Joined holds the records assembled by
// multi-hop fetches; slices keep the fetch order, so a join's position is its key.
// Converted holds domain objects built from Raw and Joined.
type Response struct {
	RequestID string
	Kind      Kind
	Raw       any
	Joined    Joined
	Converted Converted
}

// Joined holds cross-referenced records.
type Joined struct {
	Artist  *services.ArtistInfo // artist that anchored a two-hop fetch
	Albums  []AlbumJoin
	Charts  []ChartJoin
	Entries []EntriesJoin
}

// AlbumJoin is an album with its first image and batched track lookup. Image and Tracks may be nil.
type AlbumJoin struct {
	Album  *services.AlbumInfo
	Image  *services.Image
	Tracks *services.Tracks
}

// ChartJoin is one chart position with its resolved track. Track is nil when the reference does not resolve.
type ChartJoin struct {
	Item  services.ChartItem
	Track *services.TrackInfo
}

// EntriesJoin is a playlist header with its entries.
type EntriesJoin struct {
	Playlist services.PlaylistInfo
	Entries  *services.PlaylistEntries
}

// Converted holds caller-facing objects.
type Converted struct {
	Albums    []*models.Album
	Artists   []*models.Artist
	Users     []*models.User
	Playlists []*models.Playlist
}

// Empty reports whether nothing was converted.
func (c Converted) Empty() bool {
	return len(c.Albums) == 0 && len(c.Artists) == 0 && len(c.Users) == 0 && len(c.Playlists) == 0
}
