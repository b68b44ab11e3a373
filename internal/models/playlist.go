package models

// LovedItemsPlaylistID identifies the pseudo-playlist holding a user's loved tracks.
const LovedItemsPlaylistID = "loveditems"

// Playlist is a named, ordered list of tracks.
type Playlist struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	CurrentRevision string           `json:"current_revision,omitempty"`
	Entries         []*PlaylistEntry `json:"entries,omitempty"`
}

// PlaylistEntry is a single position in a playlist.
type PlaylistEntry struct {
	ID    string `json:"id"`
	Track *Track `json:"track,omitempty"`
}

// IsLovedItems reports whether p is the loved-items pseudo-playlist.
func (p *Playlist) IsLovedItems() bool {
	return p != nil && p.ID == LovedItemsPlaylistID
}

// Tracks returns the resolved tracks of the playlist in entry order.
func (p *Playlist) Tracks() []*Track {
	tracks := make([]*Track, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.Track != nil {
			tracks = append(tracks, e.Track)
		}
	}
	return tracks
}
