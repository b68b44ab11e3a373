// Hatchet catalog API response shapes
//
// Every response carries a primary list plus side tables (images, tracks, albums,
// artists, users). Entities in the primary list refer to side-table entries by ID only.
package services

import (
	"time"

	"github.com/goccy/go-json"
)

// Timestamp is an optional RFC 3339 time. Empty, null or malformed values decode to
// the zero time instead of failing the whole response.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
	}
	return nil
}

// Image is an image record.
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SquareURL string `json:"squareurl"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// ArtistInfo is an artist record.
type ArtistInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	WikiAbstract string   `json:"wikiabstract"`
	Images       []string `json:"images"`
}

// AlbumInfo is an album record. Artist, Images and Tracks hold IDs.
type AlbumInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artist      string   `json:"artist"`
	ReleaseDate string   `json:"releaseDate"`
	Images      []string `json:"images"`
	Tracks      []string `json:"tracks"`
}

// TrackInfo is a track record. Artist holds an artist ID.
type TrackInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album"`
	Duration float64 `json:"duration"`
	AlbumPos int     `json:"albumpos"`
}

// UserInfo is a user record. NowPlaying holds a track ID.
type UserInfo struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	About               string    `json:"about"`
	Images              []string  `json:"images"`
	NowPlaying          string    `json:"nowplaying"`
	NowPlayingTimestamp Timestamp `json:"nowplayingtimestamp"`
	TotalPlays          int       `json:"totalPlays"`
	FollowCount         int       `json:"followCount"`
	FollowersCount      int       `json:"followersCount"`
}

// ChartItem is one ranked entry of a chart. Track holds a track ID.
type ChartItem struct {
	ID        string `json:"id"`
	Track     string `json:"track"`
	PlayCount int    `json:"playcount"`
}

// PlaylistInfo is a playlist header.
type PlaylistInfo struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	CurrentRevision string    `json:"currentrevision"`
	Created         Timestamp `json:"created"`
}

// PlaylistEntry is one playlist position. Track holds a track ID.
type PlaylistEntry struct {
	ID    string `json:"id"`
	Track string `json:"track"`
}

// SearchItem is one ranked search hit. Type selects which reference field is set.
type SearchItem struct {
	Score  float64 `json:"score"`
	Type   string  `json:"type"`
	Album  string  `json:"album"`
	Artist string  `json:"artist"`
	User   string  `json:"user"`
	Track  string  `json:"track"`
}

// Search item types.
const (
	SearchTypeAlbum  = "album"
	SearchTypeArtist = "artist"
	SearchTypeUser   = "user"
)

// SocialAction is an activity record. Reference fields hold IDs.
type SocialAction struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Type      string    `json:"type"`
	Timestamp Timestamp `json:"timestamp"`
	User      string    `json:"user"`
	Target    string    `json:"target"`
	Track     string    `json:"track"`
	Artist    string    `json:"artist"`
	Album     string    `json:"album"`
}

// Users is the response of the users endpoint.
type Users struct {
	Users   []UserInfo   `json:"users"`
	Artists []ArtistInfo `json:"artists"`
	Images  []Image      `json:"images"`
	Tracks  []TrackInfo  `json:"tracks"`
}

// Artists is the response of the artists endpoint.
type Artists struct {
	Artists []ArtistInfo `json:"artists"`
	Images  []Image      `json:"images"`
}

// Albums is the response of the albums endpoint.
type Albums struct {
	Albums  []AlbumInfo  `json:"albums"`
	Artists []ArtistInfo `json:"artists"`
	Images  []Image      `json:"images"`
}

// Tracks is the response of the tracks endpoint.
type Tracks struct {
	Tracks  []TrackInfo  `json:"tracks"`
	Artists []ArtistInfo `json:"artists"`
	Albums  []AlbumInfo  `json:"albums"`
}

// Playlists is the response of a user's playlists endpoint.
type Playlists struct {
	Playlists []PlaylistInfo `json:"playlists"`
}

// PlaylistEntries is the response of the entries and loved items endpoints.
type PlaylistEntries struct {
	Playlist        PlaylistInfo    `json:"playlist"`
	PlaylistEntries []PlaylistEntry `json:"playlistEntries"`
	Tracks          []TrackInfo     `json:"tracks"`
	Artists         []ArtistInfo    `json:"artists"`
	Albums          []AlbumInfo     `json:"albums"`
}

// Charts is the response of the artist albums and top hits endpoints.
type Charts struct {
	ChartItems []ChartItem  `json:"chartItems"`
	Albums     []AlbumInfo  `json:"albums"`
	Artists    []ArtistInfo `json:"artists"`
	Images     []Image      `json:"images"`
	Tracks     []TrackInfo  `json:"tracks"`
}

// Search is the response of the searches endpoint.
type Search struct {
	SearchResults []SearchItem `json:"searchResults"`
	Users         []UserInfo   `json:"users"`
	Albums        []AlbumInfo  `json:"albums"`
	Artists       []ArtistInfo `json:"artists"`
	Tracks        []TrackInfo  `json:"tracks"`
	Images        []Image      `json:"images"`
}

// SocialActionResponse is the response of the social actions and friends feed endpoints.
type SocialActionResponse struct {
	SocialActions []SocialAction `json:"socialActions"`
	Tracks        []TrackInfo    `json:"tracks"`
	Artists       []ArtistInfo   `json:"artists"`
	Albums        []AlbumInfo    `json:"albums"`
	Users         []UserInfo     `json:"users"`
}

// Index maps IDs to entries of a side table. A lookup of an absent or empty ID yields nil.
type Index[T any] map[string]*T

// Lookup returns the entry for id, or nil.
func (i Index[T]) Lookup(id string) *T {
	if id == "" {
		return nil
	}
	return i[id]
}

// First returns the entry for the first of ids, or nil when ids is empty or does not resolve.
func (i Index[T]) First(ids []string) *T {
	if len(ids) == 0 {
		return nil
	}
	return i.Lookup(ids[0])
}

func buildIndex[T any](items []T, id func(*T) string) Index[T] {
	idx := make(Index[T], len(items))
	for n := range items {
		idx[id(&items[n])] = &items[n]
	}
	return idx
}

func ImageIndex(images []Image) Index[Image] {
	return buildIndex(images, func(i *Image) string { return i.ID })
}

func TrackIndex(tracks []TrackInfo) Index[TrackInfo] {
	return buildIndex(tracks, func(t *TrackInfo) string { return t.ID })
}

func ArtistIndex(artists []ArtistInfo) Index[ArtistInfo] {
	return buildIndex(artists, func(a *ArtistInfo) string { return a.ID })
}

func AlbumIndex(albums []AlbumInfo) Index[AlbumInfo] {
	return buildIndex(albums, func(a *AlbumInfo) string { return a.ID })
}

func UserIndex(users []UserInfo) Index[UserInfo] {
	return buildIndex(users, func(u *UserInfo) string { return u.ID })
}
