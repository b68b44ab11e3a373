package models

import (
	"sync"
	"time"
)

// Image is a sized image reference.
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SquareURL string `json:"square_url,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Track is a single recording. Artist and album are carried by name.
type Track struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Artist   string        `json:"artist"`
	Album    string        `json:"album,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	AlbumPos int           `json:"album_pos,omitempty"`
}

// Artist is a fill target describing a performer.
type Artist struct {
	mu      sync.RWMutex
	id      string
	name    string
	bio     string
	image   *Image
	albums  []*Album
	topHits []*Track
}

// NewArtist creates an artist known only by name.
func NewArtist(name string) *Artist {
	return &Artist{name: name}
}

func (a *Artist) TargetName() string { return "artist" }

func (a *Artist) ID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.id
}

func (a *Artist) Name() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.name
}

func (a *Artist) Bio() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bio
}

func (a *Artist) Image() *Image {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.image
}

// Albums returns a copy of the artist's album list.
func (a *Artist) Albums() []*Album {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Album(nil), a.albums...)
}

// TopHits returns the ranked top tracks, best first.
func (a *Artist) TopHits() []*Track {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Track(nil), a.topHits...)
}

// SetInfo merges basic catalog fields. Empty values leave the current field alone.
func (a *Artist) SetInfo(id, name, bio string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id != "" {
		a.id = id
	}
	if name != "" {
		a.name = name
	}
	if bio != "" {
		a.bio = bio
	}
}

// SetImage replaces the artist image when img is non-nil.
func (a *Artist) SetImage(img *Image) {
	if img == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.image = img
}

// AddAlbum attaches album, replacing an existing album with the same name.
func (a *Artist) AddAlbum(album *Album) {
	if album == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.albums {
		if existing.Name() == album.Name() {
			a.albums[i] = album
			return
		}
	}
	a.albums = append(a.albums, album)
}

// SetTopHits replaces the ranked top hits.
func (a *Artist) SetTopHits(tracks []*Track) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.topHits = tracks
}

// Album is a fill target describing a release.
type Album struct {
	mu          sync.RWMutex
	id          string
	name        string
	artist      string
	releaseDate string
	image       *Image
	tracks      []*Track
}

// NewAlbum creates an album known by name and artist name.
func NewAlbum(name, artist string) *Album {
	return &Album{name: name, artist: artist}
}

func (a *Album) TargetName() string { return "album" }

func (a *Album) ID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.id
}

func (a *Album) Name() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.name
}

func (a *Album) Artist() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.artist
}

func (a *Album) ReleaseDate() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.releaseDate
}

func (a *Album) Image() *Image {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.image
}

// Tracks returns the album's track listing.
func (a *Album) Tracks() []*Track {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Track(nil), a.tracks...)
}

// SetInfo merges catalog fields. Empty values leave the current field alone.
func (a *Album) SetInfo(id, name, artist, releaseDate string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id != "" {
		a.id = id
	}
	if name != "" {
		a.name = name
	}
	if artist != "" {
		a.artist = artist
	}
	if releaseDate != "" {
		a.releaseDate = releaseDate
	}
}

// SetImage replaces the album image when img is non-nil.
func (a *Album) SetImage(img *Image) {
	if img == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.image = img
}

// SetTracks replaces the track listing.
func (a *Album) SetTracks(tracks []*Track) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tracks = tracks
}
