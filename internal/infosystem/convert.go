package infosystem

import (
	"time"

	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
)

type (
	artistIndex = services.Index[services.ArtistInfo]
	albumIndex  = services.Index[services.AlbumInfo]
	trackIndex  = services.Index[services.TrackInfo]
	imageIndex  = services.Index[services.Image]
	userIndex   = services.Index[services.UserInfo]
)

func convertImage(img *services.Image) *models.Image {
	if img == nil {
		return nil
	}
	return &models.Image{
		ID:        img.ID,
		URL:       img.URL,
		SquareURL: img.SquareURL,
		Width:     img.Width,
		Height:    img.Height,
	}
}

func artistName(artists artistIndex, id string) string {
	if a := artists.Lookup(id); a != nil {
		return a.Name
	}
	return ""
}

func convertTrack(t *services.TrackInfo, artists artistIndex, albums albumIndex) *models.Track {
	if t == nil {
		return nil
	}
	track := &models.Track{
		ID:       t.ID,
		Name:     t.Name,
		Artist:   artistName(artists, t.Artist),
		Duration: time.Duration(t.Duration * float64(time.Second)),
		AlbumPos: t.AlbumPos,
	}
	if a := albums.Lookup(t.Album); a != nil {
		track.Album = a.Name
	}
	return track
}

// convertTracks converts a batched track lookup, keeping response order.
func convertTracks(tracks *services.Tracks, albumName string) []*models.Track {
	if tracks == nil {
		return nil
	}
	artists := services.ArtistIndex(tracks.Artists)
	albums := services.AlbumIndex(tracks.Albums)
	out := make([]*models.Track, 0, len(tracks.Tracks))
	for i := range tracks.Tracks {
		t := convertTrack(&tracks.Tracks[i], artists, albums)
		if t.Album == "" {
			t.Album = albumName
		}
		out = append(out, t)
	}
	return out
}

func convertArtist(a *services.ArtistInfo, img *services.Image) *models.Artist {
	artist := models.NewArtist(a.Name)
	artist.SetInfo(a.ID, "", a.WikiAbstract)
	artist.SetImage(convertImage(img))
	return artist
}

func convertAlbum(a *services.AlbumInfo, artist string, tracks []*models.Track, img *services.Image) *models.Album {
	album := models.NewAlbum(a.Name, artist)
	album.SetInfo(a.ID, "", "", a.ReleaseDate)
	album.SetImage(convertImage(img))
	if tracks != nil {
		album.SetTracks(tracks)
	}
	return album
}

func userProfile(u *services.UserInfo, tracks trackIndex, artists artistIndex, images imageIndex) models.Profile {
	p := models.Profile{
		ID:             u.ID,
		Name:           u.Name,
		About:          u.About,
		Image:          convertImage(images.First(u.Images)),
		TotalPlays:     u.TotalPlays,
		FollowersCount: u.FollowersCount,
		FollowCount:    u.FollowCount,
	}
	if t := tracks.Lookup(u.NowPlaying); t != nil {
		p.NowPlaying = convertTrack(t, artists, nil)
		p.NowPlayingAt = u.NowPlayingTimestamp.Time
	}
	return p
}

func convertUser(u *services.UserInfo, tracks trackIndex, artists artistIndex, images imageIndex) *models.User {
	user := models.NewUser(u.ID, u.Name)
	user.SetProfile(userProfile(u, tracks, artists, images))
	return user
}

func convertPlaylist(p services.PlaylistInfo) *models.Playlist {
	return &models.Playlist{
		ID:              p.ID,
		Name:            p.Title,
		CurrentRevision: p.CurrentRevision,
	}
}

// convertEntries resolves each entry's track through the response side tables.
func convertEntries(pe *services.PlaylistEntries) []*models.PlaylistEntry {
	tracks := services.TrackIndex(pe.Tracks)
	artists := services.ArtistIndex(pe.Artists)
	albums := services.AlbumIndex(pe.Albums)

	entries := make([]*models.PlaylistEntry, 0, len(pe.PlaylistEntries))
	for _, e := range pe.PlaylistEntries {
		entries = append(entries, &models.PlaylistEntry{
			ID:    e.ID,
			Track: convertTrack(tracks.Lookup(e.Track), artists, albums),
		})
	}
	return entries
}

// socialIndexes holds the side tables of a social action response.
type socialIndexes struct {
	tracks  trackIndex
	artists artistIndex
	albums  albumIndex
	users   userIndex
}

func newSocialIndexes(r *services.SocialActionResponse) socialIndexes {
	return socialIndexes{
		tracks:  services.TrackIndex(r.Tracks),
		artists: services.ArtistIndex(r.Artists),
		albums:  services.AlbumIndex(r.Albums),
		users:   services.UserIndex(r.Users),
	}
}

func convertSocialAction(sa *services.SocialAction, idx socialIndexes) *models.SocialAction {
	action := &models.SocialAction{
		ID:         sa.ID,
		Type:       sa.Type,
		Action:     sa.Action,
		Date:       sa.Timestamp.Time,
		Track:      convertTrack(idx.tracks.Lookup(sa.Track), idx.artists, idx.albums),
		ArtistName: artistName(idx.artists, sa.Artist),
	}
	if a := idx.albums.Lookup(sa.Album); a != nil {
		action.AlbumName = a.Name
	}
	if u := idx.users.Lookup(sa.User); u != nil {
		action.User = convertUser(u, idx.tracks, idx.artists, nil)
		action.UserName = u.Name
	}
	if u := idx.users.Lookup(sa.Target); u != nil {
		action.Target = convertUser(u, idx.tracks, idx.artists, nil)
		action.TargetName = u.Name
	}
	return action
}

// convertUserPlaylists converts a user's playlist listing in order.
func convertUserPlaylists(resp *Response) {
	raw, ok := resp.Raw.(*services.Playlists)
	if !ok {
		return
	}
	for _, p := range raw.Playlists {
		resp.Converted.Playlists = append(resp.Converted.Playlists, convertPlaylist(p))
	}
}

// convertPlaylistEntries converts a single playlist with its entries.
func convertPlaylistEntries(resp *Response) {
	raw, ok := resp.Raw.(*services.PlaylistEntries)
	if !ok {
		return
	}
	playlist := convertPlaylist(raw.Playlist)
	playlist.Entries = convertEntries(raw)
	resp.Converted.Playlists = append(resp.Converted.Playlists, playlist)
}

// convertLovedItems converts the loved items join into the loved-items pseudo-playlist.
func convertLovedItems(resp *Response) {
	if len(resp.Joined.Entries) == 0 {
		return
	}
	join := resp.Joined.Entries[0]
	playlist := convertPlaylist(join.Playlist)
	playlist.ID = models.LovedItemsPlaylistID
	if join.Entries != nil {
		playlist.Entries = convertEntries(join.Entries)
	}
	resp.Converted.Playlists = []*models.Playlist{playlist}
}

// convertSearch scans ranked results once, keeping items above [services.MinSearchScore]
// whose reference resolves. Per-type output keeps ranked order.
func convertSearch(resp *Response) {
	raw, ok := resp.Raw.(*services.Search)
	if !ok {
		return
	}

	users := services.UserIndex(raw.Users)
	albums := services.AlbumIndex(raw.Albums)
	artists := services.ArtistIndex(raw.Artists)
	tracks := services.TrackIndex(raw.Tracks)
	images := services.ImageIndex(raw.Images)

	for _, item := range raw.SearchResults {
		if item.Score <= services.MinSearchScore {
			continue
		}
		switch item.Type {
		case services.SearchTypeAlbum:
			if a := albums.Lookup(item.Album); a != nil {
				album := convertAlbum(a, artistName(artists, a.Artist), nil, images.First(a.Images))
				resp.Converted.Albums = append(resp.Converted.Albums, album)
			}
		case services.SearchTypeArtist:
			if a := artists.Lookup(item.Artist); a != nil {
				resp.Converted.Artists = append(resp.Converted.Artists, convertArtist(a, images.First(a.Images)))
			}
		case services.SearchTypeUser:
			if u := users.Lookup(item.User); u != nil {
				resp.Converted.Users = append(resp.Converted.Users, convertUser(u, tracks, artists, images))
			}
		}
	}
}

// convertSelf converts the first user of a self lookup.
func convertSelf(resp *Response) {
	raw, ok := resp.Raw.(*services.Users)
	if !ok || len(raw.Users) == 0 {
		return
	}
	user := convertUser(&raw.Users[0],
		services.TrackIndex(raw.Tracks),
		services.ArtistIndex(raw.Artists),
		services.ImageIndex(raw.Images),
	)
	resp.Converted.Users = []*models.User{user}
}
