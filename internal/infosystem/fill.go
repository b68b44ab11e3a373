package infosystem

import (
	"fmt"

	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
)

func targetMismatch(kind Kind, target models.FillTarget) error {
	return fmt.Errorf("%w: %s cannot fill %s target", shared.ErrInvalidArgument, kind, target.TargetName())
}

// fillArtist merges the first artist of a lookup into the target.
func fillArtist(kind Kind, target models.FillTarget, resp *Response) error {
	artist, ok := target.(*models.Artist)
	if !ok {
		return targetMismatch(kind, target)
	}
	raw, ok := resp.Raw.(*services.Artists)
	if !ok || len(raw.Artists) == 0 {
		return nil
	}
	info := &raw.Artists[0]
	artist.SetInfo(info.ID, info.Name, info.WikiAbstract)
	artist.SetImage(convertImage(services.ImageIndex(raw.Images).First(info.Images)))
	return nil
}

// fillArtistAlbums adds every joined album, with its tracks, to the target.
func fillArtistAlbums(kind Kind, target models.FillTarget, resp *Response) error {
	artist, ok := target.(*models.Artist)
	if !ok {
		return targetMismatch(kind, target)
	}
	if resp.Joined.Artist != nil {
		artist.SetInfo(resp.Joined.Artist.ID, "", "")
	}
	for _, join := range resp.Joined.Albums {
		tracks := convertTracks(join.Tracks, join.Album.Name)
		artist.AddAlbum(convertAlbum(join.Album, artist.Name(), tracks, join.Image))
	}
	return nil
}

// fillArtistTopHits replaces the target's top hits in chart order. A chart with no
// resolvable tracks leaves them as is.
func fillArtistTopHits(kind Kind, target models.FillTarget, resp *Response) error {
	artist, ok := target.(*models.Artist)
	if !ok {
		return targetMismatch(kind, target)
	}
	if resp.Joined.Artist == nil {
		return nil
	}
	artist.SetInfo(resp.Joined.Artist.ID, "", "")

	var artists artistIndex
	var albums albumIndex
	if charts, ok := resp.Raw.(*services.Charts); ok {
		artists = services.ArtistIndex(charts.Artists)
		albums = services.AlbumIndex(charts.Albums)
	}

	hits := make([]*models.Track, 0, len(resp.Joined.Charts))
	for _, join := range resp.Joined.Charts {
		if join.Track == nil {
			continue
		}
		hits = append(hits, convertTrack(join.Track, artists, albums))
	}
	if len(hits) > 0 {
		artist.SetTopHits(hits)
	}
	return nil
}

// fillAlbum merges album detail, its first image and its tracks into the target.
func fillAlbum(kind Kind, target models.FillTarget, resp *Response) error {
	album, ok := target.(*models.Album)
	if !ok {
		return targetMismatch(kind, target)
	}
	if len(resp.Joined.Albums) == 0 {
		return nil
	}

	join := resp.Joined.Albums[0]
	var artist string
	if raw, ok := resp.Raw.(*services.Albums); ok {
		artist = artistName(services.ArtistIndex(raw.Artists), join.Album.Artist)
	}
	album.SetInfo(join.Album.ID, join.Album.Name, artist, join.Album.ReleaseDate)
	album.SetImage(convertImage(join.Image))
	if tracks := convertTracks(join.Tracks, join.Album.Name); len(tracks) > 0 {
		album.SetTracks(tracks)
	}
	return nil
}

// fillUser merges the first user's profile into the target.
func fillUser(kind Kind, target models.FillTarget, resp *Response) error {
	user, ok := target.(*models.User)
	if !ok {
		return targetMismatch(kind, target)
	}
	raw, ok := resp.Raw.(*services.Users)
	if !ok || len(raw.Users) == 0 {
		return nil
	}
	user.SetProfile(userProfile(&raw.Users[0],
		services.TrackIndex(raw.Tracks),
		services.ArtistIndex(raw.Artists),
		services.ImageIndex(raw.Images),
	))
	return nil
}

// fillSocial converts a social action listing and stores it on the target user
// as either its own actions or its friends feed. An empty listing leaves the target as is.
func fillSocial(kind Kind, target models.FillTarget, resp *Response) error {
	user, ok := target.(*models.User)
	if !ok {
		return targetMismatch(kind, target)
	}
	raw, ok := resp.Raw.(*services.SocialActionResponse)
	if !ok || len(raw.SocialActions) == 0 {
		return nil
	}

	idx := newSocialIndexes(raw)
	actions := make([]*models.SocialAction, 0, len(raw.SocialActions))
	for i := range raw.SocialActions {
		actions = append(actions, convertSocialAction(&raw.SocialActions[i], idx))
	}

	if kind == services.KindUsersFriendsFeed {
		user.SetFriendsFeed(actions)
	} else {
		user.SetSocialActions(actions)
	}
	return nil
}
