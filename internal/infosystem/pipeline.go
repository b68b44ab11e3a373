package infosystem

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/infosys/internal/services"
)

// call carries the state of one resolve work unit through its fetch chain.
type call struct {
	ctx       context.Context
	req       Request
	self      string
	baseURL   string
	transport Transport
	logger    *log.Logger
}

// get performs one GET for kind and parses the body into T.
func get[T any](c *call, kind Kind, params services.Params) (*T, error) {
	url, err := services.BuildQuery(c.baseURL, kind, params)
	if err != nil {
		return nil, err
	}

	body, err := c.transport.Get(c.ctx, url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	v, err := services.Decode[T](body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	c.logger.Debug("fetched", "url", url, "bytes", len(body))
	return v, nil
}

// fetchSimple issues a single GET with the request's own parameters.
func fetchSimple[T any](c *call) (*Response, error) {
	raw, err := get[T](c, c.req.Kind, c.req.Params)
	if err != nil {
		return nil, err
	}
	return &Response{Raw: raw}, nil
}

func fetchSelf(c *call) (*Response, error) {
	raw, err := get[services.Users](c, services.KindUsersSelf, services.NewParams(services.ParamIDArray, c.self))
	if err != nil {
		return nil, err
	}
	return &Response{Raw: raw}, nil
}

func fetchUserPlaylists(c *call) (*Response, error) {
	raw, err := get[services.Playlists](c, services.KindUsersPlaylists, services.NewParams(services.ParamID, c.self))
	if err != nil {
		return nil, err
	}
	return &Response{Raw: raw}, nil
}

func fetchLovedItems(c *call) (*Response, error) {
	entries, err := get[services.PlaylistEntries](c, services.KindUsersLovedItems, services.NewParams(services.ParamID, c.self))
	if err != nil {
		return nil, err
	}
	return &Response{
		Raw:    entries,
		Joined: Joined{Entries: []EntriesJoin{{Playlist: entries.Playlist, Entries: entries}}},
	}, nil
}

// fetchAnchorArtist looks up artists with the request parameters and returns the first one, or nil.
func fetchAnchorArtist(c *call) (*services.Artists, *services.ArtistInfo, error) {
	artists, err := get[services.Artists](c, services.KindArtists, c.req.Params)
	if err != nil {
		return nil, nil, err
	}
	if len(artists.Artists) == 0 {
		return artists, nil, nil
	}
	return artists, &artists.Artists[0], nil
}

// fetchTracks issues one batched lookup for every referenced track ID.
func fetchTracks(c *call, ids []string) (*services.Tracks, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	params := make(services.Params, 0, len(ids))
	for _, id := range ids {
		params.Add(services.ParamIDArray, id)
	}
	return get[services.Tracks](c, services.KindTracks, params)
}

func fetchArtistAlbums(c *call) (*Response, error) {
	artists, artist, err := fetchAnchorArtist(c)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return &Response{Raw: artists}, nil
	}

	charts, err := get[services.Charts](c, services.KindArtistsAlbums, services.NewParams(services.ParamID, artist.ID))
	if err != nil {
		return nil, err
	}

	images := services.ImageIndex(charts.Images)
	joins := make([]AlbumJoin, 0, len(charts.Albums))
	for i := range charts.Albums {
		album := &charts.Albums[i]
		join := AlbumJoin{Album: album, Image: images.First(album.Images)}
		if join.Tracks, err = fetchTracks(c, album.Tracks); err != nil {
			return nil, err
		}
		joins = append(joins, join)
	}

	return &Response{Raw: charts, Joined: Joined{Artist: artist, Albums: joins}}, nil
}

func fetchArtistTopHits(c *call) (*Response, error) {
	artists, artist, err := fetchAnchorArtist(c)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return &Response{Raw: artists}, nil
	}

	charts, err := get[services.Charts](c, services.KindArtistsTopHits, services.NewParams(services.ParamID, artist.ID))
	if err != nil {
		return nil, err
	}

	tracks := services.TrackIndex(charts.Tracks)
	joins := make([]ChartJoin, 0, len(charts.ChartItems))
	for _, item := range charts.ChartItems {
		joins = append(joins, ChartJoin{Item: item, Track: tracks.Lookup(item.Track)})
	}

	return &Response{Raw: charts, Joined: Joined{Artist: artist, Charts: joins}}, nil
}

func fetchAlbumDetail(c *call) (*Response, error) {
	albums, err := get[services.Albums](c, services.KindAlbums, c.req.Params)
	if err != nil {
		return nil, err
	}
	if len(albums.Albums) == 0 {
		return &Response{Raw: albums}, nil
	}

	album := &albums.Albums[0]
	join := AlbumJoin{Album: album, Image: services.ImageIndex(albums.Images).First(album.Images)}
	if join.Tracks, err = fetchTracks(c, album.Tracks); err != nil {
		return nil, err
	}

	return &Response{Raw: albums, Joined: Joined{Albums: []AlbumJoin{join}}}, nil
}
