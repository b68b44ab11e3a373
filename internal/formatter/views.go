package formatter

import (
	"github.com/desertthunder/infosys/internal/infosystem"
	"github.com/desertthunder/infosys/internal/models"
)

// ArtistView is the serializable form of [models.Artist].
type ArtistView struct {
	ID      string          `json:"id,omitempty"`
	Name    string          `json:"name"`
	Bio     string          `json:"bio,omitempty"`
	Image   *models.Image   `json:"image,omitempty"`
	Albums  []AlbumView     `json:"albums,omitempty"`
	TopHits []*models.Track `json:"top_hits,omitempty"`
}

// AlbumView is the serializable form of [models.Album].
type AlbumView struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Artist      string          `json:"artist,omitempty"`
	ReleaseDate string          `json:"release_date,omitempty"`
	Image       *models.Image   `json:"image,omitempty"`
	Tracks      []*models.Track `json:"tracks,omitempty"`
}

// UserView is the serializable form of [models.User].
type UserView struct {
	models.Profile
	SocialActions []*models.SocialAction `json:"social_actions,omitempty"`
	FriendsFeed   []*models.SocialAction `json:"friends_feed,omitempty"`
}

// ResponseView is the serializable form of a resolved response.
type ResponseView struct {
	RequestID string             `json:"request_id"`
	Kind      string             `json:"kind"`
	Artists   []ArtistView       `json:"artists,omitempty"`
	Albums    []AlbumView        `json:"albums,omitempty"`
	Users     []UserView         `json:"users,omitempty"`
	Playlists []*models.Playlist `json:"playlists,omitempty"`
	Raw       any                `json:"raw,omitempty"`
}

func NewArtistView(a *models.Artist) ArtistView {
	v := ArtistView{ID: a.ID(), Name: a.Name(), Bio: a.Bio(), Image: a.Image(), TopHits: a.TopHits()}
	for _, album := range a.Albums() {
		v.Albums = append(v.Albums, NewAlbumView(album))
	}
	return v
}

func NewAlbumView(a *models.Album) AlbumView {
	return AlbumView{
		ID:          a.ID(),
		Name:        a.Name(),
		Artist:      a.Artist(),
		ReleaseDate: a.ReleaseDate(),
		Image:       a.Image(),
		Tracks:      a.Tracks(),
	}
}

func NewUserView(u *models.User) UserView {
	return UserView{Profile: u.Profile(), SocialActions: u.SocialActions(), FriendsFeed: u.FriendsFeed()}
}

// NewResponseView converts resp. The raw shape is included only when nothing was converted.
func NewResponseView(resp *infosystem.Response) ResponseView {
	v := ResponseView{RequestID: resp.RequestID, Kind: resp.Kind.String(), Playlists: resp.Converted.Playlists}
	for _, a := range resp.Converted.Artists {
		v.Artists = append(v.Artists, NewArtistView(a))
	}
	for _, a := range resp.Converted.Albums {
		v.Albums = append(v.Albums, NewAlbumView(a))
	}
	for _, u := range resp.Converted.Users {
		v.Users = append(v.Users, NewUserView(u))
	}
	if resp.Converted.Empty() {
		v.Raw = resp.Raw
	}
	return v
}

// TargetView returns the serializable form of a fill target.
func TargetView(target models.FillTarget) any {
	switch t := target.(type) {
	case *models.Artist:
		return NewArtistView(t)
	case *models.Album:
		return NewAlbumView(t)
	case *models.User:
		return NewUserView(t)
	default:
		return target
	}
}

// TargetText renders a fill target with the matching text renderer.
func TargetText(target models.FillTarget) string {
	switch t := target.(type) {
	case *models.Artist:
		return ArtistText(t)
	case *models.Album:
		return AlbumText(t)
	case *models.User:
		return UserText(t)
	default:
		return target.TargetName() + "\n"
	}
}
