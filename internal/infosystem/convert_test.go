package infosystem

import (
	"testing"

	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
)

func TestConvertSearch(t *testing.T) {
	raw := &services.Search{
		SearchResults: []services.SearchItem{
			{Type: services.SearchTypeArtist, Artist: "A2", Score: 9},
			{Type: services.SearchTypeAlbum, Album: "AL1", Score: 5.0},
			{Type: services.SearchTypeAlbum, Album: "AL2", Score: 5.01},
			{Type: services.SearchTypeUser, User: "U1", Score: 6},
			{Type: services.SearchTypeUser, User: "missing", Score: 8},
			{Type: services.SearchTypeArtist, Artist: "A1", Score: 4},
			{Type: "track", Track: "T1", Score: 10},
			{Type: services.SearchTypeArtist, Artist: "A3", Score: 7},
		},
		Users:   []services.UserInfo{{ID: "U1", Name: "muesli"}},
		Albums:  []services.AlbumInfo{{ID: "AL1", Name: "low"}, {ID: "AL2", Name: "Geogaddi", Artist: "A1", Images: []string{"I1"}}},
		Artists: []services.ArtistInfo{{ID: "A1", Name: "Boards of Canada"}, {ID: "A2", Name: "Tycho"}, {ID: "A3", Name: "Bibio"}},
		Images:  []services.Image{{ID: "I1", URL: "https://img/1.jpg"}},
	}
	resp := &Response{Raw: raw}
	convertSearch(resp)

	c := resp.Converted
	if len(c.Albums) != 1 || c.Albums[0].ID() != "AL2" {
		t.Fatalf("albums = %v", c.Albums)
	}
	if c.Albums[0].Artist() != "Boards of Canada" {
		t.Errorf("album artist = %q", c.Albums[0].Artist())
	}
	if img := c.Albums[0].Image(); img == nil || img.ID != "I1" {
		t.Errorf("album image = %+v", img)
	}
	if len(c.Users) != 1 || c.Users[0].Name() != "muesli" {
		t.Errorf("users = %v", c.Users)
	}
	if len(c.Artists) != 2 || c.Artists[0].Name() != "Tycho" || c.Artists[1].Name() != "Bibio" {
		t.Errorf("artists = %v", c.Artists)
	}
	if len(c.Playlists) != 0 {
		t.Errorf("playlists = %v", c.Playlists)
	}
}

func TestConvertSearch_Empty(t *testing.T) {
	resp := &Response{Raw: &services.Search{}}
	convertSearch(resp)
	if !resp.Converted.Empty() {
		t.Errorf("converted = %+v, want empty", resp.Converted)
	}
}

func TestConvertTrack(t *testing.T) {
	artists := services.ArtistIndex([]services.ArtistInfo{{ID: "A1", Name: "Tycho"}})
	albums := services.AlbumIndex([]services.AlbumInfo{{ID: "AL1", Name: "Dive"}})

	tests := []struct {
		name       string
		info       *services.TrackInfo
		wantArtist string
		wantAlbum  string
	}{
		{name: "nil", info: nil},
		{name: "resolved", info: &services.TrackInfo{ID: "T1", Artist: "A1", Album: "AL1", Duration: 1.5}, wantArtist: "Tycho", wantAlbum: "Dive"},
		{name: "unresolved", info: &services.TrackInfo{ID: "T2", Artist: "A9", Album: "AL9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertTrack(tt.info, artists, albums)
			if tt.info == nil {
				if got != nil {
					t.Errorf("convertTrack(nil) = %+v", got)
				}
				return
			}
			if got.Artist != tt.wantArtist || got.Album != tt.wantAlbum {
				t.Errorf("refs = %q/%q, want %q/%q", got.Artist, got.Album, tt.wantArtist, tt.wantAlbum)
			}
			if got.Duration.Seconds() != tt.info.Duration {
				t.Errorf("duration = %v", got.Duration)
			}
		})
	}
}

func TestConvertPlaylistEntries(t *testing.T) {
	resp := &Response{Raw: &services.PlaylistEntries{
		Playlist:        services.PlaylistInfo{ID: "P1", Title: "Mix", CurrentRevision: "r2"},
		PlaylistEntries: []services.PlaylistEntry{{ID: "E1", Track: "T1"}, {ID: "E2", Track: "gone"}},
		Tracks:          []services.TrackInfo{{ID: "T1", Name: "one"}},
	}}
	convertPlaylistEntries(resp)

	if len(resp.Converted.Playlists) != 1 {
		t.Fatalf("playlists = %d", len(resp.Converted.Playlists))
	}
	p := resp.Converted.Playlists[0]
	if p.ID != "P1" || p.Name != "Mix" || p.CurrentRevision != "r2" || p.IsLovedItems() {
		t.Errorf("playlist = %+v", p)
	}
	if len(p.Entries) != 2 || p.Entries[1].Track != nil {
		t.Errorf("entries = %+v", p.Entries)
	}
	if tracks := p.Tracks(); len(tracks) != 1 {
		t.Errorf("tracks = %d, want 1", len(tracks))
	}
}

func TestFillSocial(t *testing.T) {
	raw := &services.SocialActionResponse{
		SocialActions: []services.SocialAction{
			{ID: "S1", Type: models.ActionLove, Action: "true", User: "U1", Track: "T1"},
			{ID: "S2", Type: models.ActionFollow, Action: "true", User: "U1", Target: "U2"},
		},
		Tracks:  []services.TrackInfo{{ID: "T1", Name: "Roygbiv", Artist: "A1"}},
		Artists: []services.ArtistInfo{{ID: "A1", Name: "Boards of Canada"}},
		Users:   []services.UserInfo{{ID: "U1", Name: "me"}, {ID: "U2", Name: "friend"}},
	}

	tests := []struct {
		kind Kind
		get  func(*models.User) []*models.SocialAction
	}{
		{kind: services.KindUsersSocialActions, get: (*models.User).SocialActions},
		{kind: services.KindUsersFriendsFeed, get: (*models.User).FriendsFeed},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			user := models.NewUser("U1", "me")
			if err := fillSocial(tt.kind, user, &Response{Raw: raw}); err != nil {
				t.Fatalf("fillSocial() error = %v", err)
			}
			actions := tt.get(user)
			if len(actions) != 2 {
				t.Fatalf("actions = %d, want 2", len(actions))
			}
			if actions[0].Track == nil || actions[0].Track.Artist != "Boards of Canada" {
				t.Errorf("love track = %+v", actions[0].Track)
			}
			if actions[1].TargetName != "friend" || actions[1].UserName != "me" {
				t.Errorf("follow = %+v", actions[1])
			}
		})
	}

	t.Run("empty listing keeps existing actions", func(t *testing.T) {
		for _, tt := range tests {
			user := models.NewUser("U1", "me")
			existing := []*models.SocialAction{{ID: "S0", Type: models.ActionLove}}
			user.SetSocialActions(existing)
			user.SetFriendsFeed(existing)

			if err := fillSocial(tt.kind, user, &Response{Raw: &services.SocialActionResponse{}}); err != nil {
				t.Fatalf("fillSocial() error = %v", err)
			}
			if actions := tt.get(user); len(actions) != 1 || actions[0].ID != "S0" {
				t.Errorf("%s: actions = %+v, want the preloaded one", tt.kind, actions)
			}
		}
	})

	if err := fillSocial(services.KindUsersSocialActions, models.NewArtist("X"), &Response{Raw: raw}); err == nil {
		t.Error("expected a target mismatch error")
	}
}
