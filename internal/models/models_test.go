package models

import (
	"testing"
	"time"
)

func TestArtist(t *testing.T) {
	t.Run("SetInfo keeps fields for empty values", func(t *testing.T) {
		a := NewArtist("Boards of Canada")
		a.SetInfo("A1", "", "")
		if a.ID() != "A1" || a.Name() != "Boards of Canada" {
			t.Errorf("got id=%q name=%q", a.ID(), a.Name())
		}
	})

	t.Run("SetImage ignores nil", func(t *testing.T) {
		a := NewArtist("x")
		a.SetImage(&Image{ID: "I1"})
		a.SetImage(nil)
		if a.Image() == nil || a.Image().ID != "I1" {
			t.Errorf("expected image I1, got %v", a.Image())
		}
	})

	t.Run("AddAlbum replaces by name", func(t *testing.T) {
		a := NewArtist("x")
		a.AddAlbum(NewAlbum("Geogaddi", "x"))
		replacement := NewAlbum("Geogaddi", "x")
		replacement.SetInfo("AL2", "", "", "")
		a.AddAlbum(replacement)
		a.AddAlbum(NewAlbum("Campfire Headphase", "x"))

		albums := a.Albums()
		if len(albums) != 2 {
			t.Fatalf("expected 2 albums, got %d", len(albums))
		}
		if albums[0].ID() != "AL2" {
			t.Errorf("expected replaced album, got id %q", albums[0].ID())
		}
	})

	t.Run("Albums returns a copy", func(t *testing.T) {
		a := NewArtist("x")
		a.AddAlbum(NewAlbum("one", "x"))
		albums := a.Albums()
		albums[0] = nil
		if a.Albums()[0] == nil {
			t.Error("caller mutation leaked into artist")
		}
	})
}

func TestUser_SetProfile(t *testing.T) {
	u := NewUser("U1", "alice")
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	u.SetProfile(Profile{About: "hi", TotalPlays: 10, NowPlaying: &Track{Name: "Roygbiv"}, NowPlayingAt: at})
	u.SetProfile(Profile{FollowCount: 3})

	p := u.Profile()
	if p.ID != "U1" || p.Name != "alice" {
		t.Errorf("identity changed: %+v", p)
	}
	if p.About != "hi" || p.TotalPlays != 10 || p.FollowCount != 3 {
		t.Errorf("merge lost fields: %+v", p)
	}
	if p.NowPlaying == nil || !p.NowPlayingAt.Equal(at) {
		t.Errorf("now playing not merged: %+v", p)
	}
}

func TestPlaylist(t *testing.T) {
	p := &Playlist{
		ID: LovedItemsPlaylistID,
		Entries: []*PlaylistEntry{
			{ID: "E1", Track: &Track{ID: "T1"}},
			{ID: "E2"},
		},
	}
	if !p.IsLovedItems() {
		t.Error("expected loved items playlist")
	}
	if got := p.Tracks(); len(got) != 1 || got[0].ID != "T1" {
		t.Errorf("unexpected tracks %v", got)
	}
}

func TestOutcomeRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  *OutcomeRecord
		wantErr bool
	}{
		{"valid", NewOutcomeRecord("id", "req", "artists", "done"), false},
		{"missing request", NewOutcomeRecord("id", "", "artists", "done"), true},
		{"missing kind", NewOutcomeRecord("id", "req", "", "done"), true},
		{"missing status", NewOutcomeRecord("id", "req", "artists", ""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.record.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
