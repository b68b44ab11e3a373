package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/infosys/internal/shared"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		params Params
		want   string
	}{
		{
			name:   "artists by name",
			kind:   KindArtists,
			params: NewParams(ParamName, "Boards of Canada"),
			want:   "https://api.hatchet.is/v1/artists/?name=Boards+of+Canada",
		},
		{
			name:   "batched tracks keep bracketed keys",
			kind:   KindTracks,
			params: NewParams(ParamIDArray, "T1", ParamIDArray, "T2"),
			want:   "https://api.hatchet.is/v1/tracks/?ids[]=T1&ids[]=T2",
		},
		{
			name:   "artist albums splices id",
			kind:   KindArtistsAlbums,
			params: NewParams(ParamID, "A1"),
			want:   "https://api.hatchet.is/v1/artists/A1/albums/",
		},
		{
			name:   "top hits splices id",
			kind:   KindArtistsTopHits,
			params: NewParams(ParamID, "A1"),
			want:   "https://api.hatchet.is/v1/artists/A1/topHits/",
		},
		{
			name:   "first id wins and every id is dropped",
			kind:   KindPlaylistsEntries,
			params: NewParams(ParamID, "P1", "limit", "5", ParamID, "P2"),
			want:   "https://api.hatchet.is/v1/playlists/P1/entries?limit=5",
		},
		{
			name:   "user scoped kinds",
			kind:   KindUsersLovedItems,
			params: NewParams(ParamID, "U1"),
			want:   "https://api.hatchet.is/v1/users/U1/lovedItems",
		},
		{
			name:   "friends feed",
			kind:   KindUsersFriendsFeed,
			params: NewParams(ParamID, "U1"),
			want:   "https://api.hatchet.is/v1/users/U1/friendsFeed",
		},
		{
			name:   "self lookup uses users endpoint",
			kind:   KindUsersSelf,
			params: NewParams(ParamIDArray, "U1"),
			want:   "https://api.hatchet.is/v1/users/?ids[]=U1",
		},
		{
			name: "now playing without params",
			kind: KindPlaybackLogEntriesNowPlaying,
			want: "https://api.hatchet.is/v1/playbackLogEntries/nowplaying/",
		},
		{
			name:   "leftover order is insertion order",
			kind:   KindSearches,
			params: NewParams(ParamTerm, "a&b", "limit", "3", ParamArtistName, "x"),
			want:   "https://api.hatchet.is/v1/searches/?term=a%26b&limit=3&artist_name=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildQuery("", tt.kind, tt.params)
			if err != nil {
				t.Fatalf("BuildQuery() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQuery_Deterministic(t *testing.T) {
	params := NewParams(ParamID, "A1", "a", "1", "b", "2", "a", "3")
	for _, kind := range AllKinds() {
		first, err1 := BuildQuery("", kind, params)
		second, err2 := BuildQuery("", kind, params)
		if first != second || (err1 == nil) != (err2 == nil) {
			t.Errorf("%s: results differ: %q vs %q", kind, first, second)
		}
		if err1 != nil {
			t.Errorf("%s: unexpected error %v", kind, err1)
		}
		if RequiresPathID(kind) && strings.Contains(first, "id=") {
			t.Errorf("%s: path id leaked into query %q", kind, first)
		}
	}
}

func TestBuildQuery_DoesNotMutateParams(t *testing.T) {
	params := NewParams(ParamID, "A1", "x", "y")
	if _, err := BuildQuery("", KindArtistsAlbums, params); err != nil {
		t.Fatal(err)
	}
	if params.Len() != 2 {
		t.Errorf("expected caller params untouched, got %v", params)
	}
}

func TestBuildQuery_Errors(t *testing.T) {
	t.Run("missing path id", func(t *testing.T) {
		for _, kind := range AllKinds() {
			if !RequiresPathID(kind) {
				continue
			}
			_, err := BuildQuery("", kind, NewParams(ParamName, "x"))
			if !errors.Is(err, shared.ErrInvalidRequest) {
				t.Errorf("%s: expected ErrInvalidRequest, got %v", kind, err)
			}
		}
	})

	t.Run("empty path id", func(t *testing.T) {
		_, err := BuildQuery("", KindUsersPlaylists, NewParams(ParamID, ""))
		if !errors.Is(err, shared.ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := BuildQuery("", Kind(99), nil)
		if !errors.Is(err, shared.ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
	})
}

func TestBuildQuery_BaseURL(t *testing.T) {
	got, err := BuildQuery("http://127.0.0.1:8080/", KindAlbums, NewParams(ParamName, "Geogaddi"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "http://127.0.0.1:8080/v1/albums/?name=Geogaddi" {
		t.Errorf("unexpected url %q", got)
	}
}

func TestKind(t *testing.T) {
	t.Run("every kind has a route and name", func(t *testing.T) {
		for _, kind := range AllKinds() {
			if _, ok := routes[kind]; !ok {
				t.Errorf("%s has no route", kind)
			}
			parsed, err := ParseKind(kind.String())
			if err != nil || parsed != kind {
				t.Errorf("ParseKind(%q) = %v, %v", kind.String(), parsed, err)
			}
		}
	})

	t.Run("unknown names", func(t *testing.T) {
		if _, err := ParseKind("nope"); !errors.Is(err, shared.ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
		if Kind(-1).Valid() || kindCount.Valid() {
			t.Error("out of range kinds reported valid")
		}
	})
}
