package infosystem

import (
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/desertthunder/infosys/internal/models"
)

type trackRef struct {
	Track  string `json:"trackString"`
	Artist string `json:"artistString"`
	Album  string `json:"albumString"`
}

type playbackLogEntry struct {
	trackRef
	Timestamp string `json:"timestamp"`
}

type socialActionPayload struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	trackRef
}

// NowPlayingPayload builds the body announcing that t started playing.
func NowPlayingPayload(t *models.Track) ([]byte, error) {
	return json.Marshal(map[string]trackRef{"nowPlaying": newTrackRef(t)})
}

// PlaybackLogPayload builds the body logging that t was played at ts.
func PlaybackLogPayload(t *models.Track, ts time.Time) ([]byte, error) {
	entry := playbackLogEntry{trackRef: newTrackRef(t), Timestamp: ts.UTC().Format(time.RFC3339)}
	return json.Marshal(map[string]playbackLogEntry{"playbackLogEntry": entry})
}

// SocialActionPayload builds a social action body such as a love or unlove of t.
func SocialActionPayload(actionType string, enabled bool, t *models.Track) ([]byte, error) {
	sa := socialActionPayload{
		Action:   strconv.FormatBool(enabled),
		Type:     actionType,
		trackRef: newTrackRef(t),
	}
	return json.Marshal(map[string]socialActionPayload{"socialAction": sa})
}

func newTrackRef(t *models.Track) trackRef {
	if t == nil {
		return trackRef{}
	}
	return trackRef{Track: t.Name, Artist: t.Artist, Album: t.Album}
}
