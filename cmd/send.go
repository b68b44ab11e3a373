package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/infosys/internal/infosystem"
	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
)

// Send posts a now-playing, playback log or social action payload for a track.
func (r *Runner) Send(ctx context.Context, cmd *cli.Command) error {
	track := &models.Track{
		Name:   cmd.String("track"),
		Artist: cmd.String("artist"),
		Album:  cmd.String("album"),
	}
	if track.Name == "" || track.Artist == "" {
		return fmt.Errorf("%w: --track and --artist are required", shared.ErrMissingArgument)
	}

	var (
		kind    services.Kind
		payload []byte
		err     error
	)
	switch cmd.Name {
	case "nowplaying":
		kind = services.KindPlaybackLogEntriesNowPlaying
		payload, err = infosystem.NowPlayingPayload(track)
	case "playback":
		kind = services.KindPlaybackLogEntries
		payload, err = infosystem.PlaybackLogPayload(track, time.Now())
	case "social":
		kind = services.KindSocialActions
		payload, err = infosystem.SocialActionPayload(cmd.String("type"), !cmd.Bool("undo"), track)
	default:
		return fmt.Errorf("%w: %s", shared.ErrUnknownKind, cmd.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to build payload: %w", err)
	}

	s, err := r.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	req := infosystem.NewSendRequest(kind, payload)
	if err := s.engine.Send(req); err != nil {
		return err
	}
	if _, err := s.await(ctx, req, cmd.Duration("timeout")); err != nil {
		return err
	}
	return r.writePlain("✓ Sent %s\n", kind)
}
