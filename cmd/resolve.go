package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/infosys/internal/formatter"
	"github.com/desertthunder/infosys/internal/infosystem"
	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
)

// resolveTarget describes one `resolve` subcommand.
type resolveTarget struct {
	kind   services.Kind
	usage  string
	needs  string // argument name, empty when none
	params func(arg string, cmd *cli.Command) services.Params
	target func(arg string, cmd *cli.Command) models.FillTarget
}

func byName(arg string, _ *cli.Command) services.Params {
	return services.NewParams(services.ParamName, arg)
}

func byID(arg string, _ *cli.Command) services.Params {
	return services.NewParams(services.ParamID, arg)
}

func newArtistTarget(arg string, _ *cli.Command) models.FillTarget { return models.NewArtist(arg) }

func newUserTarget(arg string, _ *cli.Command) models.FillTarget { return models.NewUser(arg, "") }

var resolveTargets = map[string]resolveTarget{
	"artist":  {kind: services.KindArtists, usage: "Artist info by name", needs: "name", params: byName, target: newArtistTarget},
	"albums":  {kind: services.KindArtistsAlbums, usage: "Albums of an artist with their tracks", needs: "name", params: byName, target: newArtistTarget},
	"tophits": {kind: services.KindArtistsTopHits, usage: "Top hits of an artist in chart order", needs: "name", params: byName, target: newArtistTarget},
	"album": {
		kind:  services.KindAlbums,
		usage: "Album detail by name (use --artist to disambiguate)",
		needs: "name",
		params: func(arg string, cmd *cli.Command) services.Params {
			p := services.NewParams(services.ParamName, arg)
			if artist := cmd.String("artist"); artist != "" {
				p.Add(services.ParamArtistName, artist)
			}
			return p
		},
		target: func(arg string, cmd *cli.Command) models.FillTarget {
			return models.NewAlbum(arg, cmd.String("artist"))
		},
	},
	"user":      {kind: services.KindUsers, usage: "User profile by name", needs: "name", params: byName, target: func(arg string, _ *cli.Command) models.FillTarget { return models.NewUser("", arg) }},
	"self":      {kind: services.KindUsersSelf, usage: "Profile of the signed-in user"},
	"playlists": {kind: services.KindUsersPlaylists, usage: "Playlists of the signed-in user"},
	"loved":     {kind: services.KindUsersLovedItems, usage: "Loved tracks of the signed-in user"},
	"entries":   {kind: services.KindPlaylistsEntries, usage: "Entries of a playlist", needs: "playlist-id", params: byID},
	"search":    {kind: services.KindSearches, usage: "Search albums, artists and users", needs: "term", params: func(arg string, _ *cli.Command) services.Params { return services.NewParams(services.ParamTerm, arg) }},
	"actions":   {kind: services.KindUsersSocialActions, usage: "Social actions of a user", needs: "user-id", params: byID, target: newUserTarget},
	"feed":      {kind: services.KindUsersFriendsFeed, usage: "Friends feed of a user", needs: "user-id", params: byID, target: newUserTarget},
}

// Resolve runs a single resolve request and prints the filled target or converted response.
func (r *Runner) Resolve(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Name
	rt, ok := resolveTargets[name]
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrUnknownKind, name)
	}

	arg := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if rt.needs != "" && arg == "" {
		return fmt.Errorf("%w: %s", shared.ErrMissingArgument, rt.needs)
	}

	var params services.Params
	if rt.params != nil {
		params = rt.params(arg, cmd)
	}

	s, err := r.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	req := infosystem.NewRequest(rt.kind, params)
	var target models.FillTarget
	if rt.target != nil {
		target = rt.target(arg, cmd)
		err = s.engine.ResolveInto(req, target)
	} else {
		err = s.engine.Resolve(req)
	}
	if err != nil {
		return err
	}

	outcome, err := s.await(ctx, req, cmd.Duration("timeout"))
	if err != nil {
		return err
	}
	r.logger.Debug("resolved", "kind", rt.kind, "elapsed", outcome.Duration)

	resp, _ := s.engine.TakeResponse(req.ID)
	return r.render(cmd, target, resp)
}

func (r *Runner) render(cmd *cli.Command, target models.FillTarget, resp *infosystem.Response) error {
	if cmd.Bool("json") {
		if target != nil {
			return r.writeJSON(formatter.TargetView(target), true)
		}
		return r.writeJSON(formatter.NewResponseView(resp), true)
	}

	if target != nil {
		return r.writePlain("%s", formatter.TargetText(target))
	}
	text, err := formatter.ResponseText(resp)
	if err != nil {
		return err
	}
	return r.writePlain("%s", text)
}

func resolveSubcommands(r *Runner) []*cli.Command {
	names := make([]string, 0, len(resolveTargets))
	for name := range resolveTargets {
		names = append(names, name)
	}
	slices.Sort(names)

	commands := make([]*cli.Command, 0, len(names))
	for _, name := range names {
		rt := resolveTargets[name]
		c := &cli.Command{
			Name:   name,
			Usage:  rt.usage,
			Action: r.Resolve,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				&cli.DurationFlag{Name: "timeout", Usage: "How long to wait for the result", Value: 30 * time.Second},
			},
		}
		if rt.needs != "" {
			c.ArgsUsage = "<" + rt.needs + ">"
		}
		if name == "album" {
			c.Flags = append(c.Flags, &cli.StringFlag{Name: "artist", Usage: "Artist name"})
		}
		commands = append(commands, c)
	}
	return commands
}
