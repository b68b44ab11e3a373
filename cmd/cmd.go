// submodule cmd contains command definitions
package main

import (
	"time"

	"github.com/urfave/cli/v3"
)

// setupCommand creates the config file and database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
	}
}

// authCommand manages the stored identity and access token
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the Hatchet identity and access token",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Store a user name and/or access token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "username",
						Aliases: []string{"u"},
						Usage:   "Hatchet user name used to look up your user id",
					},
					&cli.StringFlag{
						Name:    "token",
						Aliases: []string{"t"},
						Usage:   "Access token for sending activity",
						Sources: cli.EnvVars(tokenEnv),
					},
					&cli.StringFlag{
						Name:  "token-type",
						Usage: "Token type stored alongside the token",
						Value: "Bearer",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "status",
				Usage: "Show the stored identity and token state",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
				},
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Remove the stored access token",
				Action: r.AuthLogout,
			},
		},
	}
}

// resolveCommand fetches metadata
func resolveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "resolve",
		Aliases:  []string{"r"},
		Usage:    "Resolve artists, albums, users and playlists",
		Commands: resolveSubcommands(r),
	}
}

// sendCommand posts listening activity
func sendCommand(r *Runner) *cli.Command {
	trackFlags := func(extra ...cli.Flag) []cli.Flag {
		flags := []cli.Flag{
			&cli.StringFlag{Name: "track", Usage: "Track name", Required: true},
			&cli.StringFlag{Name: "artist", Usage: "Artist name", Required: true},
			&cli.StringFlag{Name: "album", Usage: "Album name"},
			&cli.DurationFlag{Name: "timeout", Usage: "How long to wait for delivery", Value: 30 * time.Second},
		}
		return append(flags, extra...)
	}

	return &cli.Command{
		Name:  "send",
		Usage: "Send listening activity",
		Commands: []*cli.Command{
			{
				Name:   "nowplaying",
				Usage:  "Announce the track that is playing now",
				Flags:  trackFlags(),
				Action: r.Send,
			},
			{
				Name:   "playback",
				Usage:  "Log a finished playback",
				Flags:  trackFlags(),
				Action: r.Send,
			},
			{
				Name:  "social",
				Usage: "Love a track (or other social action)",
				Flags: trackFlags(
					&cli.StringFlag{Name: "type", Usage: "Social action type", Value: "love"},
					&cli.BoolFlag{Name: "undo", Usage: "Revert the action"},
				),
				Action: r.Send,
			},
		},
	}
}

// outcomesCommand lists the outcome log
func outcomesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "outcomes",
		Usage: "List recent request outcomes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of outcomes to return",
				Value: 20,
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Only show outcomes with this status",
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Only show outcomes of this request kind",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON",
			},
		},
		Action: r.Outcomes,
	}
}

// statsCommand prints outcome counts and process metrics
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show outcome counts and metrics",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON",
			},
		},
		Action: r.Stats,
	}
}
