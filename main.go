package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MingxuanGame/OsuMods/application"
	"github.com/MingxuanGame/OsuMods/base_service"
	cli2 "github.com/MingxuanGame/OsuMods/cli"
	. "github.com/MingxuanGame/OsuMods/model"
	"github.com/MingxuanGame/OsuMods/sql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type session struct {
	config Config
	mode   GameMode
	out    cli2.Output
}

// setup loads the config named by the global flags and applies the overrides.
func setup(cmd *cli.Command) (session, error) {
	path := cmd.String("config")
	if path == "" {
		path = base_service.DefaultConfigPath()
	}
	config, err := base_service.Init(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load config, using defaults")
	}
	if level := cmd.String("log-level"); level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return session{}, err
		}
		zerolog.SetGlobalLevel(parsed)
	}
	s := session{config: config, mode: config.General.DefaultMode}
	if mode := cmd.String("mode"); mode != "" {
		if s.mode, err = ParseGameMode(mode); err != nil {
			return session{}, err
		}
	}
	format := config.General.OutputFormat
	if f := cmd.String("output"); f != "" {
		format = f
	}
	if s.out, err = cli2.NewOutput(os.Stdout, format); err != nil {
		return session{}, err
	}
	return s, nil
}

func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func modsArg(cmd *cli.Command) (string, error) {
	input := cmd.Args().First()
	if input == "" {
		return "", fmt.Errorf("no mods specified")
	}
	return input, nil
}

func withStore(ctx context.Context, cmd *cli.Command, fn func(session, *sql.Database) error) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	return application.WithStore(ctx, s.config, func(ctx context.Context, db *sql.Database) error {
		return fn(s, db)
	})
}

func main() {
	defer base_service.CloseLog()
	ctx, stop := application.CreateSignalCancelContext()
	defer stop()

	cmd := &cli.Command{
		Name:  "osu-mods",
		Usage: "Convert osu! mods between acronyms, legacy bits and API JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file path"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "ruleset: osu, taiko, fruits or mania"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output format: json or yaml"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
		},
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "decode",
				Usage: "decode mods into their structured form",
				Commands: []*cli.Command{
					{
						Name:      "bits",
						Usage:     "decode a legacy bitmask",
						ArgsUsage: "<bits>",
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "strict", Aliases: []string{"s"}, Value: false, Usage: "fail on bits no mod of the mode uses"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							s, err := setup(cmd)
							if err != nil {
								return err
							}
							bits, err := strconv.ParseUint(cmd.Args().First(), 10, 32)
							if err != nil {
								return fmt.Errorf("invalid bitmask %q: %w", cmd.Args().First(), err)
							}
							return cli2.DecodeBits(s.out, uint32(bits), s.mode, cmd.Bool("strict"))
						},
					},
					{
						Name:      "json",
						Usage:     "decode mods JSON from a file or stdin",
						ArgsUsage: "[file|-]",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							s, err := setup(cmd)
							if err != nil {
								return err
							}
							data, err := readInput(cmd.Args().First())
							if err != nil {
								return err
							}
							return cli2.DecodeJSON(s.out, data, s.mode)
						},
					},
				},
			},
			{
				Name:  "encode",
				Usage: "encode acronyms",
				Commands: []*cli.Command{
					{
						Name:      "bits",
						Usage:     "encode acronyms into a legacy bitmask",
						ArgsUsage: "<mods>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							s, err := setup(cmd)
							if err != nil {
								return err
							}
							input, err := modsArg(cmd)
							if err != nil {
								return err
							}
							return cli2.EncodeBits(s.out, input, s.mode)
						},
					},
					{
						Name:      "json",
						Usage:     "encode acronyms into API JSON",
						ArgsUsage: "<mods>",
						Flags: []cli.Flag{
							&cli.StringSliceFlag{Name: "set", Aliases: []string{"s"}, Usage: "setting as ACRONYM.name=value"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							s, err := setup(cmd)
							if err != nil {
								return err
							}
							input, err := modsArg(cmd)
							if err != nil {
								return err
							}
							return cli2.EncodeJSON(s.out, input, s.mode, cmd.StringSlice("set"))
						},
					},
				},
			},
			{
				Name:      "parse",
				Usage:     "parse acronyms without a mode",
				ArgsUsage: "<mods>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := setup(cmd)
					if err != nil {
						return err
					}
					input, err := modsArg(cmd)
					if err != nil {
						return err
					}
					return cli2.Parse(s.out, input)
				},
			},
			{
				Name:      "validate",
				Usage:     "check mods for incompatible pairs",
				ArgsUsage: "<mods>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := setup(cmd)
					if err != nil {
						return err
					}
					input, err := modsArg(cmd)
					if err != nil {
						return err
					}
					return cli2.Validate(s.out, input, s.mode)
				},
			},
			{
				Name:  "list",
				Usage: "list the mods of a mode",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "only mods of this kind"},
					&cli.BoolFlag{Name: "table", Aliases: []string{"t"}, Value: false, Usage: "print a table"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := setup(cmd)
					if err != nil {
						return err
					}
					return cli2.List(s.out, s.mode, cmd.String("kind"), cmd.Bool("table"))
				},
			},
			{
				Name:  "config",
				Usage: "Generate config file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, err := cli2.GenerateConfig(cmd.String("config"))
					if err != nil {
						return err
					}
					fmt.Println("Config file generated at", path)
					return nil
				},
			},
			{
				Name:  "store",
				Usage: "save & query mod sets",
				Commands: []*cli.Command{
					{
						Name:      "save",
						Usage:     "save mods under a name",
						ArgsUsage: "<name> <mods>",
						Flags: []cli.Flag{
							&cli.StringSliceFlag{Name: "set", Aliases: []string{"s"}, Usage: "setting as ACRONYM.name=value"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return withStore(ctx, cmd, func(s session, db *sql.Database) error {
								return cli2.StoreSave(s.out, db, cmd.Args().Get(0), cmd.Args().Get(1), s.mode, cmd.StringSlice("set"))
							})
						},
					},
					{
						Name:      "get",
						Usage:     "print a saved mod set",
						ArgsUsage: "<id>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return withStore(ctx, cmd, func(s session, db *sql.Database) error {
								return cli2.StoreGet(s.out, db, cmd.Args().First())
							})
						},
					},
					{
						Name:  "list",
						Usage: "list saved mod sets",
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Value: false, Usage: "include every mode"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return withStore(ctx, cmd, func(s session, db *sql.Database) error {
								if cmd.Bool("all") {
									return cli2.StoreList(s.out, db, nil)
								}
								return cli2.StoreList(s.out, db, &s.mode)
							})
						},
					},
					{
						Name:      "delete",
						Usage:     "delete a saved mod set",
						ArgsUsage: "<id>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return withStore(ctx, cmd, func(s session, db *sql.Database) error {
								return cli2.StoreDelete(db, cmd.Args().First())
							})
						},
					},
					{
						Name:  "export",
						Usage: "write the mod catalog into the store",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return withStore(ctx, cmd, func(s session, db *sql.Database) error {
								return cli2.StoreExport(s.out, db)
							})
						},
					},
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
