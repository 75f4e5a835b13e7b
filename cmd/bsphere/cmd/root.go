// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/config"
	"cogentcore.org/geom/logx"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the root bsphere command, with all of its
// subcommands, writing its output to the given writer.
func NewRootCmd(out io.Writer) *cobra.Command {
	cfg := config.New()
	var cfgFile string
	flags := &config.Config{}

	root := &cobra.Command{
		Use:           "bsphere",
		Short:         "bsphere fits bounding spheres to 3D point clouds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			*cfg = *loaded
			applyFlags(cmd, cfg, flags)
			if cfg.Debug || cfg.Verbose || cfg.Quiet {
				logx.UserLevel = logx.LevelFromFlags(cfg.Debug, cfg.Verbose, cfg.Quiet)
			}
			logx.SetDefaultLogger()
			return nil
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "the TOML config file (default "+config.DefaultFile()+")")
	pf.StringVarP(&flags.Format, "format", "f", cfg.Format, "the output format for reports: text, toml, yaml, or json")
	pf.StringVarP(&flags.Center, "center", "c", cfg.Center, "the explicit bounding sphere center as x,y,z")
	pf.BoolVar(&flags.Debug, "debug", false, "print debug messages")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "only print errors")

	root.AddCommand(&cobra.Command{
		Use:   "fit FILE",
		Short: "Print the bounding sphere of a point cloud file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Fit(cfg, cmd.OutOrStdout(), args[0])
		},
	})

	var point string
	query := &cobra.Command{
		Use:   "query FILE",
		Short: "Test a point against the bounding sphere of a point cloud file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Query(cfg, cmd.OutOrStdout(), args[0], point)
		},
	}
	query.Flags().StringVarP(&point, "point", "p", "", "the point to test as x,y,z")
	errors.Log(query.MarkFlagRequired("point"))
	root.AddCommand(query)

	var offset, translateOut string
	translate := &cobra.Command{
		Use:   "translate FILE",
		Short: "Move every point of a point cloud file by an offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Translate(cfg, cmd.OutOrStdout(), args[0], offset, translateOut)
		},
	}
	translate.Flags().StringVar(&offset, "offset", "", "the offset as x,y,z")
	translate.Flags().StringVarP(&translateOut, "out", "o", "", "the output file; if empty, the points are written to stdout")
	errors.Log(translate.MarkFlagRequired("offset"))
	root.AddCommand(translate)

	var genOut, dist string
	gen := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random point cloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dist") {
				if err := cfg.Gen.Dist.SetString(dist); err != nil {
					return err
				}
			}
			applyGenFlags(cmd, cfg, flags)
			return Gen(cfg, cmd.OutOrStdout(), genOut)
		},
	}
	gf := gen.Flags()
	gf.StringVar(&dist, "dist", cfg.Gen.Dist.String(), "the distribution of the points: uniform, gaussian, or shell")
	gf.IntVar(&flags.Gen.N, "n", cfg.Gen.N, "the number of points")
	gf.Float32Var(&flags.Gen.Size, "size", cfg.Gen.Size, "the half-width, standard deviation, or radius of the distribution")
	gf.StringVar(&flags.Gen.Center, "origin", cfg.Gen.Center, "the center of the distribution as x,y,z")
	gf.Uint64Var(&flags.Gen.Seed, "seed", cfg.Gen.Seed, "the random seed; 0 uses the time")
	gf.StringVarP(&genOut, "out", "o", "", "the output file; if empty, XYZ points are written to stdout")
	root.AddCommand(gen)

	watch := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the bounding sphere of a point cloud file each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("debounce") {
				cfg.Watch.DebounceMs = flags.Watch.DebounceMs
			}
			return Watch(cmd.Context(), cfg, cmd.OutOrStdout(), args[0])
		},
	}
	watch.Flags().IntVar(&flags.Watch.DebounceMs, "debounce", cfg.Watch.DebounceMs, "the milliseconds to wait after the last change before refitting")
	root.AddCommand(watch)

	return root
}

// applyFlags sets the config fields for the persistent flags that were set.
func applyFlags(cmd *cobra.Command, cfg, flags *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = flags.Format
	}
	if fs.Changed("center") {
		cfg.Center = flags.Center
	}
	if fs.Changed("debug") {
		cfg.Debug = flags.Debug
	}
	if fs.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
	if fs.Changed("quiet") {
		cfg.Quiet = flags.Quiet
	}
}

// applyGenFlags sets the gen config fields for the gen flags that were set.
func applyGenFlags(cmd *cobra.Command, cfg, flags *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("n") {
		cfg.Gen.N = flags.Gen.N
	}
	if fs.Changed("size") {
		cfg.Gen.Size = flags.Gen.Size
	}
	if fs.Changed("origin") {
		cfg.Gen.Center = flags.Gen.Center
	}
	if fs.Changed("seed") {
		cfg.Gen.Seed = flags.Gen.Seed
	}
}
