// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nodes loads a node graph from a YAML model file, lays it out
// in a scene and prints the result. With --watch, it keeps the scene in
// sync with the file and prints it again on every change. With
// --metrics, the scene metrics follow every print in the prometheus
// text format.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/nodes/graph"
	"cogentcore.org/nodes/logx"
	"cogentcore.org/nodes/nodes"
	"cogentcore.org/nodes/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// options are the command line options of the root command.
type options struct {
	settings       string
	orientation    nodes.Orientation
	orientationSet bool
	watch          bool
	metrics        bool
	vv, v, q       bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "nodes <model.yaml>",
		Short:        "Lay out a node graph and print the scene",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.orientationSet = cmd.Flags().Changed("orientation")
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, cmd.OutOrStdout(), args[0], opts)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.settings, "settings", "", "settings file (default ~/.config/cogentcore-nodes/settings.toml)")
	pf.BoolVar(&opts.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&opts.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&opts.q, "quiet", "q", false, "only show errors")
	cmd.Flags().VarP(&opts.orientation, "orientation", "o", "layout orientation, Horizontal or Vertical, overriding the settings")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload and print the scene when the model file changes")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print the scene metrics after the scene")

	cmd.AddCommand(settingsCmd(opts))
	return cmd
}

func settingsCmd(opts *options) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openSettings(opts.settings)
			if err != nil {
				return err
			}
			if save {
				fn, err := settingsFile(opts.settings)
				if err != nil {
					return err
				}
				if err := nodes.SaveSettings(fn, st); err != nil {
					return err
				}
				slog.Info("saved settings", "file", fn)
			}
			b, err := toml.Marshal(st)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "also write the settings to the settings file")
	return cmd
}

func settingsFile(filename string) (string, error) {
	if filename != "" {
		return filename, nil
	}
	return nodes.DefaultSettingsFile()
}

func openSettings(filename string) (nodes.Settings, error) {
	if filename == "" {
		return nodes.OpenDefaultSettings()
	}
	return nodes.OpenSettings(filename)
}

// run builds the scene for the model file and prints it, and then
// watches the file if requested.
func run(ctx context.Context, w io.Writer, filename string, opts *options) error {
	st, err := openSettings(opts.settings)
	if err != nil {
		return err
	}
	if opts.orientationSet {
		st.Orientation = opts.orientation
	}
	mf, err := openModelFile(filename)
	if err != nil {
		return err
	}
	m := graph.NewBasic()
	if err := mf.load(m); err != nil {
		slog.Warn("skipped model entries", "file", filename, "err", err)
	}
	sopts := []nodes.Option{nodes.WithSettings(st)}
	var reg *prometheus.Registry
	if opts.metrics {
		reg = prometheus.NewRegistry()
		sopts = append(sopts, nodes.WithMetrics(nodes.NewMetrics(reg)))
	}
	sc, err := nodes.NewScene(m, sopts...)
	if err != nil {
		return err
	}
	show := func() {
		printScene(w, sc)
		if reg != nil {
			errors.Log(printMetrics(w, reg))
		}
	}
	show()
	if !opts.watch {
		return nil
	}
	return watch(ctx, filename, func() {
		mf, err := openModelFile(filename)
		if err != nil {
			slog.Error("reload failed, keeping the previous model", "err", err)
			return
		}
		if err := mf.load(m); err != nil {
			slog.Warn("skipped model entries", "file", filename, "err", err)
		}
		fmt.Fprintln(w)
		show()
	})
}

// watch calls reload whenever the given file is written or replaced,
// until the context is done. The directory is watched so that editors
// that save by renaming are seen. reload runs on the calling goroutine.
func watch(ctx context.Context, filename string, reload func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "file", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("model file changed", "op", ev.Op.String())
			reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}
