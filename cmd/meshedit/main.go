// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

// Command meshedit runs mesh editing pipelines over Wavefront OBJ files.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hajimehoshi/go-meshedit"
	"github.com/hajimehoshi/go-meshedit/internal/config"
	"github.com/hajimehoshi/go-meshedit/internal/objfile"
	"github.com/hajimehoshi/go-meshedit/internal/telemetry"
)

var (
	verbose bool

	configPath  string
	outPath     string
	showMetrics bool

	logger *zap.Logger
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:   "meshedit",
	Short: "Edit polygon meshes on a half-edge structure",
	Long: `meshedit loads a polygon mesh from a Wavefront OBJ file and runs
subdivision, remeshing and simplification passes over it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			level.SetLevel(zapcore.DebugLevel)
		}
		cfg.Level = level
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		meshedit.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run <input.obj>",
	Short: "Run a pipeline of passes over a mesh",
	Long: `run applies the steps of a YAML pipeline file, for example

  steps:
    - op: loop
      iterations: 2
    - op: simplify
  validate_each_step: true

and writes the result to --out, or to standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: runPipeline,
}

var statsCmd = &cobra.Command{
	Use:   "stats <input.obj>",
	Short: "Print the size of a mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var validateCmd = &cobra.Command{
	Use:   "validate <input.obj>",
	Short: "Check that a mesh is a valid manifold",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Pipeline file (default: validate only)")
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output OBJ file (default: stdout)")
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print operator and pass counters to stderr")
	rootCmd.AddCommand(runCmd, statsCmd, validateCmd)
}

func loadMesh(path string) (*meshedit.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := objfile.ReadMesh(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if !verbose && cfg.LogLevel != "" {
		l, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		level.SetLevel(l)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	m.FlipOrientation = cfg.FlipOrientation

	reg := prometheus.NewRegistry()
	m.SetObserver(telemetry.New(reg))

	before := m.Stats()
	if err := m.Run(cfg.Pipeline(), cfg.ValidateEachStep); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	after := m.Stats()
	logger.Info("pipeline done",
		zap.Int("steps", len(cfg.Steps)),
		zap.Int("faces_before", before.Faces),
		zap.Int("faces_after", after.Faces))

	if showMetrics {
		if err := printMetrics(cmd.ErrOrStderr(), reg); err != nil {
			return err
		}
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return objfile.Write(w, m)
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range mfs {
		for _, mt := range mf.GetMetric() {
			if mt.GetCounter() == nil {
				continue
			}
			var labels []string
			for _, l := range mt.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), mt.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	s := m.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "vertices %d\nedges %d\nfaces %d\nboundaries %d\neuler %d\n",
		s.Vertices, s.Edges, s.Faces, s.Boundaries, s.Euler)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
