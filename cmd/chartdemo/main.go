// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command chartdemo renders CSV data as a bar, line or pie chart image.
//
// Every column of the input becomes one series:
//
//	chartdemo -input sales.csv -kind bar -stacked -output sales.png
//
// With -watch the image is rendered again whenever the input changes.
// With -spirv the chart shaders are compiled and written as SPIR-V files
// into the given directory.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/datasource"
	"github.com/gogpu/charts/material"
	"github.com/gogpu/charts/preview"
)

func main() {
	var (
		input   = flag.String("input", "", "CSV file with a header row")
		columns = flag.String("columns", "", "comma separated columns to plot (default all)")
		kind    = flag.String("kind", "bar", "chart kind: bar, line or pie")
		stacked = flag.Bool("stacked", false, "stack series")
		horiz   = flag.Bool("horizontal", false, "draw values along the X axis")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "chart.png", "output file")
		watch   = flag.Bool("watch", false, "render again when the input changes")
		spirv   = flag.String("spirv", "", "directory to write compiled shaders to")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	charts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *spirv != "" {
		if err := writeShaders(*spirv); err != nil {
			fatal(err)
		}
		if *input == "" {
			return
		}
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "chartdemo: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	var opts []datasource.CSVOption
	if *columns != "" {
		opts = append(opts, datasource.WithColumns(strings.Split(*columns, ",")...))
	}

	chart := charts.NewXYChart()
	defer chart.Close()
	chart.SetStacked(*stacked)
	if *horiz {
		chart.SetDirection(charts.ZeroAtStart)
	}

	render := func() error {
		cols, err := datasource.LoadCSVFile(*input, opts...)
		if err != nil {
			return err
		}
		sources := make([]datasource.DataSource, len(cols))
		for i, c := range cols {
			sources[i] = c
		}
		chart.SetSources(sources...)
		return preview.RenderPNG(*output, material.Kind(*kind), chart, *width, *height)
	}

	if err := render(); err != nil {
		fatal(err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	charts.Logger().Info("chartdemo: watching input", "path", *input)
	err := datasource.Watch(ctx, *input, func() {
		if err := render(); err != nil {
			charts.Logger().Warn("chartdemo: render failed", "err", err)
		}
	})
	if err != nil {
		fatal(err)
	}
}

// writeShaders compiles every registered chart shader to <dir>/<kind>.spv.
func writeShaders(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, kind := range material.Kinds() {
		words, err := material.CompileSPIRV(kind)
		if err != nil {
			return err
		}
		buf := make([]byte, 4*len(words))
		for i, w := range words {
			binary.LittleEndian.PutUint32(buf[4*i:], w)
		}
		path := filepath.Join(dir, string(kind)+".spv")
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			return err
		}
		charts.Logger().Info("chartdemo: shader written", "path", path, "words", len(words))
	}
	return nil
}

func fatal(err error) {
	charts.Logger().Error("chartdemo: " + err.Error())
	os.Exit(1)
}
