// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bsphere fits bounding spheres to 3D point cloud files.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/geom/cmd/bsphere/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.NewRootCmd(os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
