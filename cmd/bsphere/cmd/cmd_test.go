// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/geom/config"
	"cogentcore.org/geom/math32"
	"cogentcore.org/geom/pointcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = "0 0 0\n2 0 0\n0 2 0\n"

// run runs the root command with the given args and an empty config file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgFile, nil, 0666))
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetArgs(append([]string{"--config", cfgFile, "--quiet"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func decodeReport(t *testing.T, s string) *Report {
	t.Helper()
	r := &Report{}
	require.NoError(t, json.Unmarshal([]byte(s), r))
	return r
}

func TestFit(t *testing.T) {
	file := writeFile(t, "tri.xyz", triangle)
	out, err := run(t, "fit", file, "--format", "json")
	require.NoError(t, err)
	r := decodeReport(t, out)
	assert.Equal(t, file, r.File)
	assert.Equal(t, 3, r.Points)
	assert.Equal(t, math32.P3(1, 1, 0), r.Center)
	assert.InDelta(t, 1.41421356, r.Radius, 1.0e-6)
	assert.False(t, r.Empty)
	assert.Nil(t, r.Query)

	out, err = run(t, "fit", file, "--center", "0,0,0", "--format", "json")
	require.NoError(t, err)
	r = decodeReport(t, out)
	assert.Equal(t, math32.P3(0, 0, 0), r.Center)
	assert.Equal(t, float32(2), r.Radius)
	assert.Equal(t, Bounds{math32.P3(-2, -2, -2), math32.P3(2, 2, 2)}, r.Box)
}

func TestFitText(t *testing.T) {
	file := writeFile(t, "one.xyz", "4 5 6\n")
	out, err := run(t, "fit", file)
	require.NoError(t, err)
	assert.Contains(t, out, "points:   1\n")
	assert.Contains(t, out, "center:   (4, 5, 6)\n")
	assert.Contains(t, out, "radius:   0\n")
	assert.Contains(t, out, "empty:    true\n")
}

func TestFitFileCenter(t *testing.T) {
	file := writeFile(t, "cloud.toml", "center = {x = 0.0, y = 0.0, z = 0.0}\n\n[[points]]\nx = 3.0\ny = 4.0\nz = 0.0\n")
	out, err := run(t, "fit", file, "--format", "json")
	require.NoError(t, err)
	r := decodeReport(t, out)
	assert.Equal(t, math32.P3(0, 0, 0), r.Center)
	assert.Equal(t, float32(5), r.Radius)

	out, err = run(t, "fit", file, "--center", "3,4,0", "--format", "json")
	require.NoError(t, err)
	r = decodeReport(t, out)
	assert.Equal(t, math32.P3(3, 4, 0), r.Center)
	assert.True(t, r.Empty)
}

func TestFitErrors(t *testing.T) {
	_, err := run(t, "fit")
	assert.Error(t, err)

	_, err = run(t, "fit", filepath.Join(t.TempDir(), "cloud.obj"))
	assert.ErrorIs(t, err, pointcloud.ErrUnknownFormat)

	file := writeFile(t, "tri.xyz", triangle)
	_, err = run(t, "fit", file, "--center", "1,2")
	assert.Error(t, err)

	_, err = run(t, "fit", file, "--format", "xml")
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	file := writeFile(t, "tri.xyz", triangle)
	out, err := run(t, "query", file, "--center", "0,0,0", "--point", "1,0,0", "--format", "json")
	require.NoError(t, err)
	r := decodeReport(t, out)
	require.NotNil(t, r.Query)
	assert.Equal(t, math32.P3(1, 0, 0), r.Query.Point)
	assert.True(t, r.Query.Contains)
	assert.Equal(t, float32(-1), r.Query.Distance)

	out, err = run(t, "query", file, "--center", "0,0,0", "--point", "0,0,5", "--format", "json")
	require.NoError(t, err)
	r = decodeReport(t, out)
	assert.False(t, r.Query.Contains)
	assert.Equal(t, float32(3), r.Query.Distance)

	out, err = run(t, "query", file, "--center", "0,0,0", "--point", "2 0 0")
	require.NoError(t, err)
	assert.Contains(t, out, "contains: true\n")
	assert.Contains(t, out, "distance: 0\n")

	_, err = run(t, "query", file)
	assert.Error(t, err)
	_, err = run(t, "query", file, "--point", "x,0,0")
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	file := writeFile(t, "tri.xyz", triangle)
	out, err := run(t, "translate", file, "--offset", "1,-1,0.5")
	require.NoError(t, err)
	doc, err := pointcloud.Read(strings.NewReader(out), pointcloud.XYZ)
	require.NoError(t, err)
	assert.Equal(t, pointcloud.Cloud{math32.P3(1, -1, 0.5), math32.P3(3, -1, 0.5), math32.P3(1, 1, 0.5)}, doc.Points)

	outFile := filepath.Join(t.TempDir(), "moved.yaml")
	_, err = run(t, "translate", file, "--offset", "1,1,1", "--out", outFile)
	require.NoError(t, err)
	moved, err := pointcloud.Open(outFile)
	require.NoError(t, err)
	orig, err := pointcloud.Open(file)
	require.NoError(t, err)
	assert.Equal(t, orig.BoundingSphere().Translate(math32.P3(1, 1, 1)), moved.BoundingSphere())

	_, err = run(t, "translate", file)
	assert.Error(t, err)
}

func TestTranslateFileCenter(t *testing.T) {
	file := writeFile(t, "cloud.json", `{"center": {"x": 1, "y": 1, "z": 1}, "points": [{"x": 2, "y": 1, "z": 1}]}`)
	out, err := run(t, "translate", file, "--offset", "0,0,2")
	require.NoError(t, err)
	doc, err := pointcloud.Read(strings.NewReader(out), pointcloud.JSON)
	require.NoError(t, err)
	require.NotNil(t, doc.Center)
	assert.Equal(t, math32.P3(1, 1, 3), *doc.Center)
	assert.Equal(t, pointcloud.Cloud{math32.P3(2, 1, 3)}, doc.Points)
}

func TestGen(t *testing.T) {
	out, err := run(t, "gen", "--n", "50", "--dist", "shell", "--size", "2", "--origin", "1,1,1")
	require.NoError(t, err)
	doc, err := pointcloud.Read(strings.NewReader(out), pointcloud.XYZ)
	require.NoError(t, err)
	assert.Len(t, doc.Points, 50)
	c := math32.P3(1, 1, 1)
	s := doc.Points.BoundingSphere(&c)
	assert.InDelta(t, 2, s.Radius, 1.0e-4)

	again, err := run(t, "gen", "--n", "50", "--dist", "shell", "--size", "2", "--origin", "1,1,1")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	outFile := filepath.Join(t.TempDir(), "gen.json")
	_, err = run(t, "gen", "--n", "10", "--out", outFile)
	require.NoError(t, err)
	doc, err = pointcloud.Open(outFile)
	require.NoError(t, err)
	assert.Len(t, doc.Points, 10)
	assert.True(t, math32.B3(-1, -1, -1, 1, 1, 1).ContainsBox(doc.Points.Bounds()))

	_, err = run(t, "gen", "--dist", "cubic")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	file := writeFile(t, "tri.xyz", triangle)
	c := config.New()
	c.Format = "json"
	c.Watch.DebounceMs = 20
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	var out bytes.Buffer
	require.NoError(t, Watch(ctx, c, &out, file))
	r := decodeReport(t, out.String())
	assert.Equal(t, 3, r.Points)
	assert.Equal(t, math32.P3(1, 1, 0), r.Center)
}
