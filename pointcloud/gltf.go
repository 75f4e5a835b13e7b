// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"fmt"
	"io"

	"cogentcore.org/geom/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// openGLTF opens the glTF file at the given path, resolving
// external buffers relative to it.
func openGLTF(path string) (*Document, error) {
	gd, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}
	return gltfDocument(gd)
}

func readGLTF(r io.Reader) (*Document, error) {
	gd := gltf.NewDocument()
	if err := gltf.NewDecoder(r).Decode(gd); err != nil {
		return nil, fmt.Errorf("reading %v: %w", GLTF, err)
	}
	return gltfDocument(gd)
}

// gltfDocument collects the POSITION vertices of every primitive of
// every mesh, in mesh space: node transforms are not applied.
func gltfDocument(gd *gltf.Document) (*Document, error) {
	doc := &Document{}
	for mi, mesh := range gd.Meshes {
		for pi, prim := range mesh.Primitives {
			ai, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if int(ai) >= len(gd.Accessors) {
				return nil, fmt.Errorf("%w: mesh %d primitive %d: position accessor %d out of range", ErrInvalid, mi, pi, ai)
			}
			pos, err := modeler.ReadPosition(gd, gd.Accessors[ai], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
			for _, v := range pos {
				doc.Points = append(doc.Points, math32.P3(v[0], v[1], v[2]))
			}
		}
	}
	return doc, nil
}
