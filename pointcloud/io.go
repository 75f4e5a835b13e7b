// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/geom/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for paths whose extension is not a known [Format].
	ErrUnknownFormat = errors.New("unknown point cloud format")

	// ErrInvalid is returned when a document does not have the expected structure.
	ErrInvalid = errors.New("invalid point cloud")
)

// Open reads the point cloud document at the given path,
// in the [Format] given by its extension.
func Open(path string) (*Document, error) {
	f := FormatFromPath(path)
	if f == Unknown {
		return nil, fmt.Errorf("pointcloud.Open %q: %w", path, ErrUnknownFormat)
	}
	if f == GLTF {
		doc, err := openGLTF(path)
		if err != nil {
			return nil, fmt.Errorf("pointcloud.Open %q: %w", path, err)
		}
		return doc, nil
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	doc, err := Read(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("pointcloud.Open %q: %w", path, err)
	}
	slog.Debug("opened point cloud", "path", path, "format", f, "points", len(doc.Points))
	return doc, nil
}

// Read reads a point cloud document in the given format from the given reader.
// glTF documents read this way must have their buffers embedded.
func Read(r io.Reader, f Format) (*Document, error) {
	doc := &Document{}
	switch f {
	case XYZ:
		if err := readXYZ(r, doc); err != nil {
			return nil, fmt.Errorf("reading %v: %w", f, err)
		}
		return doc, nil
	case GLTF:
		return readGLTF(r)
	case TOML, YAML, JSON:
	default:
		return nil, fmt.Errorf("reading %v: %w", f, ErrUnknownFormat)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch f {
	case TOML:
		err = toml.Unmarshal(data, doc)
	case YAML:
		err = yaml.Unmarshal(data, doc)
	case JSON:
		if err = validateJSON(data); err == nil {
			err = json.Unmarshal(data, doc)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %v: %w", f, err)
	}
	return doc, nil
}

// Save writes the given point cloud document to the given path,
// in the [Format] given by its extension.
func Save(path string, doc *Document) error {
	f := FormatFromPath(path)
	if f == Unknown {
		return fmt.Errorf("pointcloud.Save %q: %w", path, ErrUnknownFormat)
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	err = Write(bw, f, doc)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("pointcloud.Save %q: %w", path, err)
	}
	slog.Debug("saved point cloud", "path", path, "format", f, "points", len(doc.Points))
	return nil
}

// Write writes the given point cloud document to the given writer in the given format.
// Writing [GLTF] is not supported.
func Write(w io.Writer, f Format, doc *Document) error {
	var data []byte
	var err error
	switch f {
	case XYZ:
		return writeXYZ(w, doc)
	case TOML:
		data, err = toml.Marshal(doc)
	case YAML:
		data, err = yaml.Marshal(doc)
	case JSON:
		if doc.Points == nil {
			// the schema requires an array, not null
			nd := *doc
			nd.Points = Cloud{}
			doc = &nd
		}
		data, err = json.MarshalIndent(doc, "", "\t")
		data = append(data, '\n')
	case GLTF:
		return fmt.Errorf("writing %v: %w", f, errors.ErrUnsupported)
	default:
		return fmt.Errorf("writing %v: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("writing %v: %w", f, err)
	}
	_, err = w.Write(data)
	return err
}
