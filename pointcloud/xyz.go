// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/geom/math32"
)

// centerComment is the comment prefix for the explicit center in XYZ files.
const centerComment = "# center:"

// readXYZ reads "x y z" lines. Columns after the third (normals,
// colors and the like) are ignored.
func readXYZ(r io.Reader, doc *Document) error {
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, centerComment) {
			c, err := parseXYZ(line[len(centerComment):])
			if err != nil {
				return fmt.Errorf("line %d: %w", ln, err)
			}
			doc.Center = &c
			continue
		}
		if line[0] == '#' {
			continue
		}
		p, err := parseXYZ(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		doc.Points = append(doc.Points, p)
	}
	return sc.Err()
}

func parseXYZ(s string) (math32.Point3, error) {
	p, err := math32.ParsePoint3Prefix(s)
	if err != nil {
		return math32.Point3{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return p, nil
}

func writeXYZ(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	if doc.Center != nil {
		c := doc.Center
		fmt.Fprintf(bw, "%s %g %g %g\n", centerComment, c.X, c.Y, c.Z)
	}
	for _, p := range doc.Points {
		fmt.Fprintf(bw, "%g %g %g\n", p.X, p.Y, p.Z)
	}
	return bw.Flush()
}
