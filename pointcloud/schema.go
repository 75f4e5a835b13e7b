// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is the JSON schema that [JSON] documents must satisfy.
const Schema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "point cloud",
	"type": "object",
	"required": ["points"],
	"additionalProperties": false,
	"properties": {
		"center": {"$ref": "#/definitions/point"},
		"points": {
			"type": "array",
			"items": {"$ref": "#/definitions/point"}
		}
	},
	"definitions": {
		"point": {
			"type": "object",
			"required": ["x", "y", "z"],
			"additionalProperties": false,
			"properties": {
				"x": {"type": "number"},
				"y": {"type": "number"},
				"z": {"type": "number"}
			}
		}
	}
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(Schema))
})

// validateJSON returns an [ErrInvalid] error listing every
// violation of [Schema] in the given JSON data.
func validateJSON(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	res, err := sch.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, len(res.Errors()))
	for i, re := range res.Errors() {
		msgs[i] = re.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
