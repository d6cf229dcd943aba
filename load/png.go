// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"image"
	"image/png"
	"io"
)

// Png decodes a PNG image from r. The Reader is expected to be opened and
// closed by the caller.
func Png(r io.Reader) (image.Image, error) {
	return png.Decode(r)
}
