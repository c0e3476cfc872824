// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Bound is a cylinder/cone vertical extent value: an ordinary number,
// or the token "-inf"/"inf" for an unbounded cap.
type Bound float64

// UnmarshalYAML accepts either a float/int scalar or one of the two
// infinity tokens, so a scene author can write y_min: -inf instead of
// a magic large number.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	var tok string
	if err := node.Decode(&tok); err == nil {
		switch tok {
		case "-inf":
			*b = Bound(math.Inf(-1))
			return nil
		case "inf":
			*b = Bound(math.Inf(1))
			return nil
		}
	}

	var num float64
	if err := node.Decode(&num); err != nil {
		return fmt.Errorf("scene: bound must be a number or \"-inf\"/\"inf\": %w", err)
	}
	*b = Bound(num)
	return nil
}
