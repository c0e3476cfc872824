// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import "fmt"

// Error reports a problem with a scene document: malformed JSON/YAML,
// an unknown shape or transform type, a bad transform arity, or a
// singular matrix. Context names where in the document the problem
// was found (e.g. "world.objects[2].transform[0]").
type Error struct {
	Context string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("scene: %s: %s", e.Context, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func errf(context, format string, args ...interface{}) *Error {
	return &Error{Context: context, Err: fmt.Errorf(format, args...)}
}
