// Copyright 2014-2016 The Kestrel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import "github.com/kestrel-chess/kestrel/engine"

// ParseFEN parses a Forsyth-Edwards Notation string into a Position.
// It is a thin, notation-package-local alias for engine.PositionFromFEN,
// kept alongside ParseEPD so callers that only deal in bare FEN strings
// don't need to import engine directly.
func ParseFEN(fen string) (*engine.Position, error) {
	return engine.PositionFromFEN(fen)
}

// FormatFEN renders pos as a FEN string.
func FormatFEN(pos *engine.Position) string {
	return pos.String()
}
