// Package graphics renders percentages as fixed-width text progress bars and
// composes them into column-aligned list blocks.
package graphics

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbolVersion is returned for a symbol version outside the
// closed 1..3 enumeration.
var ErrUnknownSymbolVersion = errors.New("unknown symbol version")

// Pair is an immutable filled/empty glyph pair. Exactly one pair is active
// per render call; glyphs are never mixed within a single bar.
type Pair struct {
	Filled string
	Empty  string
}

// The closed set of selectable glyph pairs.
var (
	// VersionOne uses solid block glyphs.
	VersionOne = Pair{Filled: "█", Empty: "░"}

	// VersionTwo uses braille glyphs.
	VersionTwo = Pair{Filled: "⣿", Empty: "⣀"}

	// VersionThree uses emoji square glyphs.
	VersionThree = Pair{Filled: "⬛", Empty: "⬜"}
)

// SymbolVersionCount is the number of selectable glyph pairs.
const SymbolVersionCount = 3

// Symbols maps a configured symbol version to its glyph pair. Version
// selection is external configuration resolved once per run, not a per-call
// decision.
func Symbols(version int) (Pair, error) {
	switch version {
	case 1:
		return VersionOne, nil
	case 2:
		return VersionTwo, nil
	case 3:
		return VersionThree, nil
	default:
		return Pair{}, fmt.Errorf("%w: %d", ErrUnknownSymbolVersion, version)
	}
}
