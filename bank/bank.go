// Package bank holds the factory soundbank of the Nord Drum and answers
// style/category queries against it. The catalog is fixed at build time;
// the program number sent over MIDI is the preset's position in it.
package bank

// Style is the coarse genre tag of a preset. Ordinal order matters: it is
// the cycling order in browse mode and the LED layout order on the strip.
type Style uint8

const (
	Retro Style = iota
	World
	Real
	Rock
	FX
)

// NumStyles is the number of selectable styles.
const NumStyles = 5

// NoStyle marks the sentinel preset; it never equals a selectable style.
const NoStyle Style = 0xFF

func (s Style) String() string {
	switch s {
	case Retro:
		return "retro"
	case World:
		return "world"
	case Real:
		return "real"
	case Rock:
		return "rock"
	case FX:
		return "fx"
	}
	return "none"
}

// Category describes which drum voices a preset carries.
type Category uint8

const (
	Kit Category = iota
	Perc
	Drums
)

// NumCategories is the number of selectable categories.
const NumCategories = 3

// NoCategory marks the sentinel preset.
const NoCategory Category = 0xFF

func (c Category) String() string {
	switch c {
	case Kit:
		return "kit"
	case Perc:
		return "perc"
	case Drums:
		return "drums"
	}
	return "none"
}

// Preset is one factory program. Name is a display label only; the control
// logic never branches on it.
type Preset struct {
	Style    Style
	Name     string
	Category Category
}

// Find returns the catalog indices of every preset tagged with exactly the
// given style and category, in catalog order. The trailing sentinel carries
// NoStyle/NoCategory and so never appears in the result.
func Find(s Style, c Category) []uint8 {
	var out []uint8
	for i := range catalog {
		if catalog[i].Style == NoStyle || catalog[i].Category == NoCategory {
			continue
		}
		if catalog[i].Style == s && catalog[i].Category == c {
			out = append(out, uint8(i))
		}
	}
	return out
}

// At returns the preset at a catalog index.
func At(i uint8) Preset {
	return catalog[i]
}

// Name returns the display label of the preset at a catalog index.
func Name(i uint8) string {
	return catalog[i].Name
}

// Programs is the number of selectable presets, excluding the sentinel.
func Programs() int {
	return len(catalog) - 1
}

// Len is the full catalog length including the sentinel.
func Len() int {
	return len(catalog)
}
