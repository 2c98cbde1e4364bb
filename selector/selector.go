// Package selector is the program-selection state machine. It tracks the
// current style, category and cursor, keeps the filtered program list in
// sync with the soundbank, and turns button presses into the catalog index
// to send. It knows nothing about pins, pixels or MIDI framing, so it can
// be exercised off the board.
package selector

import (
	"github.com/tom-hoffman/nd-program-selector/bank"
	"github.com/tom-hoffman/nd-program-selector/debug"
)

// Mode is which of the two button mappings is active. It follows the
// physical slider switch and is sampled fresh every loop iteration; the
// state machine never stores it.
type Mode uint8

const (
	// Program mode: buttons step through the filtered program list.
	Program Mode = iota
	// Browse mode: buttons step through styles and categories.
	Browse
)

// maxVisible is one WS2812 cell per choice. The catalog is curated so no
// filter exceeds it; anything past it is dropped, not shown.
const maxVisible = 10

// State is the single selection state of the device. Mutate it only
// through AdvanceLeft and AdvanceRight.
type State struct {
	style    bank.Style
	category bank.Category
	programs []uint8
	cursor   int
}

// New starts at the first style and category with the cursor on the first
// matching program.
func New() *State {
	s := &State{style: bank.Retro, category: bank.Kit}
	s.refilter()
	return s
}

func (s *State) Style() bank.Style       { return s.style }
func (s *State) Category() bank.Category { return s.category }

// Cursor is the position within the filtered list, 0 when the list is empty.
func (s *State) Cursor() int { return s.cursor }

// Count is the length of the filtered list.
func (s *State) Count() int { return len(s.programs) }

// Programs is the filtered list of catalog indices, in catalog order.
// Callers must not modify it.
func (s *State) Programs() []uint8 { return s.programs }

// Selected returns the catalog index under the cursor. ok is false when the
// current filter matched nothing, in which case there is nothing to send.
func (s *State) Selected() (uint8, bool) {
	if len(s.programs) == 0 {
		return 0, false
	}
	return s.programs[s.cursor], true
}

// AdvanceLeft handles a left-button press. In program mode it moves the
// cursor back one, wrapping; in browse mode it moves to the next style and
// refilters. It returns the catalog index to dispatch; ok is false when the
// press selected nothing (empty filter), which the caller must treat as no
// dispatch.
func (s *State) AdvanceLeft(m Mode) (uint8, bool) {
	if m == Browse {
		s.style = (s.style + 1) % bank.NumStyles
		s.refilter()
		return s.Selected()
	}
	if len(s.programs) == 0 {
		return 0, false
	}
	s.cursor = (s.cursor + len(s.programs) - 1) % len(s.programs)
	return s.programs[s.cursor], true
}

// AdvanceRight handles a right-button press: cursor forward in program
// mode, next category in browse mode. Same dispatch contract as
// AdvanceLeft.
func (s *State) AdvanceRight(m Mode) (uint8, bool) {
	if m == Browse {
		s.category = (s.category + 1) % bank.NumCategories
		s.refilter()
		return s.Selected()
	}
	if len(s.programs) == 0 {
		return 0, false
	}
	s.cursor = (s.cursor + 1) % len(s.programs)
	return s.programs[s.cursor], true
}

// refilter recomputes the program list for the current style/category and
// puts the cursor back on the first entry. Matches past the strip length
// are dropped.
func (s *State) refilter() {
	matches := bank.Find(s.style, s.category)
	if len(matches) > maxVisible {
		debug.Log("selector", "%s/%s: %d matches, keeping first %d",
			s.style, s.category, len(matches), maxVisible)
		matches = matches[:maxVisible]
	}
	s.programs = matches
	s.cursor = 0
	debug.Log("selector", "%s/%s: %d programs", s.style, s.category, len(s.programs))
	for _, idx := range s.programs {
		debug.Log("selector", "%2d %s", idx, bank.Name(idx))
	}
}
