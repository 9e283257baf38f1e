package planner

import (
	"sync"

	"wandr/models"
)

// ViewState tracks what the schedule list and the map view of one trip are
// pointing at: the stop open in the detail modal and the stop whose map
// marker is highlighted. One of each at most; last write wins.
type ViewState struct {
	mu       sync.Mutex
	selected *models.Place
	hovered  *string
}

// ViewSnapshot is a read-only copy handed to clients.
type ViewSnapshot struct {
	Selected  *models.Place `json:"selected"`
	HoveredID *string       `json:"hoveredId"`
}

func (s *ViewState) Select(p models.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &p
}

func (s *ViewState) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

func (s *ViewState) Hover(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hovered = &id
}

func (s *ViewState) ClearHover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hovered = nil
}

func (s *ViewState) Snapshot() ViewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := ViewSnapshot{HoveredID: s.hovered}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	return snap
}

// Per-trip view states, created on first touch.
var viewStates = struct {
	sync.Mutex
	m map[string]*ViewState
}{m: make(map[string]*ViewState)}

func stateFor(tripID string) *ViewState {
	viewStates.Lock()
	defer viewStates.Unlock()

	if st, ok := viewStates.m[tripID]; ok {
		return st
	}
	st := &ViewState{}
	viewStates.m[tripID] = st
	return st
}
