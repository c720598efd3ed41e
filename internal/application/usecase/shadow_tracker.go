package usecase

import "github.com/bnema/tiler/internal/domain/entity"

// ShadowTracker remembers, per window, what the window looked like before
// tiling touched it and what tiling last asked the host to do.
type ShadowTracker struct {
	shadows map[entity.WindowID]*entity.WindowShadow
}

// NewShadowTracker creates an empty tracker.
func NewShadowTracker() *ShadowTracker {
	return &ShadowTracker{shadows: make(map[entity.WindowID]*entity.WindowShadow)}
}

// GetOrCreate returns the shadow of info.ID. A new shadow captures the
// window's current geometry, decoration and maximize state as original.
// An existing shadow recaptures them when refresh is set, which callers do
// when the window is entering tiling from a non-tiled state.
func (s *ShadowTracker) GetOrCreate(info entity.WindowInfo, refresh bool) *entity.WindowShadow {
	sh, ok := s.shadows[info.ID]
	if !ok {
		sh = &entity.WindowShadow{ID: info.ID}
		s.shadows[info.ID] = sh
		refresh = true
	}
	if refresh {
		sh.Expected = info.Geometry
		sh.Original = entity.WindowOriginal{
			Geometry:   info.Geometry,
			Decoration: info.Decoration,
			Maximize:   info.Maximize,
		}
	}
	return sh
}

// Get returns the shadow of a window.
func (s *ShadowTracker) Get(id entity.WindowID) (*entity.WindowShadow, bool) {
	sh, ok := s.shadows[id]
	return sh, ok
}

// Remove forgets a window.
func (s *ShadowTracker) Remove(id entity.WindowID) {
	delete(s.shadows, id)
}

// Len returns the number of tracked windows.
func (s *ShadowTracker) Len() int {
	return len(s.shadows)
}

// SetExpected records the geometry last requested from the host.
func (s *ShadowTracker) SetExpected(id entity.WindowID, geom entity.Rect) {
	if sh, ok := s.shadows[id]; ok {
		sh.Expected = geom
	}
}

// SetFrameAdjustment records the frame/client delta seen at command time.
func (s *ShadowTracker) SetFrameAdjustment(id entity.WindowID, adj int) {
	if sh, ok := s.shadows[id]; ok {
		sh.LastFrameAdjustment = adj
	}
}

// IsFloating reports whether the window opted out of tiling.
func (s *ShadowTracker) IsFloating(id entity.WindowID) bool {
	sh, ok := s.shadows[id]
	return ok && sh.Floating
}
