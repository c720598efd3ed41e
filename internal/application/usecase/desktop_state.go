package usecase

import (
	"cmp"
	"slices"

	"github.com/bnema/tiler/internal/domain/bsp"
	"github.com/bnema/tiler/internal/domain/entity"
)

// DesktopState binds a tiling tree to one virtual desktop.
type DesktopState struct {
	ID       entity.DesktopID
	Tree     *bsp.Tree
	Settings entity.DesktopSettings
}

// Enabled reports whether windows on the desktop are tiled.
func (d *DesktopState) Enabled() bool {
	return d.Settings.Enabled()
}

// desktopRegistry creates desktop states on first reference.
type desktopRegistry struct {
	states   map[entity.DesktopID]*DesktopState
	settings func(entity.DesktopID) entity.DesktopSettings
}

func newDesktopRegistry(settings func(entity.DesktopID) entity.DesktopSettings) *desktopRegistry {
	return &desktopRegistry{
		states:   make(map[entity.DesktopID]*DesktopState),
		settings: settings,
	}
}

func (r *desktopRegistry) get(desk entity.DesktopID) *DesktopState {
	if st, ok := r.states[desk]; ok {
		return st
	}
	st := &DesktopState{ID: desk, Tree: bsp.New(), Settings: r.settings(desk)}
	r.states[desk] = st
	return st
}

func (r *desktopRegistry) lookup(desk entity.DesktopID) (*DesktopState, bool) {
	st, ok := r.states[desk]
	return st, ok
}

// holding returns the desktop whose tree tiles w.
func (r *desktopRegistry) holding(w entity.WindowID) (*DesktopState, bsp.NodeID) {
	if w == "" {
		return nil, bsp.NoNode
	}
	for _, st := range r.states {
		if leaf := st.Tree.Find(w); leaf != bsp.NoNode {
			return st, leaf
		}
	}
	return nil, bsp.NoNode
}

// ids returns every known desktop, ordered by zone, row and column.
func (r *desktopRegistry) ids() []entity.DesktopID {
	out := make([]entity.DesktopID, 0, len(r.states))
	for id := range r.states {
		out = append(out, id)
	}
	sortDesktops(out)
	return out
}

func (r *desktopRegistry) reset() {
	clear(r.states)
}

func sortDesktops(ids []entity.DesktopID) {
	slices.SortFunc(ids, func(a, b entity.DesktopID) int {
		return cmp.Or(cmp.Compare(a.Zone, b.Zone), cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
}
