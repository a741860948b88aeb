package render

import "github.com/google/uuid"

// frame is one in-flight component render.
type frame struct {
	chain     []string
	index     int
	variables map[string]any
}

// frameKey identifies the in-flight render of one signature for one action.
type frameKey struct {
	action    uuid.UUID
	signature string
}

// renderStack holds at most one frame per action and render signature.
type renderStack map[frameKey]*frame

// signature identifies the in-flight render of a component for one model.
func signature(custom, component string) string {
	return custom + "_" + component + "component"
}

// enter returns the frame for sig within action and the chain index to
// resolve from. A new frame starts at the most specific entry. A re-entrant
// call for a signature already in flight for the same action continues below
// the entry being rendered and replaces the frame variables until leave is
// called. Renders of other actions never see the frame.
func (x *Extension) enter(action uuid.UUID, sig string, chain []string, variables map[string]any) (f *frame, start int, leave func()) {
	x.mu.Lock()
	defer x.mu.Unlock()

	key := frameKey{action: action, signature: sig}
	if f, ok := x.stack[key]; ok {
		index, previous := f.index, f.variables
		f.variables = variables
		return f, index - 1, func() {
			x.mu.Lock()
			f.index, f.variables = index, previous
			x.mu.Unlock()
		}
	}

	f = &frame{chain: chain, index: len(chain) - 1, variables: variables}
	x.stack[key] = f
	return f, f.index, func() {
		x.mu.Lock()
		delete(x.stack, key)
		x.mu.Unlock()
	}
}

// choose marks index as the chain entry being rendered by f.
func (x *Extension) choose(f *frame, index int) map[string]any {
	x.mu.Lock()
	defer x.mu.Unlock()
	f.index = index
	return f.variables
}
