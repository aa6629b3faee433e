package session

// NoiseChannel names the auxiliary channel holding the weighting noise.
const NoiseChannel = "Noise"

// State is a self-contained snapshot of a session. It shares no memory with
// the session, so it stays valid while the session keeps stepping.
type State struct {
	Segments int
	Width    int
	Height   int
	Steps    int
	Done     bool

	// Labels holds one segment index per cell in row-major order, or -1 for
	// unassigned cells.
	Labels []int
	// Channels maps auxiliary channel names to row-major float grids.
	Channels map[string][]float64
}

// Label returns the label at (x, y).
func (st State) Label(x, y int) int { return st.Labels[y*st.Width+x] }

// Channel returns the named channel, or nil if it does not exist.
func (st State) Channel(name string) []float64 { return st.Channels[name] }

// Observer is notified with a fresh snapshot whenever the session is reset,
// stepped, or run to completion. Observers must be comparable values,
// typically pointers.
type Observer interface {
	Notify(State)
}
