// Package layout decides which Skype UI variant a window is showing from its
// client-area width.
package layout

// Kind is the detected UI layout.
type Kind int

const (
	// Full is the main (signed-in or welcome) layout.
	Full Kind = iota
	// Login is the narrow credential-entry layout.
	Login
)

func (k Kind) String() string {
	switch k {
	case Login:
		return "login"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Point is a client-area coordinate.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Size is a window size in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Reference holds the widths the heuristic compares against.
type Reference struct {
	// LoginWidth is the client width of the login layout, which refuses to
	// shrink below it.
	LoginWidth int `json:"login_width" yaml:"login_width"`
	// Tolerance is how far below LoginWidth a measured width may fall and
	// still count as the login layout.
	Tolerance int `json:"tolerance" yaml:"tolerance"`
	// Compact is the size the window is shrunk to before measuring.
	Compact Size `json:"compact" yaml:"compact"`
	// Restore is applied when the full layout is detected.
	Restore Size `json:"restore" yaml:"restore"`
}

// Default returns the reference sizes of Skype for Desktop 8.x.
func Default() Reference {
	return Reference{
		LoginWidth: 454,
		Tolerance:  60,
		Compact:    Size{Width: 344, Height: 621},
		Restore:    Size{Width: 960, Height: 650},
	}
}

// Classify reports the layout for a client width measured after the window
// was shrunk to r.Compact.
func (r Reference) Classify(clientWidth int) Kind {
	if r.LoginWidth-clientWidth > r.Tolerance {
		return Full
	}
	return Login
}
