package space

// EuclideanSpace is anything with a fixed number of dimensions.
type EuclideanSpace interface {
	NumDimensions() int
}

// Interval is an integer box [Min(d), Max(d)] per axis.
type Interval interface {
	EuclideanSpace
	Min(d int) int64
	Max(d int) int64
	// MinInto writes the minimum of every axis into dst.
	MinInto(dst []int64)
	// MaxInto writes the maximum of every axis into dst.
	MaxInto(dst []int64)
	// Dimension returns the number of integer positions along axis d.
	Dimension(d int) int64
}

// RealInterval is a real-valued box per axis.
type RealInterval interface {
	EuclideanSpace
	RealMin(d int) float64
	RealMax(d int) float64
	RealMinInto(dst []float64)
	RealMaxInto(dst []float64)
}

// Localizable reports an integer position.
type Localizable interface {
	EuclideanSpace
	// Localize writes the current position into dst.
	Localize(dst []int64)
	// Position returns the coordinate along axis d.
	Position(d int) int64
}

// Positionable moves an integer position.
type Positionable interface {
	EuclideanSpace
	// Fwd moves one unit forward along axis d.
	Fwd(d int)
	// Bck moves one unit backward along axis d.
	Bck(d int)
	// Move moves by a signed distance along axis d.
	Move(distance int64, d int)
	// MoveBy moves by a signed distance along every axis.
	MoveBy(distance []int64)
	// SetPosition jumps to an absolute position.
	SetPosition(pos []int64)
	// SetPositionAt sets the coordinate along axis d.
	SetPositionAt(pos int64, d int)
}

// RealLocalizable reports a real-valued position.
type RealLocalizable interface {
	EuclideanSpace
	RealLocalize(dst []float64)
	RealPosition(d int) float64
}

// RealPositionable moves a real-valued position.
type RealPositionable interface {
	EuclideanSpace
	RealMove(distance float64, d int)
	RealMoveBy(distance []float64)
	RealSetPosition(pos []float64)
	RealSetPositionAt(pos float64, d int)
}

// State is the traversal state shared by cursors and region iterators.
type State int

const (
	// Unstarted means no element has been visited yet. The first Fwd moves
	// to the first element, the first Bck to the last one.
	Unstarted State = iota
	// Positioned means the traversal sits on an element and can move
	// further forward.
	Positioned
	// Exhausted means the traversal sits on the final element and no
	// forward step remains.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Positioned:
		return "positioned"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
