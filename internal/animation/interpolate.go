package animation

// Source is anything with a current scalar value
type Source interface {
	Value() float64
}

// Range is a closed interval given as {from, to}
type Range [2]float64

// Interpolation maps its source linearly from one range onto another.
// Inputs outside the input range extrapolate along the same line.
type Interpolation struct {
	src Source
	in  Range
	out Range
}

// Value returns the mapped value of the source right now
func (i *Interpolation) Value() float64 {
	span := i.in[1] - i.in[0]
	if span == 0 {
		return i.out[0]
	}
	t := (i.src.Value() - i.in[0]) / span
	return i.out[0] + t*(i.out[1]-i.out[0])
}
