package domain

import "fmt"

const (
	MinRating = 1
	MaxRating = 5
)

// Ratings accumulates accepted ratings. The average is derived on read.
type Ratings struct {
	values []int
}

// Add appends value if it lies in [MinRating, MaxRating].
func (r *Ratings) Add(value int) error {
	if value < MinRating || value > MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d, got %d", ErrInvalidArgument, MinRating, MaxRating, value)
	}
	r.values = append(r.values, value)
	return nil
}

// Average returns the arithmetic mean, or 0 when nothing has been rated.
func (r *Ratings) Average() float64 {
	if len(r.values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range r.values {
		sum += v
	}
	return float64(sum) / float64(len(r.values))
}

func (r *Ratings) Count() int {
	return len(r.values)
}

// Values returns a copy of the accepted ratings in insertion order.
func (r *Ratings) Values() []int {
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}
