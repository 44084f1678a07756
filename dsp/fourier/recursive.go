package fourier

// Recursive is the reference radix-2 engine.
type Recursive struct {
	parallelDepth int
}

// RecursiveOption configures a Recursive engine.
type RecursiveOption func(*Recursive)

// WithParallelDepth evaluates the two half transforms of the top depth
// recursion levels on separate goroutines. Results are identical to the
// serial evaluation. Depth <= 0 disables forking.
func WithParallelDepth(depth int) RecursiveOption {
	return func(r *Recursive) {
		if depth < 0 {
			depth = 0
		}
		r.parallelDepth = depth
	}
}

// NewRecursive creates a recursive radix-2 engine.
func NewRecursive(opts ...RecursiveOption) *Recursive {
	r := &Recursive{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// ParallelDepth returns the configured fork depth.
func (r *Recursive) ParallelDepth() int {
	return r.parallelDepth
}

// Forward computes the unnormalized forward DFT of in.
func (r *Recursive) Forward(in []complex128) ([]complex128, error) {
	if err := validateLength(len(in)); err != nil {
		return nil, err
	}
	return radix2(in, r.parallelDepth), nil
}

// Inverse computes conj(FFT(conj(in)))/N.
func (r *Recursive) Inverse(in []complex128) ([]complex128, error) {
	if err := validateLength(len(in)); err != nil {
		return nil, err
	}

	out := conjugate(radix2(conjugate(in), r.parallelDepth))
	scale := complex(1/float64(len(in)), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}
