// Package parity checks that ourtorch computes sum(A·B + D) to the same
// value as the reference implementations.
package parity

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/csotherden/ourtorch/ourtorch"
	"github.com/csotherden/ourtorch/reference"
)

// DefaultPlaces is the number of decimal places results must agree to.
const DefaultPlaces = 5

// ErrMismatch is returned when a reference disagrees with ourtorch after
// rounding.
var ErrMismatch = errors.New("parity: results disagree")

// Oracle is a named reference implementation.
type Oracle struct {
	Name string
	Func reference.Func
}

// DefaultOracles returns the gorgonia graph and gonum references.
func DefaultOracles() []Oracle {
	return []Oracle{
		{Name: "gorgonia", Func: reference.Graph},
		{Name: "gonum", Func: reference.Gonum},
	}
}

// Result is one reference value.
type Result struct {
	Name    string
	Value   float64
	Rounded float64
}

// Report is the outcome of Compare.
type Report struct {
	Places     int
	Ours       float64
	Rounded    float64
	References []Result
}

type options struct {
	places  int
	logger  *slog.Logger
	oracles []Oracle
}

// Option configures Compare.
type Option func(*options)

// WithPlaces sets the number of decimal places compared.
func WithPlaces(n int) Option {
	return func(o *options) { o.places = n }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOracles replaces the default references.
func WithOracles(oracles ...Oracle) Option {
	return func(o *options) { o.oracles = oracles }
}

// Ours computes sum(A·B + D) with ourtorch tensors.
func Ours(f Fixture) (float64, error) {
	a, err := ourtorch.FromMatrix(f.A)
	if err != nil {
		return 0, errors.Wrap(err, "a")
	}
	b, err := ourtorch.FromMatrix(f.B)
	if err != nil {
		return 0, errors.Wrap(err, "b")
	}
	d, err := ourtorch.FromMatrix(f.D)
	if err != nil {
		return 0, errors.Wrap(err, "d")
	}

	c, err := a.MatMul(b)
	if err != nil {
		return 0, err
	}
	e, err := c.Add(d)
	if err != nil {
		return 0, err
	}
	return e.Sum().Item()
}

// Compare evaluates the fixture with ourtorch and every oracle. All values
// are rounded to the configured number of places; any disagreement returns
// the report so far together with ErrMismatch.
func Compare(ctx context.Context, f Fixture, opts ...Option) (Report, error) {
	o := options{
		places:  DefaultPlaces,
		logger:  slog.Default(),
		oracles: DefaultOracles(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	rep := Report{Places: o.places}

	ours, err := Ours(f)
	if err != nil {
		return rep, errors.Wrap(err, "ourtorch")
	}
	rep.Ours = ours
	rep.Rounded = scalar.Round(ours, o.places)
	o.logger.Debug("computed", "impl", "ourtorch", "value", ours)

	for _, oracle := range o.oracles {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		v, err := oracle.Func(f.A, f.B, f.D)
		if err != nil {
			return rep, errors.Wrap(err, oracle.Name)
		}
		res := Result{Name: oracle.Name, Value: v, Rounded: scalar.Round(v, o.places)}
		rep.References = append(rep.References, res)
		o.logger.Debug("computed", "impl", oracle.Name, "value", v)

		if res.Rounded != rep.Rounded {
			return rep, errors.Wrapf(ErrMismatch, "ourtorch=%v %s=%v (%d places)", rep.Rounded, res.Name, res.Rounded, o.places)
		}
	}

	o.logger.Info("results agree", "value", rep.Rounded, "places", o.places, "references", len(rep.References))
	return rep, nil
}
