package cvi

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// OWA is an ordered-weighted-averaging aggregator: it reduces a set of
// values to one scalar, assigning weight by rank within the sorted values
// rather than by the value's origin. Min, Max and Mean are degenerate
// special cases of the general OWA family.
type OWA func(values []float64) float64

func owaMin(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func owaMax(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func owaMean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// owaConst always returns 1, used as a trivial normaliser in the catalogue.
func owaConst(values []float64) float64 {
	return 1.0
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// owaSMin averages the m smallest values ("soft minimum").
func owaSMin(m int) OWA {
	return func(values []float64) float64 {
		s := sortedCopy(values)
		mm := m
		if mm > len(s) {
			mm = len(s)
		}
		if mm <= 0 {
			return math.NaN()
		}
		return owaMean(s[:mm])
	}
}

// owaSMax averages the m largest values ("soft maximum").
func owaSMax(m int) OWA {
	return func(values []float64) float64 {
		s := sortedCopy(values)
		mm := m
		if mm > len(s) {
			mm = len(s)
		}
		if mm <= 0 {
			return math.NaN()
		}
		return owaMean(s[len(s)-mm:])
	}
}

// quantile interpolates linearly between closest ranks (the common "type 7"
// definition used by most statistics packages).
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// owaTrimean returns Tukey's trimean: (Q1 + 2·median + Q3) / 4.
func owaTrimean(values []float64) float64 {
	s := sortedCopy(values)
	q1 := quantile(s, 0.25)
	q2 := quantile(s, 0.5)
	q3 := quantile(s, 0.75)
	return (q1 + 2*q2 + q3) / 4
}

// ResolveOWA parses an OWA operator name from the catalogue DuNN-OWA draws
// its numerator and denominator aggregators from: Mean, Min, Max, Const,
// Trimean, and the parameterised SMin:m / SMax:m soft extremes.
func ResolveOWA(name string) (OWA, error) {
	switch {
	case name == "Mean":
		return owaMean, nil
	case name == "Min":
		return owaMin, nil
	case name == "Max":
		return owaMax, nil
	case name == "Const":
		return owaConst, nil
	case name == "Trimean":
		return owaTrimean, nil
	case strings.HasPrefix(name, "SMin:"):
		m, err := strconv.Atoi(strings.TrimPrefix(name, "SMin:"))
		if err != nil || m <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOWA, name)
		}
		return owaSMin(m), nil
	case strings.HasPrefix(name, "SMax:"):
		m, err := strconv.Atoi(strings.TrimPrefix(name, "SMax:"))
		if err != nil || m <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOWA, name)
		}
		return owaSMax(m), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOWA, name)
	}
}
