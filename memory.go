// memory.go
package superposition

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

/*
	ContextWeight expresses contextual support for a single hypothesis.

A positive weight reinforces the hypothesis during collapse, a negative
weight penalises it, and zero expresses neutrality. Labels that do not
match any stored hypothesis are ignored.
*/
type ContextWeight struct {
	Label  string
	Weight float64
}

/*
	SuperpositionMemory keeps a weighted superposition of labelled hypotheses.

Each hypothesis is stored as a complex amplitude keyed by its label.
Adding the same label twice sums the amplitudes, so overlapping evidence
interferes constructively or destructively instead of overwriting.
Insertion order is tracked so that collapse and ranking tie-breaks stay
deterministic across runs.

The memory is intentionally synchronous and unsynchronized: one logical
caller owns an instance at a time, and a host that shares instances
across goroutines must guard them externally.
*/
type SuperpositionMemory struct {
	amplitudes map[string]complex128
	order      []string
}

/*
	NewSuperpositionMemory creates an empty superposition memory.

Returns:
  - *SuperpositionMemory: A new instance holding no hypotheses
*/
func NewSuperpositionMemory() *SuperpositionMemory {
	return &SuperpositionMemory{
		amplitudes: make(map[string]complex128),
	}
}

/*
	Add registers a hypothesis with the given amplitude.

If the label already exists the amplitudes are summed, modeling the
interference behaviour of overlapping hypotheses: amplitudes pointing
the same way reinforce, opposed amplitudes cancel. Any label and any
amplitude are accepted, including the empty string and zero.

Parameters:
  - label: Hypothesis identifier, unique within this memory
  - amplitude: Complex amplitude to add to the hypothesis
*/
func (m *SuperpositionMemory) Add(label string, amplitude complex128) {
	if _, exists := m.amplitudes[label]; !exists {
		m.order = append(m.order, label)
	}
	m.amplitudes[label] += amplitude
}

/*
	AddReal registers a hypothesis with a purely real amplitude.

Convenience overload for callers whose weights carry no phase; the
value becomes the real component of a complex amplitude.
*/
func (m *SuperpositionMemory) AddReal(label string, amplitude float64) {
	m.Add(label, complex(amplitude, 0))
}

/*
	Normalise scales all amplitudes so total probability mass equals one.

Every stored amplitude is divided by the square root of the current
total mass. Calling it again on an already normalised memory leaves the
state statistically unchanged up to floating-point rounding.

Returns:
  - error: ErrEmptyState when the memory is empty or every stored
    amplitude is exactly zero; nil otherwise
*/
func (m *SuperpositionMemory) Normalise() error {
	total := m.totalMass()
	if total == 0 {
		return fmt.Errorf("cannot normalise: %w", ErrEmptyState)
	}

	scale := complex(math.Sqrt(total), 0)
	for label, amplitude := range m.amplitudes {
		m.amplitudes[label] = amplitude / scale
	}
	return nil
}

/*
	Collapse selects a single hypothesis using contextual weighting.

Each stored hypothesis is scored as probability * (1 + weight), where
the weight comes from the supplied context and defaults to zero for
hypotheses the context does not mention. Neutral contexts therefore
fall back to pure probability ranking, while positive weights reinforce
and negative weights penalise. Scores tie in favour of the hypothesis
inserted first.

Collapse is non-destructive: the stored amplitudes are not rescaled,
pruned, or otherwise altered, and the returned Hypothesis carries the
original stored amplitude.

Parameters:
  - context: Contextual support weights, one per label; labels absent
    from the memory are ignored

Returns:
  - Hypothesis: The hypothesis with the highest context-weighted score
  - error: ErrEmptyState when the memory holds no hypotheses
*/
func (m *SuperpositionMemory) Collapse(context []ContextWeight) (Hypothesis, error) {
	if len(m.order) == 0 {
		return Hypothesis{}, fmt.Errorf("cannot collapse: %w", ErrEmptyState)
	}

	weights := make(map[string]float64, len(context))
	for _, cw := range context {
		weights[cw.Label] = cw.Weight
	}

	var winner Hypothesis
	best := math.Inf(-1)
	for _, label := range m.order {
		hyp := Hypothesis{Label: label, Amplitude: m.amplitudes[label]}
		score := hyp.Probability() * (1.0 + weights[label])
		if score > best {
			best = score
			winner = hyp
		}
	}
	return winner, nil
}

/*
	AsRankedList returns all hypotheses ordered by descending probability.

The sort is stable over insertion order, so equal-probability
hypotheses keep their relative positions. An empty memory yields an
empty slice rather than an error.
*/
func (m *SuperpositionMemory) AsRankedList() []Hypothesis {
	ranked := make([]Hypothesis, 0, len(m.order))
	for _, label := range m.order {
		ranked = append(ranked, Hypothesis{Label: label, Amplitude: m.amplitudes[label]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Probability() > ranked[j].Probability()
	})
	return ranked
}

/*
	Reset clears all stored hypotheses.

The memory returns to its initial empty state and can be reused.
Resetting an already empty memory is a no-op.
*/
func (m *SuperpositionMemory) Reset() {
	m.amplitudes = make(map[string]complex128)
	m.order = nil
}

/*
	Len returns the number of stored hypotheses.
*/
func (m *SuperpositionMemory) Len() int {
	return len(m.order)
}

/*
	totalMass sums the probability mass over all stored hypotheses.
*/
func (m *SuperpositionMemory) totalMass() float64 {
	masses := make([]float64, 0, len(m.order))
	for _, label := range m.order {
		hyp := Hypothesis{Label: label, Amplitude: m.amplitudes[label]}
		masses = append(masses, hyp.Probability())
	}
	return floats.Sum(masses)
}
