// reasoner.go
package superposition

import (
	"math"

	"github.com/theapemachine/errnie"
)

/*
Prior carries a hypothesis label and its unnormalised prior mass. Priors
are supplied as an ordered slice rather than a map so that collapse
tie-breaks remain deterministic.
*/
type Prior struct {
	Label string
	Mass  float64
}

// Sensor feature flags understood by the contextual reasoning demo.
const (
	FeatureRedundantSensorAgreement     = "redundant_sensor_agreement"
	FeatureExternalHeatSource           = "external_heat_source"
	FeatureMaintenanceRecentlyCompleted = "maintenance_recently_completed"
)

/*
ReasonAboutSignal fuses scenario priors and sensor feature cues to pick
the most plausible interpretation of an ambiguous signal.

Prior masses do not need to sum to one; each is mapped to an amplitude
via a square-root transform and the memory is normalised before the
contextual collapse. Feature flags are translated into context weights
that bias, but do not dictate, the outcome.
*/
func ReasonAboutSignal(priors []Prior, features []string) (Hypothesis, error) {
	errnie.Info(
		"ReasonAboutSignal - priors %v, features %v",
		priors,
		features,
	)

	memory := NewSuperpositionMemory()
	for _, prior := range priors {
		memory.AddReal(prior.Label, math.Sqrt(prior.Mass))
	}

	if err := memory.Normalise(); err != nil {
		return Hypothesis{}, err
	}

	return memory.Collapse(featureContext(features))
}

/*
featureContext translates simple feature flags into contextual weight
adjustments. Unknown features are ignored.
*/
func featureContext(features []string) []ContextWeight {
	weights := map[string]float64{
		"thermal anomaly":    0.0,
		"sensor fault":       0.0,
		"benign fluctuation": 0.0,
	}

	for _, feature := range features {
		switch feature {
		case FeatureRedundantSensorAgreement:
			// Reliability increases, penalise the sensor fault interpretation.
			weights["sensor fault"] -= 0.25
		case FeatureExternalHeatSource:
			weights["thermal anomaly"] += 0.35
		case FeatureMaintenanceRecentlyCompleted:
			weights["benign fluctuation"] += 0.20
		}
	}

	return []ContextWeight{
		{Label: "thermal anomaly", Weight: weights["thermal anomaly"]},
		{Label: "sensor fault", Weight: weights["sensor fault"]},
		{Label: "benign fluctuation", Weight: weights["benign fluctuation"]},
	}
}

/*
RunDemo runs the deterministic toy scenario used in documentation
examples: three competing interpretations of an ambiguous sensor signal
with a mild positive context weight on one of them. It returns the
ranked hypothesis list after normalisation so the behaviour can be
asserted in tests or experiments.
*/
func RunDemo() ([]Hypothesis, error) {
	memory := NewSuperpositionMemory()
	memory.Add("thermal anomaly", 0.6+0.1i)
	memory.AddReal("sensor fault", 0.3)
	memory.AddReal("benign fluctuation", 0.1)

	if err := memory.Normalise(); err != nil {
		return nil, err
	}

	winner, err := memory.Collapse([]ContextWeight{
		{Label: "thermal anomaly", Weight: 0.2},
	})
	if err != nil {
		return nil, err
	}
	errnie.Info("RunDemo - collapsed to %s", winner.Label)

	return memory.AsRankedList(), nil
}
