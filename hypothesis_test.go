package superposition

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHypothesisProbability(t *testing.T) {
	Convey("Given hypotheses with various amplitudes", t, func() {
		Convey("A real amplitude yields its square", func() {
			hyp := Hypothesis{Label: "real", Amplitude: complex(0.5, 0)}
			So(hyp.Probability(), ShouldAlmostEqual, 0.25)
		})

		Convey("A purely imaginary amplitude still carries mass", func() {
			hyp := Hypothesis{Label: "imag", Amplitude: complex(0, 0.5)}
			So(hyp.Probability(), ShouldAlmostEqual, 0.25)
		})

		Convey("A mixed amplitude yields the squared magnitude", func() {
			hyp := Hypothesis{Label: "mixed", Amplitude: complex(3, 4)}
			So(hyp.Probability(), ShouldAlmostEqual, 25.0)
		})

		Convey("A zero amplitude yields zero mass", func() {
			hyp := Hypothesis{Label: "zero"}
			So(hyp.Probability(), ShouldEqual, 0.0)
		})

		Convey("Probability is never negative", func() {
			hyp := Hypothesis{Label: "negative", Amplitude: complex(-0.7, -0.2)}
			So(hyp.Probability(), ShouldBeGreaterThanOrEqualTo, 0.0)
		})
	})
}
