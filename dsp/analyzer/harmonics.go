package analyzer

import (
	"math"

	"github.com/cwbudde/algo-spectra/dsp/window"
)

// Distortion summarizes harmonic distortion relative to the peak bin, taken
// as the fundamental. Ratios are linear; the dB fields are 20*log10 of them.
type Distortion struct {
	FundamentalFreq  float64
	FundamentalLevel float64 // RSS magnitude of the fundamental's capture band

	THD    float64 // RSS of all harmonics over the fundamental
	THDN   float64 // everything but the fundamental over the fundamental
	THDdB  float64
	THDNdB float64
	SINAD  float64 // -THDNdB; +Inf without residue

	OddHD  float64
	EvenHD float64

	// Harmonics[i] is the level of harmonic i+2 relative to the fundamental.
	Harmonics []float64
}

// captureBins is the half-width in bins of a tone's main lobe, used to
// collect the energy of a windowed sinusoid.
func captureBins(shape window.Shape) int {
	switch shape {
	case window.ShapeRectangular:
		return 1
	case window.ShapeBlackman:
		return 3
	default:
		return 2
	}
}

// Distortion measures harmonics of the peak bin up to maxHarmonics (0 means
// every harmonic below Nyquist). A result without a usable fundamental (peak
// at DC or a silent spectrum) is zero apart from FundamentalFreq.
func (r Result) Distortion(maxHarmonics int) Distortion {
	if r.Spectrum == nil {
		return Distortion{}
	}

	pow := r.Spectrum.Power()
	pow = pow[:min(r.Spectrum.SampleSize()/2+1, len(pow))]

	fund := r.Spectrum.PeakBin()
	d := Distortion{FundamentalFreq: r.Spectrum.ItemFreq(fund)}
	if fund < 1 {
		return d
	}

	capture := min(r.capture, fund/2)
	fundPow := bandPower(pow, fund, capture)
	if fundPow <= 0 {
		return d
	}
	d.FundamentalLevel = math.Sqrt(fundPow)

	var harmPow, oddPow, evenPow float64
	for k := 2; k*fund < len(pow); k++ {
		if maxHarmonics > 0 && k-1 > maxHarmonics {
			break
		}
		p := bandPower(pow, k*fund, capture)
		harmPow += p
		if k%2 == 0 {
			evenPow += p
		} else {
			oddPow += p
		}
		d.Harmonics = append(d.Harmonics, math.Sqrt(p/fundPow))
	}

	total := 0.0
	for _, p := range pow[1:] {
		total += p
	}

	d.THD = math.Sqrt(harmPow / fundPow)
	d.THDN = math.Sqrt(max(total-fundPow, 0) / fundPow)
	d.OddHD = math.Sqrt(oddPow / fundPow)
	d.EvenHD = math.Sqrt(evenPow / fundPow)
	d.THDdB = ratioToDB(d.THD)
	d.THDNdB = ratioToDB(d.THDN)
	d.SINAD = -d.THDNdB

	return d
}

func bandPower(pow []float64, center, halfWidth int) float64 {
	lo := max(center-halfWidth, 0)
	hi := min(center+halfWidth, len(pow)-1)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += pow[i]
	}
	return sum
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
