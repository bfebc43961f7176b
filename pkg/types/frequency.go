package types

import "fmt"

// Frequency is a float64 wrapper representing a rate in Hertz, used to
// print the TSC frequency implied by a calibration's coeff (1e9 / coeff).
type Frequency float64

// Humanized returns a human-readable string with automatic SI unit (Hz,
// kHz, MHz, GHz), decimal (1000-based) rather than binary, matching how
// CPU and bus frequencies are conventionally reported.
func (f Frequency) Humanized() string {
	const unit = 1000.0
	v := float64(f)
	switch {
	case v >= unit*unit*unit:
		return fmt.Sprintf("%.4f GHz", v/(unit*unit*unit))
	case v >= unit*unit:
		return fmt.Sprintf("%.4f MHz", v/(unit*unit))
	case v >= unit:
		return fmt.Sprintf("%.4f kHz", v/unit)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}

// GHz returns the frequency expressed in gigahertz.
func (f Frequency) GHz() float64 { return float64(f) / 1e9 }

// MHz returns the frequency expressed in megahertz.
func (f Frequency) MHz() float64 { return float64(f) / 1e6 }
