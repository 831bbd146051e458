// Package spectrum provides amplitude-spectrum helpers and candidate peak
// extraction for the RPM estimation engine.
//
// The package does not implement the FFT itself. It operates on complex bins
// produced by an external FFT backend and extracts ranked peak candidates
// from one-sided amplitude spectra.
package spectrum
