// Package fft computes forward discrete Fourier transforms of real signals.
//
// A ForwardFFT is built once for a fixed power-of-two length and may then be
// shared by any number of goroutines. Transform scratch state lives in
// per-call workspaces drawn from a pool, so the plan itself is never written
// after construction.
//
// Two backends are available: BackendAlgoFFT (the default, complex and
// real-input plans from algo-fft) and BackendGonum (gonum's real-input
// transform). Both produce unnormalized bins using the e^{-2*pi*i*k*n/N}
// convention. ProcessReal computes only the N/2+1 unique bins on either
// backend.
package fft
