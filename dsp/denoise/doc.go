// Package denoise synthesizes a noisy multi-harmonic test signal, removes
// noise with an energy-budget band-stop filter in the frequency domain and
// measures how well the result matches the noise-free signal.
//
// A [Pipeline] owns every buffer of one run. [Pipeline.Update] recomputes
// all buffers when the configuration changes and is a no-op for an
// identical configuration. The noise realization is kept across updates and
// regenerated only when PointCount or SampleRate changes, so adjusting a
// harmonic or the filter ratio does not reshuffle the noise.
//
// Per recompute:
//
//	ideal    = sum of harmonics sampled at t = i/SampleRate
//	input    = ideal + beta*noise, beta^2*sum(noise^2) = NoiseAlpha*sum(ideal^2)
//	spectrum = FFT(input)
//	filtered = budget band-stop of spectrum at ratio Gamma
//	clean    = real(IFFT(filtered))
//	delta    = sum((clean-ideal)^2) / sum(ideal^2)
package denoise
