// Package isotropy checks sampled gradients for directional bias.
//
// A gradient sampler is isotropic when, averaged over many corners, its
// gradients tend toward the zero vector. Survey draws random corners of a
// fixed dimension, and Analyze builds a per-component Student's t confidence
// interval around the sample mean; a component whose interval excludes zero
// is reported as biased.
//
//	s := gradient.New()
//	rep, err := isotropy.Survey(s, isotropy.DefaultConfig(8))
//	if err == nil && !rep.Isotropic() {
//	  fmt.Println("biased components:", rep.Biased)
//	}
//
// At 99% confidence roughly one component in a hundred is flagged by chance,
// so callers surveying many dimensions should compare the biased fraction
// against a tolerance rather than demand zero.
package isotropy
