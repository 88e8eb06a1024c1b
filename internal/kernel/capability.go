package kernel

var implName = "generic"

// Implementation reports the name of the active axpy variant.
func Implementation() string {
	return implName
}

// useUnrolled switches to the 4-way unrolled loop. Called from the per-arch
// init when the core has wide FP units.
func useUnrolled() {
	axpyImpl = axpyUnrolled4
	implName = "unrolled4"
}
