package marketapi

// SetMaxResponseBytes overrides the response size limit until the returned
// restore func is called.
func SetMaxResponseBytes(n int64) (restore func()) {
	prev := maxResponseBytes
	maxResponseBytes = n
	return func() { maxResponseBytes = prev }
}
