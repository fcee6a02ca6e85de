package power

// ResetDefault drops the process-wide manager so tests start clean.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = nil
}
