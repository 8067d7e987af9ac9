package domain

// AdvisoryVerdict is the feasibility/safety judgment for an utterance that
// resolved to no local artifact. Derived once per unresolved utterance and
// never cached across runs.
type AdvisoryVerdict struct {
	Safe    bool
	RawText string
}
