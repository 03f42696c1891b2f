package controller

// Latch turns a held input into a single pulse, like a button which toggles
// something once per press however long it's held.
type Latch struct {
	val bool
}

// Run returns true only when v is true and was false last time.
func (l *Latch) Run(v bool) bool {
	r := v && !l.val
	l.val = v
	return r
}
