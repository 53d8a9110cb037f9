package model

// ProcessInfo is a point-in-time reading of a single process
type ProcessInfo struct {
	Owner      string
	Command    string // empty for kernel threads
	StartTick  uint64 // clock ticks after boot
	ResidentKB uint64
	CPUTicks   uint64 // user + system
}
