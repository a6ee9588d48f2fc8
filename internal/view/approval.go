package view

import "sync"

// ApprovalOverlay tracks per-transaction approval for the session. It is not
// tied to what is currently displayed and is never persisted.
type ApprovalOverlay struct {
	mu       sync.RWMutex
	approved map[string]bool
}

func NewApprovalOverlay() *ApprovalOverlay {
	return &ApprovalOverlay{approved: make(map[string]bool)}
}

func (a *ApprovalOverlay) SetApproval(transactionID string, approved bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.approved[transactionID] = approved
}

// IsApproved reports false for ids that were never set.
func (a *ApprovalOverlay) IsApproved(transactionID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.approved[transactionID]
}

// Toggle flips the flag and returns the new value.
func (a *ApprovalOverlay) Toggle(transactionID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	v := !a.approved[transactionID]
	a.approved[transactionID] = v
	return v
}

func (a *ApprovalOverlay) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.approved)
}
