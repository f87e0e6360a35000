package trade

// Cascade step names, in the sequence the orchestrator runs them.
const (
	CascadeStepLedgerEntries  = "ledger_entries"
	CascadeStepLedgerPayout   = "ledger_payout"
	CascadeStepLedgerReversal = "ledger_reversal"
	CascadeStepClientBalance  = "client_balance"
	CascadeStepClientCounter  = "client_order_counter"
	CascadeStepNotifications  = "notifications"
	CascadeStepEvents         = "events"
)

// CascadeStepResult records the outcome of one side-effect step.
type CascadeStepResult struct {
	Step  string `json:"step"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// CascadeResult is the explicit outcome of a cascading order operation. The
// primary write either succeeded (and the result lists how each side-effect
// step fared) or the whole operation failed before any side effect ran.
// A failed step is recorded and logged, never retried or compensated; the
// primary write stands regardless.
type CascadeResult struct {
	Steps []CascadeStepResult `json:"steps"`
}

// Record appends the outcome of one step
func (r *CascadeResult) Record(step string, err error) {
	result := CascadeStepResult{Step: step, OK: err == nil}
	if err != nil {
		result.Error = err.Error()
	}
	r.Steps = append(r.Steps, result)
}

// Complete reports whether every side-effect step succeeded
func (r *CascadeResult) Complete() bool {
	for _, step := range r.Steps {
		if !step.OK {
			return false
		}
	}
	return true
}

// Failed returns the steps that did not complete
func (r *CascadeResult) Failed() []CascadeStepResult {
	failed := make([]CascadeStepResult, 0)
	for _, step := range r.Steps {
		if !step.OK {
			failed = append(failed, step)
		}
	}
	return failed
}
