package domain

// SubmissionOutcome is the four-way result of a public form submission's two
// independent best-effort side effects (persist to the store, send the
// notification emails).
type SubmissionOutcome int

const (
	// OutcomeBothOK: persisted and notified.
	OutcomeBothOK SubmissionOutcome = iota
	// OutcomeStoreOnly: persisted, notification failed.
	OutcomeStoreOnly
	// OutcomeNotifyOnly: persistence failed, but the submitter got a
	// confirmation email — treated as proof of receipt.
	OutcomeNotifyOnly
	// OutcomeBothFailed: nothing worked; the only failure response.
	OutcomeBothFailed
)

// SubmissionResult aggregates the side-effect errors of one submission so
// the handler can map the outcome to a response deterministically instead of
// branching on error combinations inline.
//
// The policy is success-biased: any one side effect succeeding is an
// accepted submission (the customer is never blocked on an internal
// failure), with a warning describing what went wrong.
type SubmissionResult struct {
	// StoreErr is the persistence failure, nil on success.
	StoreErr error
	// NotifyErr is the notification failure, nil on success.
	NotifyErr error
}

// Outcome tags the result for response mapping.
func (r SubmissionResult) Outcome() SubmissionOutcome {
	switch {
	case r.StoreErr == nil && r.NotifyErr == nil:
		return OutcomeBothOK
	case r.StoreErr == nil:
		return OutcomeStoreOnly
	case r.NotifyErr == nil:
		return OutcomeNotifyOnly
	default:
		return OutcomeBothFailed
	}
}

// Accepted reports whether the submission should be presented to the
// visitor as successful.
func (r SubmissionResult) Accepted() bool {
	return r.Outcome() != OutcomeBothFailed
}
