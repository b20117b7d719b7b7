package handler

import (
	"errors"
	"net/http"

	"github.com/jayxvj/k2k-world/internal/domain"
)

// respondSubmission maps a form submission's aggregated side-effect result
// onto the response deterministically:
//
//	both ok        → 201 success
//	store only     → 201 success + warning about the missed notification
//	notify only    → 201 success + warning about the missed save
//	both failed    → 500 failure with both details
//
// The policy is success-biased on purpose: the visitor is never blocked on
// an internal failure as long as one channel worked.
func respondSubmission(w http.ResponseWriter, data any, result domain.SubmissionResult, okMessage string) {
	switch result.Outcome() {
	case domain.OutcomeBothOK:
		writeJSON(w, http.StatusCreated, envelope{
			Success: true,
			Data:    data,
			Message: okMessage,
		})
	case domain.OutcomeStoreOnly:
		writeJSON(w, http.StatusCreated, envelope{
			Success:  true,
			Data:     data,
			Message:  okMessage,
			Warnings: []string{"notification email failed: " + notifyDetail(result.NotifyErr)},
		})
	case domain.OutcomeNotifyOnly:
		writeJSON(w, http.StatusCreated, envelope{
			Success:  true,
			Message:  okMessage,
			Warnings: []string{"storage failed, but the confirmation email was sent"},
		})
	default: // OutcomeBothFailed
		writeJSON(w, http.StatusInternalServerError, envelope{
			Success: false,
			Error:   "failed to submit; please try again or contact us directly",
			Details: map[string]string{
				"database": "the submission could not be saved",
				"email":    notifyDetail(result.NotifyErr),
			},
		})
	}
}

// notifyDetail produces the user-facing description of a notification
// failure, keeping the config-vs-transport distinction without leaking the
// raw error.
func notifyDetail(err error) string {
	if errors.Is(err, domain.ErrMailNotConfigured) {
		return "email service is not configured"
	}
	return "notification email could not be sent"
}
