package usecase

import (
	"errors"
	"fmt"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
)

// ErrInvalidTransition is returned for a transition missing from the table
var ErrInvalidTransition = errors.New("invalid donation state transition")

var transitions = map[models.DonationState][]models.DonationState{
	models.DonationStateEnteringAmount:  {models.DonationStateAwaitingPayment},
	models.DonationStateAwaitingPayment: {models.DonationStateProcessing, models.DonationStateFailed},
	models.DonationStateProcessing:      {models.DonationStateCompleted, models.DonationStateFailed},
	models.DonationStateFailed:          {models.DonationStateAwaitingPayment},
}

// Workflow tracks one donation run. It is not safe for concurrent use and
// lives for a single request.
type Workflow struct {
	state models.DonationState
	path  []models.DonationState
}

// NewWorkflow starts a workflow in entering_amount
func NewWorkflow() *Workflow {
	return &Workflow{
		state: models.DonationStateEnteringAmount,
		path:  []models.DonationState{models.DonationStateEnteringAmount},
	}
}

// State returns the current state
func (w *Workflow) State() models.DonationState {
	return w.state
}

// Path returns every state visited, in order
func (w *Workflow) Path() []models.DonationState {
	out := make([]models.DonationState, len(w.path))
	copy(out, w.path)
	return out
}

// CanTransition reports whether to is reachable from the current state
func (w *Workflow) CanTransition(to models.DonationState) bool {
	for _, next := range transitions[w.state] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the workflow to the given state
func (w *Workflow) Transition(to models.DonationState) error {
	if !w.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.state, to)
	}
	w.state = to
	w.path = append(w.path, to)
	return nil
}

// Fail moves the workflow through failed back to awaiting_payment so the
// donor can retry the payment.
func (w *Workflow) Fail() error {
	if err := w.Transition(models.DonationStateFailed); err != nil {
		return err
	}
	return w.Transition(models.DonationStateAwaitingPayment)
}
