package constants

// JetStream streams
const (
	StreamDonation = "DONATION_STREAM"
)

// NATS subjects
const (
	SubjectDonationCompleted      = "donation.completed"
	SubjectDonationReconciliation = "donation.reconciliation_required"
)

// Durable consumers
const (
	ConsumerDonationCompletedActivity = "donation_completed_activity"
	ConsumerReconciliationAudit       = "donation_reconciliation_audit"
)
