package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxRecentlyViewed bounds the recently viewed campaign list
const MaxRecentlyViewed = 5

// DonationState is a state of the donation workflow
type DonationState string

const (
	DonationStateEnteringAmount  DonationState = "entering_amount"
	DonationStateAwaitingPayment DonationState = "awaiting_payment"
	DonationStateProcessing      DonationState = "processing"
	DonationStateCompleted       DonationState = "completed"
	DonationStateFailed          DonationState = "failed"
)

// MessageSeverity classifies user facing messages
type MessageSeverity string

const (
	SeverityError   MessageSeverity = "error"
	SeverityWarning MessageSeverity = "warning"
	SeverityInfo    MessageSeverity = "info"
)

// UserMessage is a message shown to the donor
type UserMessage struct {
	Severity MessageSeverity `json:"severity"`
	Title    string          `json:"title,omitempty"`
	Text     string          `json:"text"`
}

// DonationRecord is a single completed donation in a donor's history
type DonationRecord struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	CampaignID    uuid.UUID `json:"campaign_id" db:"campaign_id"`
	CampaignTitle string    `json:"campaign_title" db:"campaign_title"`
	Amount        int64     `json:"amount" db:"amount"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	Date          time.Time `json:"date" db:"donated_at"`
}

// UserHistory is the per-user donation and browsing history
type UserHistory struct {
	Donations         []DonationRecord `json:"donations"`
	RecentlyViewedIDs []uuid.UUID      `json:"recently_viewed_ids"`
}

// HistorySummary is the history view returned to the donor
type HistorySummary struct {
	UserHistory
	RecentlyViewed []Campaign `json:"recently_viewed"`
	TotalDonated   int64      `json:"total_donated"`
}

// DonationRequest is the donor's submission for a campaign
type DonationRequest struct {
	Amount       string `json:"amount"`
	PaymentToken string `json:"payment_token"`
}

// DonationOutcome describes where a donation workflow run ended
type DonationOutcome struct {
	State           DonationState `json:"state"`
	Message         *UserMessage  `json:"message,omitempty"`
	Campaign        *Campaign     `json:"campaign,omitempty"`
	Receipt         *Receipt      `json:"receipt,omitempty"`
	ReceiptText     string        `json:"receipt_text,omitempty"`
	ReceiptFilename string        `json:"receipt_filename,omitempty"`
}

// PaymentOrder is what the donation workflow hands the payment provider
type PaymentOrder struct {
	OrderID     string
	Description string
	Amount      int64
	Currency    string
	Token       string
	DonorName   string
	DonorEmail  string
}

// PaymentCapture is a successful capture reported by the payment provider
type PaymentCapture struct {
	TransactionID string
	Status        string
}

// Receipt is derived from values known at completion time
type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	CampaignTitle string    `json:"campaign_title"`
	DonorName     string    `json:"donor_name"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
}

// FormatAmount renders minor units as a decimal amount with grouping
func FormatAmount(amount int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.2f", float64(amount)/100)
}

// Text renders the plain text receipt
func (r Receipt) Text() string {
	donor := r.DonorName
	if strings.TrimSpace(donor) == "" {
		donor = "Anonymous Donor"
	}

	var b strings.Builder
	b.WriteString("HEARTFUND OFFICIAL DONATION RECEIPT\n")
	b.WriteString("===================================\n")
	fmt.Fprintf(&b, "Transaction ID: %s\n", r.TransactionID)
	fmt.Fprintf(&b, "Date: %s\n", r.Date.UTC().Format(time.RFC1123))
	fmt.Fprintf(&b, "Campaign: %s\n", r.CampaignTitle)
	fmt.Fprintf(&b, "Donor: %s\n", donor)
	fmt.Fprintf(&b, "Amount: $%s %s\n", FormatAmount(r.Amount), r.Currency)
	b.WriteString("Status: COMPLETED\n")
	b.WriteString("-----------------------------------\n")
	b.WriteString("Thank you for your generous support!\n")
	b.WriteString("HeartFund - Your Compassion in Action\n")
	return b.String()
}

// Filename is the suggested download name for the receipt
func (r Receipt) Filename() string {
	return fmt.Sprintf("HeartFund_Receipt_%s.txt", r.TransactionID)
}

// DonationCompletedEvent is published once a donation is fully recorded
type DonationCompletedEvent struct {
	TransactionID string    `json:"transaction_id"`
	CampaignID    uuid.UUID `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title"`
	DonorID       uuid.UUID `json:"donor_id"`
	DonorName     string    `json:"donor_name"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Date          time.Time `json:"date"`
}

// Reconciliation reasons
const (
	ReconcileAggregateFailed = "aggregate_update_failed"
	ReconcileHistoryFailed   = "history_append_failed"
)

// ReconciliationEvent flags a captured payment the ledger could not fully record
type ReconciliationEvent struct {
	TransactionID string    `json:"transaction_id"`
	CampaignID    uuid.UUID `json:"campaign_id"`
	DonorID       uuid.UUID `json:"donor_id"`
	Amount        int64     `json:"amount"`
	Reason        string    `json:"reason"`
	Error         string    `json:"error"`
	Date          time.Time `json:"date"`
}
