package domain

import "time"

// LedgerStatus is the state of one publish attempt. Per attempt the machine
// is reserved -> {ok | failed}, terminal either way.
type LedgerStatus string

const (
	LedgerStatusReserved LedgerStatus = "reserved"
	LedgerStatusOK       LedgerStatus = "ok"
	LedgerStatusFailed   LedgerStatus = "failed"
)

// LedgerEntry records one logical publish attempt, keyed by the
// client-supplied idempotency key. The key's uniqueness constraint in the
// storage layer is the sole mutual-exclusion mechanism for publishing.
type LedgerEntry struct {
	IdempotencyKey string
	ConfirmToken   string
	DraftID        string
	DryRun         bool
	Status         LedgerStatus
	ListingURL     *string
	ErrorMessage   *string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// PriceSuggestion is the min/suggested/max pricing triple required by the
// quality gate.
type PriceSuggestion struct {
	Min       float64 `json:"min"`
	Suggested float64 `json:"suggested"`
	Max       float64 `json:"max"`
}

// ListingSnapshot is the frozen listing content embedded in a confirm token.
// Publish is self-contained: the marketplace call uses the snapshot, not the
// live draft row.
type ListingSnapshot struct {
	DraftID         string           `json:"draft_id"`
	OwnerID         string           `json:"owner_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Price           float64          `json:"price"`
	Category        string           `json:"category"`
	Condition       string           `json:"condition"`
	Color           string           `json:"color"`
	Brand           string           `json:"brand"`
	Size            string           `json:"size"`
	Hashtags        []string         `json:"hashtags"`
	Photos          []string         `json:"photos"`
	PriceSuggestion *PriceSuggestion `json:"price_suggestion,omitempty"`
	PublishReady    bool             `json:"publish_ready"`
}

// PublishOutcome is the marketplace client's verdict for one publish call.
// ManualAction is distinguished from both success and retryable failure:
// the platform raised an anti-automation challenge a human must resolve.
type PublishOutcome struct {
	OK           bool
	ManualAction bool
	ListingID    string
	ListingURL   string
	Message      string
}

// EventType identifies a pipeline event published to the message bus.
type EventType string

const (
	EventDraftCreated     EventType = "draft.created"
	EventDraftMerged      EventType = "draft.merged"
	EventJobCompleted     EventType = "job.completed"
	EventJobFailed        EventType = "job.failed"
	EventListingPublished EventType = "listing.published"
)

// Event is the message shape consumed by downstream services (CRM, notifier).
type Event struct {
	Type       EventType `json:"type"`
	JobID      string    `json:"job_id,omitempty"`
	DraftID    string    `json:"draft_id,omitempty"`
	OwnerID    string    `json:"owner_id,omitempty"`
	ListingURL string    `json:"listing_url,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
