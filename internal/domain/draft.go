package domain

import "time"

// DraftStatus is the lifecycle state of a listing draft.
type DraftStatus string

const (
	DraftStatusPending   DraftStatus = "pending"
	DraftStatusReady     DraftStatus = "ready"
	DraftStatusPrepared  DraftStatus = "prepared"
	DraftStatusPublished DraftStatus = "published"
	DraftStatusError     DraftStatus = "error"
)

// Draft is an editable, not-yet-published listing record.
type Draft struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Price       float64
	Category    string
	Condition   string
	Color       string
	Brand       string
	Size        string
	// Photos is an ordered list of photo references (storage paths).
	Photos []string
	Status DraftStatus
	// Confidence is the classifier's confidence for the item grouping, 0.0-1.0.
	Confidence float64

	// Price suggestion triple, filled in by user edits or a pricing service.
	PriceMin       *float64
	PriceSuggested *float64
	PriceMax       *float64

	PublishReady     bool
	ContentValidated bool
	PhotosValidated  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemDescriptor is one classified item produced by the external classifier:
// a group of photos plus the structured listing fields derived from them.
type ItemDescriptor struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Condition   string
	Color       string
	Brand       string
	Size        string
	Confidence  float64
	Photos      []string
}
