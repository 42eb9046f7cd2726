package llmstxt

// OutcomeStatus is the result of handling one crawled page.
type OutcomeStatus string

// OutcomeStatus constants.
const (
	OutcomeSaved   OutcomeStatus = "saved"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

// PageOutcome records what happened to one crawled page.
type PageOutcome struct {
	URL    string
	Slug   string
	Status OutcomeStatus
	Reason SkipReason
	Hash   string
	Bytes  int
	Err    error
}

// Collision records two URLs that mapped to the same slug.
// The later URL replaced the earlier one's document.
type Collision struct {
	Slug     string
	Previous string
	URL      string
}

// Report summarizes a full build run.
type Report struct {
	RunID      string
	Outcomes   []PageOutcome
	Collisions []Collision
	Combine    *CombineResult
	Snapshot   *Snapshot
	Published  int
	Version    string
	Tokens     int

	// Change counts against the previous run. Zero when there is no ledger.
	New       int
	Changed   int
	Unchanged int
}

// Count returns the number of pages with the given status.
func (r *Report) Count(status OutcomeStatus) int {
	var n int
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// SkipCounts returns the number of skipped pages per reason.
func (r *Report) SkipCounts() map[SkipReason]int {
	counts := make(map[SkipReason]int)
	for _, o := range r.Outcomes {
		if o.Status == OutcomeSkipped {
			counts[o.Reason]++
		}
	}
	return counts
}
