package orders

import "encoding/json"

// DuplicationError reports why a record cannot seed a new order. It never
// reaches the network; callers surface it directly to the user.
type DuplicationError struct {
	Reason string
}

func (e *DuplicationError) Error() string {
	return "duplicate order: " + e.Reason
}

// DraftOrder is the verbatim historical payload used to pre-populate a new
// order-creation flow. No field is renamed or remapped; the user re-edits
// the draft before resubmission.
type DraftOrder struct {
	Body json.RawMessage `json:"body"`
}

// PrepareDuplicate extracts the embedded order body from a historical
// record. It performs no side effects: recording the duplicated order is a
// separate, later ingestion call.
func PrepareDuplicate(rec OrderAttempt) (*DraftOrder, error) {
	if rec.Payload == nil {
		return nil, &DuplicationError{Reason: "payload unavailable"}
	}
	doc, ok := rec.Payload.Document()
	if !ok {
		return nil, &DuplicationError{Reason: "malformed payload"}
	}
	return &DraftOrder{Body: doc}, nil
}
