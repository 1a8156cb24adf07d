package orders

import (
	"bytes"
	"encoding/json"
)

// Payload is the embedded order body (CORPO_JSON). Clients have written it
// both as a JSON document and as a JSON string containing an encoded
// document, so normalization happens exactly once, here, when the value
// crosses the store boundary. A string whose content is not valid JSON is
// kept verbatim and reported as malformed instead of failing the read.
type Payload struct {
	doc json.RawMessage
	raw string
}

// NewPayload wraps an already-structured document.
func NewPayload(doc json.RawMessage) *Payload {
	return &Payload{doc: append(json.RawMessage(nil), doc...)}
}

// UnmarshalJSON accepts either a document or an encoded-string document.
func (p *Payload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = Payload{}
		return nil
	}
	if trimmed[0] == '"' {
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return err
		}
		inner := []byte(encoded)
		if json.Valid(inner) && len(bytes.TrimSpace(inner)) > 0 {
			*p = Payload{doc: append(json.RawMessage(nil), inner...)}
			return nil
		}
		*p = Payload{raw: encoded}
		return nil
	}
	*p = Payload{doc: append(json.RawMessage(nil), trimmed...)}
	return nil
}

// MarshalJSON returns the normalized document, or the original string when
// the content could not be decoded.
func (p *Payload) MarshalJSON() ([]byte, error) {
	if p.doc != nil {
		return p.doc, nil
	}
	return json.Marshal(p.raw)
}

// Valid reports whether the payload holds a decodable document.
func (p *Payload) Valid() bool {
	return p != nil && p.doc != nil
}

// Document returns the normalized order body.
func (p *Payload) Document() (json.RawMessage, bool) {
	if !p.Valid() {
		return nil, false
	}
	return p.doc, true
}

// PartnerName extracts the partner display name from the payload header:
// the company legal name (RAZAOSOCIAL) when present, else the partner
// display name (NOMEPARC), else empty.
func (p *Payload) PartnerName() string {
	if !p.Valid() {
		return ""
	}
	var body struct {
		Header struct {
			LegalName   string `json:"RAZAOSOCIAL"`
			DisplayName string `json:"NOMEPARC"`
		} `json:"cabecalho"`
	}
	if err := json.Unmarshal(p.doc, &body); err != nil {
		return ""
	}
	if body.Header.LegalName != "" {
		return body.Header.LegalName
	}
	return body.Header.DisplayName
}
