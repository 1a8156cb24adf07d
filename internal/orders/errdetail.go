package orders

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ErrorKind tags the two representations the ERRO column arrives in.
type ErrorKind int

const (
	// ErrorKindRaw is an opaque string recorded by an older client.
	ErrorKindRaw ErrorKind = iota
	// ErrorKindStructured carries message, status code and timestamp.
	ErrorKindStructured
)

// ErrorDetail is the recorded ERP failure. The column holds either a raw
// string or a structured document; the variant is resolved once here, never
// re-sniffed at render time. The original value is kept so reads return the
// record verbatim.
type ErrorDetail struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Timestamp  string

	raw json.RawMessage
}

type structuredError struct {
	Message    string      `json:"mensagem"`
	StatusCode json.Number `json:"statusCode,omitempty"`
	Timestamp  string      `json:"timestamp,omitempty"`
}

// NewRawError wraps a plain string detail.
func NewRawError(message string) *ErrorDetail {
	return &ErrorDetail{Kind: ErrorKindRaw, Message: message}
}

// UnmarshalJSON accepts a string, an encoded-string document, or a document.
// Anything undecodable is wrapped as a raw message rather than failing the
// whole read.
func (e *ErrorDetail) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*e = ErrorDetail{}
		return nil
	}

	preserved := append(json.RawMessage(nil), trimmed...)

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*e = ErrorDetail{Kind: ErrorKindRaw, Message: string(trimmed), raw: preserved}
			return nil
		}
		inner := bytes.TrimSpace([]byte(s))
		if len(inner) > 0 && inner[0] == '{' {
			if st, ok := decodeStructured(inner); ok {
				*e = st
				e.raw = preserved
				return nil
			}
		}
		*e = ErrorDetail{Kind: ErrorKindRaw, Message: s, raw: preserved}
		return nil
	}

	if trimmed[0] == '{' {
		if st, ok := decodeStructured(trimmed); ok {
			*e = st
			e.raw = preserved
			return nil
		}
	}

	*e = ErrorDetail{Kind: ErrorKindRaw, Message: string(trimmed), raw: preserved}
	return nil
}

// MarshalJSON returns the stored value verbatim when it came from the
// store, otherwise re-encodes the resolved variant.
func (e *ErrorDetail) MarshalJSON() ([]byte, error) {
	if e.raw != nil {
		return e.raw, nil
	}
	if e.Kind == ErrorKindRaw {
		return json.Marshal(e.Message)
	}
	st := structuredError{Message: e.Message, Timestamp: e.Timestamp}
	if e.StatusCode != 0 {
		st.StatusCode = json.Number(strconv.Itoa(e.StatusCode))
	}
	return json.Marshal(st)
}

func decodeStructured(data []byte) (ErrorDetail, bool) {
	var st structuredError
	if err := json.Unmarshal(data, &st); err != nil {
		return ErrorDetail{}, false
	}
	detail := ErrorDetail{
		Kind:      ErrorKindStructured,
		Message:   st.Message,
		Timestamp: st.Timestamp,
	}
	if code, err := st.StatusCode.Int64(); err == nil {
		detail.StatusCode = int(code)
	}
	return detail, true
}
