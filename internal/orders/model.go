package orders

import "time"

// Origin is the channel that produced an order attempt.
type Origin string

const (
	OriginQuick   Origin = "QUICK"
	OriginLead    Origin = "LEAD"
	OriginOffline Origin = "OFFLINE"
)

// Valid reports whether the origin is a known channel.
func (o Origin) Valid() bool {
	switch o {
	case OriginQuick, OriginLead, OriginOffline:
		return true
	}
	return false
}

// Status is the recorded outcome of pushing the order to the downstream ERP.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Valid reports whether the status is a known outcome.
func (s Status) Valid() bool {
	return s == StatusSuccess || s == StatusError
}

// OrderAttempt is one recorded submission attempt. Wire field names follow
// the pedidos_fdv table the sales-force clients already consume.
type OrderAttempt struct {
	ID            int64        `json:"ID"`
	CompanyID     int64        `json:"ID_EMPRESA"`
	Origin        Origin       `json:"ORIGEM"`
	LeadCode      *int64       `json:"CODLEAD"`
	Payload       *Payload     `json:"CORPO_JSON"`
	Status        Status       `json:"STATUS"`
	ERPOrderRef   *int64       `json:"NUNOTA"`
	Error         *ErrorDetail `json:"ERRO"`
	Attempts      int          `json:"TENTATIVAS"`
	UserID        int64        `json:"CODUSUARIO"`
	UserName      string       `json:"NOME_USUARIO"`
	CreatedAt     time.Time    `json:"DATA_CRIACAO"`
	LastAttemptAt *time.Time   `json:"DATA_ULTIMA_TENTATIVA"`
}
