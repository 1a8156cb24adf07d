package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order attempt not found")
)

// Repository persists and reads order attempts. Records are append-only;
// there is no update or delete path.
type Repository interface {
	List(ctx context.Context, req ListOrdersRequest) ([]OrderAttempt, error)
	Get(ctx context.Context, id int64) (*OrderAttempt, error)
	Create(ctx context.Context, rec OrderAttempt) (int64, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const attemptColumns = `id, id_empresa, origem, codlead, corpo_json, status,
       nunota, erro, tentativas, codusuario, nome_usuario,
       data_criacao, data_ultima_tentativa`

func (r *repository) List(ctx context.Context, req ListOrdersRequest) ([]OrderAttempt, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	conditions = append(conditions, fmt.Sprintf("id_empresa = $%d", argPos))
	args = append(args, req.CompanyID)
	argPos++

	if req.Origin != nil {
		conditions = append(conditions, fmt.Sprintf("origem = $%d", argPos))
		args = append(args, string(*req.Origin))
		argPos++
	}
	if req.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, string(*req.Status))
		argPos++
	}

	whereClause := "WHERE " + conditions[0]
	for i := 1; i < len(conditions); i++ {
		whereClause += " AND " + conditions[i]
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM pedidos_fdv
		%s
		ORDER BY data_criacao DESC, id DESC
	`, attemptColumns, whereClause)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []OrderAttempt
	for rows.Next() {
		rec, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*OrderAttempt, error) {
	query := fmt.Sprintf("SELECT %s FROM pedidos_fdv WHERE id = $1", attemptColumns)
	rec, err := scanAttempt(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Create(ctx context.Context, rec OrderAttempt) (int64, error) {
	var leadCode, erpRef pgtype.Int8
	if rec.LeadCode != nil {
		leadCode = pgtype.Int8{Int64: *rec.LeadCode, Valid: true}
	}
	if rec.ERPOrderRef != nil {
		erpRef = pgtype.Int8{Int64: *rec.ERPOrderRef, Valid: true}
	}

	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return 0, fmt.Errorf("encode payload: %w", err)
	}

	var errDetail []byte
	if rec.Error != nil {
		errDetail, err = json.Marshal(rec.Error)
		if err != nil {
			return 0, fmt.Errorf("encode error detail: %w", err)
		}
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO pedidos_fdv (
			id_empresa, origem, codlead, corpo_json, status,
			nunota, erro, tentativas, codusuario, nome_usuario, data_criacao
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id
	`,
		rec.CompanyID, string(rec.Origin), leadCode, payload, string(rec.Status),
		erpRef, errDetail, rec.Attempts, rec.UserID, rec.UserName,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23502 not-null, 23514 check constraint: bad input, not a store fault.
			if pgErr.Code == "23502" || pgErr.Code == "23514" {
				return 0, fmt.Errorf("%w: %s", ErrValidation, pgErr.ConstraintName)
			}
		}
		return 0, err
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAttempt(row rowScanner) (OrderAttempt, error) {
	var rec OrderAttempt
	var leadCode, erpRef pgtype.Int8
	var payload, errDetail []byte
	var origin, status string
	var attempts int32
	var createdAt, lastAttemptAt pgtype.Timestamptz

	err := row.Scan(
		&rec.ID, &rec.CompanyID, &origin, &leadCode, &payload, &status,
		&erpRef, &errDetail, &attempts, &rec.UserID, &rec.UserName,
		&createdAt, &lastAttemptAt,
	)
	if err != nil {
		return OrderAttempt{}, err
	}

	rec.Origin = Origin(origin)
	rec.Status = Status(status)
	rec.Attempts = int(attempts)
	if leadCode.Valid {
		rec.LeadCode = &leadCode.Int64
	}
	if erpRef.Valid {
		rec.ERPOrderRef = &erpRef.Int64
	}
	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time
	}
	if lastAttemptAt.Valid {
		rec.LastAttemptAt = &lastAttemptAt.Time
	}
	if len(payload) > 0 {
		var p Payload
		if err := json.Unmarshal(payload, &p); err != nil {
			return OrderAttempt{}, fmt.Errorf("decode payload for record %d: %w", rec.ID, err)
		}
		rec.Payload = &p
	}
	if len(errDetail) > 0 {
		var e ErrorDetail
		if err := json.Unmarshal(errDetail, &e); err != nil {
			return OrderAttempt{}, fmt.Errorf("decode error detail for record %d: %w", rec.ID, err)
		}
		rec.Error = &e
	}

	return rec, nil
}
