package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/model"
)

// SendLogFilter narrows the send-log listing. Zero values mean "no filter";
// Start/End bound sent_at inclusively.
type SendLogFilter struct {
	ServiceType model.ServiceType
	Status      string
	Start       *time.Time
	End         *time.Time
	Page        int
	Limit       int
}

// SendLogWithCustomer joins the weakly referenced customer onto a log row.
// Name and phone are empty when the customer has since been deleted.
type SendLogWithCustomer struct {
	model.SendLog
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// SendLogRepositoryInterface defines methods used by services. Send logs are
// append-only: there is deliberately no update or delete.
type SendLogRepositoryInterface interface {
	Create(ctx context.Context, l *model.SendLog) error
	ListByWindow(ctx context.Context, start, end *time.Time) ([]model.SendLog, error)
	List(ctx context.Context, f SendLogFilter) ([]SendLogWithCustomer, int, error)
}

// SendLogRepository is the Postgres implementation.
type SendLogRepository struct {
	DB *sql.DB
}

// Create appends one send log. The caller assigns the UUID.
func (r *SendLogRepository) Create(ctx context.Context, l *model.SendLog) error {
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.SentAt.IsZero() {
		l.SentAt = now
	}

	query := `
        INSERT INTO send_logs (id, customer_id, service_type, message_text, status, sent_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.CustomerID, string(l.ServiceType), l.MessageText, l.Status, l.SentAt, l.CreatedAt, l.UpdatedAt,
	)
	return err
}

// ListByWindow fetches every log whose sent_at falls inside the inclusive
// window. Either bound may be nil; both nil scans the full table. Rows come
// back oldest first so callers aggregate in event order.
func (r *SendLogRepository) ListByWindow(ctx context.Context, start, end *time.Time) ([]model.SendLog, error) {
	query := `
        SELECT id, customer_id, service_type, message_text, status, sent_at, created_at, updated_at
        FROM send_logs
    `
	where, args := windowClause(start, end, nil)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY sent_at"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []model.SendLog{}
	for rows.Next() {
		var l model.SendLog
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.ServiceType, &l.MessageText, &l.Status, &l.SentAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// List fetches a filtered, paginated page of logs with customer name and
// phone joined in, newest first, plus the total row count for the filter.
func (r *SendLogRepository) List(ctx context.Context, f SendLogFilter) ([]SendLogWithCustomer, int, error) {
	conds := []string{}
	args := []any{}

	if f.ServiceType != "" {
		args = append(args, string(f.ServiceType))
		conds = append(conds, fmt.Sprintf("l.service_type = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("l.status = $%d", len(args)))
	}
	if f.Start != nil {
		args = append(args, *f.Start)
		conds = append(conds, fmt.Sprintf("l.sent_at >= $%d", len(args)))
	}
	if f.End != nil {
		args = append(args, *f.End)
		conds = append(conds, fmt.Sprintf("l.sent_at <= $%d", len(args)))
	}

	where := ""
	for i, c := range conds {
		if i == 0 {
			where = " WHERE " + c
		} else {
			where += " AND " + c
		}
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM send_logs l` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := `
        SELECT l.id, l.customer_id, l.service_type, l.message_text, l.status, l.sent_at, l.created_at, l.updated_at,
               COALESCE(c.name, ''), COALESCE(c.phone, '')
        FROM send_logs l
        LEFT JOIN customers c ON c.id = l.customer_id` + where + fmt.Sprintf(`
        ORDER BY l.sent_at DESC
        LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := []SendLogWithCustomer{}
	for rows.Next() {
		var l SendLogWithCustomer
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.ServiceType, &l.MessageText, &l.Status, &l.SentAt, &l.CreatedAt, &l.UpdatedAt,
			&l.CustomerName, &l.CustomerPhone); err != nil {
			return nil, 0, err
		}
		logs = append(logs, l)
	}
	return logs, total, rows.Err()
}

func windowClause(start, end *time.Time, args []any) (string, []any) {
	clause := ""
	if start != nil {
		args = append(args, *start)
		clause = fmt.Sprintf("sent_at >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		cond := fmt.Sprintf("sent_at <= $%d", len(args))
		if clause != "" {
			clause += " AND " + cond
		} else {
			clause = cond
		}
	}
	return clause, args
}
