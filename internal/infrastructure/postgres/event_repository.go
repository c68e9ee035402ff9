package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	"github.com/jhoicas/Bienestar-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
// Las fechas se guardan como DATE (día calendario, sin hora).
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador de persistencia para eventos. Pasar pool o tx.
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// selectEvents une el nombre del proveedor asignado para los modelos de lectura.
const selectEvents = `
	SELECT e.id, e.company_name, e.event_name, e.event_type, e.location, e.proposed_dates,
	       e.status, e.confirmed_date, e.remarks, e.created_by, e.assigned_vendor,
	       COALESCE(v.vendor_name, ''), e.created_at, e.updated_at
	FROM events e
	LEFT JOIN users v ON v.id = e.assigned_vendor`

// Create persiste un evento nuevo.
func (r *EventRepo) Create(ctx context.Context, e *entity.Event) error {
	query := `
		INSERT INTO events (id, company_name, event_name, event_type, location, proposed_dates,
		                    status, confirmed_date, remarks, created_by, assigned_vendor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyName, e.EventName, e.EventType, e.Location, e.ProposedDates,
		e.Status, e.ConfirmedDate, e.Remarks, e.CreatedBy, e.AssignedVendor, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *EventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	if !validID(id) {
		return nil, nil
	}
	e, err := scanEvent(r.q.QueryRow(ctx, selectEvents+` WHERE e.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// ListByCompany lista los eventos de una empresa, más recientes primero.
func (r *EventRepo) ListByCompany(ctx context.Context, companyName string) ([]*entity.Event, error) {
	return r.list(ctx, selectEvents+` WHERE e.company_name = $1 ORDER BY e.created_at DESC`, companyName)
}

// ListByVendor lista los eventos asignados a un proveedor, más recientes primero.
func (r *EventRepo) ListByVendor(ctx context.Context, vendorID string) ([]*entity.Event, error) {
	if !validID(vendorID) {
		return nil, nil
	}
	return r.list(ctx, selectEvents+` WHERE e.assigned_vendor = $1 ORDER BY e.created_at DESC`, vendorID)
}

// Decide escribe el nuevo estado en una sola sentencia condicionada a status = 'Pending' y al
// proveedor asignado. Dos decisiones concurrentes se serializan en el lock de fila: la segunda
// re-evalúa el WHERE sobre la fila ya actualizada y no afecta filas.
// assigned_vendor nunca se incluye en el SET.
func (r *EventRepo) Decide(ctx context.Context, next *entity.Event, vendorID string) (bool, error) {
	if !validID(next.ID) || !validID(vendorID) {
		return false, nil
	}
	query := `
		UPDATE events
		SET status = $3, confirmed_date = $4, remarks = $5, updated_at = $6
		WHERE id = $1 AND assigned_vendor = $2 AND status = $7`
	tag, err := r.q.Exec(ctx, query,
		next.ID, vendorID, next.Status, next.ConfirmedDate, next.Remarks, next.UpdatedAt, entity.StatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("decide event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *EventRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Event, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var (
		e         entity.Event
		confirmed *time.Time
	)
	if err := row.Scan(
		&e.ID, &e.CompanyName, &e.EventName, &e.EventType, &e.Location, &e.ProposedDates,
		&e.Status, &confirmed, &e.Remarks, &e.CreatedBy, &e.AssignedVendor,
		&e.VendorName, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if confirmed != nil {
		c := confirmed.UTC()
		e.ConfirmedDate = &c
	}
	for i, d := range e.ProposedDates {
		e.ProposedDates[i] = d.UTC()
	}
	return &e, nil
}
