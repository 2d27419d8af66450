package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// defaultLookbackDays bounds the cross-period state when the config
// does not set one.
const defaultLookbackDays = 2

// SnapshotStore defines the database operations needed to build an
// input snapshot for one period.
type SnapshotStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetSlots(ctx context.Context, period string) ([]db.DutySlot, error)
	GetAbsences(ctx context.Context, period string) ([]db.Absence, error)
	GetLocks(ctx context.Context, period string) ([]db.Lock, error)
	GetLookback(ctx context.Context, period string, days int) ([]db.LookbackAssignment, error)
	GetPlanningState(ctx context.Context, period string) (db.PlanningState, error)
}

// BuildSnapshot assembles the normalized solver input for one period.
// The snapshot carries the period's lock version so a later commit can
// detect lock edits made while the solver was running.
func BuildSnapshot(
	ctx context.Context,
	store SnapshotStore,
	cfg *config.Config,
	logger *zap.Logger,
	period roster.Period,
) (*roster.Snapshot, error) {
	periodKey := period.String()

	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	logger.Debug("Fetched employees", zap.Int("count", len(employees)))

	slots, err := store.GetSlots(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duty slots: %w", err)
	}
	logger.Debug("Fetched duty slots", zap.Int("count", len(slots)))

	absences, err := store.GetAbsences(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch absences: %w", err)
	}

	locks, err := store.GetLocks(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locks: %w", err)
	}

	lookbackDays := cfg.LookbackDays
	if lookbackDays <= 0 {
		lookbackDays = defaultLookbackDays
	}
	lookback, err := store.GetLookback(ctx, periodKey, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lookback assignments: %w", err)
	}

	state, err := store.GetPlanningState(ctx, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch planning state: %w", err)
	}

	closures, err := cfg.ExpandClosures(period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to expand closure rules: %w", err)
	}

	snapshot := &roster.Snapshot{
		Period:      period,
		ClosedDates: closures,
		LockVersion: state.LockVersion,
	}

	for _, e := range employees {
		emp, err := convertEmployee(e)
		if err != nil {
			return nil, err
		}
		snapshot.Employees = append(snapshot.Employees, emp)
	}

	for _, s := range slots {
		slot, err := convertSlot(s)
		if err != nil {
			return nil, err
		}
		snapshot.Slots = append(snapshot.Slots, slot)
	}

	for _, a := range absences {
		absence, err := convertAbsence(a)
		if err != nil {
			return nil, err
		}
		snapshot.Absences = append(snapshot.Absences, absence)
	}

	for _, l := range locks {
		snapshot.Locks = append(snapshot.Locks, roster.Lock{
			SlotID:     l.SlotID,
			EmployeeID: l.EmployeeID,
		})
	}

	for _, l := range lookback {
		date, err := parseDate(l.Date, "lookback assignment")
		if err != nil {
			return nil, err
		}
		snapshot.Lookback = append(snapshot.Lookback, roster.PriorAssignment{
			EmployeeID: l.EmployeeID,
			Date:       date,
			Area:       l.Area,
		})
	}

	return snapshot, nil
}

func convertEmployee(e db.Employee) (roster.Employee, error) {
	emp := roster.Employee{
		ID:             e.ID,
		Name:           e.Name,
		RoleGroup:      e.RoleGroup,
		Active:         e.Active,
		MaxPerMonth:    e.MaxPerMonth,
		MaxPerWeek:     e.MaxPerWeek,
		MaxPerWeekend:  e.MaxPerWeekend,
		ForbiddenAreas: e.ForbiddenAreas,
		PreferredAreas: e.PreferredAreas,
		Skills:         e.Skills,
		FallbackFor:    e.FallbackFor,
	}
	for _, wd := range e.BannedWeekdays {
		emp.BannedWeekdays = append(emp.BannedWeekdays, time.Weekday(wd))
	}
	for _, d := range e.BannedDates {
		date, err := parseDate(d, fmt.Sprintf("banned date of employee %s", e.ID))
		if err != nil {
			return roster.Employee{}, err
		}
		emp.BannedDates = append(emp.BannedDates, date)
	}
	return emp, nil
}

func convertSlot(s db.DutySlot) (roster.DutySlot, error) {
	date, err := parseDate(s.Date, fmt.Sprintf("slot %s", s.ID))
	if err != nil {
		return roster.DutySlot{}, err
	}
	return roster.DutySlot{
		ID:             s.ID,
		Date:           date,
		ServiceType:    s.ServiceType,
		RoleGroup:      s.RoleGroup,
		RolePriority:   s.RolePriority,
		Mandatory:      s.Mandatory,
		Area:           s.Area,
		BlocksPublish:  s.BlocksPublish,
		RequiredSkills: s.RequiredSkills,
		OptionalSkills: s.OptionalSkills,
	}, nil
}

func convertAbsence(a db.Absence) (roster.Absence, error) {
	from, err := parseDate(a.FromDate, fmt.Sprintf("absence %s", a.ID))
	if err != nil {
		return roster.Absence{}, err
	}
	to, err := parseDate(a.ToDate, fmt.Sprintf("absence %s", a.ID))
	if err != nil {
		return roster.Absence{}, err
	}
	return roster.Absence{
		EmployeeID: a.EmployeeID,
		From:       from,
		To:         to,
		LongTerm:   a.LongTerm,
	}, nil
}

func parseDate(s, what string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q on %s: %w", s, what, err)
	}
	return date, nil
}
