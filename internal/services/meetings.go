// Package services hosts the application services that sit between the
// HTTP handlers and the persistence adapter. Each service owns one
// concern and exposes context-aware methods returning canonical model
// types.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clovehq/momtrack/internal/collection"
	"github.com/clovehq/momtrack/internal/derive"
	"github.com/clovehq/momtrack/internal/model"
	"github.com/clovehq/momtrack/internal/normalize"
	"github.com/clovehq/momtrack/internal/store"
)

// upcomingLimit caps the dashboard's upcoming-meetings list.
const upcomingLimit = 5

// Dashboard is the aggregate view served to the landing screen. All of
// its sections are computed from the same snapshot of the collection.
type Dashboard struct {
	TotalMeetings    int                         `json:"totalMeetings"`
	TodaysMeetings   []model.Meeting             `json:"todaysMeetings"`
	UpcomingMeetings []model.Meeting             `json:"upcomingMeetings"`
	OverdueItems     []model.AnnotatedActionItem `json:"overdueItems"`
	PendingItems     []model.AnnotatedActionItem `json:"pendingItems"`
	Health           model.TaskHealth            `json:"health"`
}

// MeetingService materialises the live collection: persisted records
// merged over the seed set, then normalized. It recomputes from the
// store on every call rather than caching, matching the
// reload-on-change model of the persistence layer.
type MeetingService struct {
	store    store.Store
	pipeline *normalize.Pipeline
	seed     []model.RawMeeting
	clock    func() time.Time
	logger   zerolog.Logger
}

// NewMeetingService wires the service onto a store, a normalization
// pipeline, and the seed records merged under persisted data.
func NewMeetingService(s store.Store, p *normalize.Pipeline, seed []model.RawMeeting, logger zerolog.Logger) *MeetingService {
	return &MeetingService{
		store:    s,
		pipeline: p,
		seed:     seed,
		clock:    time.Now,
		logger:   logger.With().Str("service", "meetings").Logger(),
	}
}

// WithClock overrides the wall clock (used by tests).
func (svc *MeetingService) WithClock(clock func() time.Time) *MeetingService {
	svc.clock = clock
	return svc
}

// Collection returns the full normalized collection in merge order:
// seed records first, persisted-only records after, with persisted
// records overriding seed records that share an identifier.
func (svc *MeetingService) Collection(ctx context.Context) ([]model.Meeting, error) {
	persisted, err := svc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load persisted meetings: %w", err)
	}
	merged := collection.Merge(svc.seed, persisted)
	return svc.pipeline.NormalizeAll(merged, svc.clock()), nil
}

// Get returns one meeting by identifier or model.ErrNotFound.
func (svc *MeetingService) Get(ctx context.Context, id string) (*model.Meeting, error) {
	ms, err := svc.Collection(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ms {
		if ms[i].ID == id {
			return &ms[i], nil
		}
	}
	return nil, fmt.Errorf("meeting %q: %w", id, model.ErrNotFound)
}

// Upsert stores a raw record, assigning a local identifier and creation
// timestamp when absent, and returns the normalized result. An existing
// record with the same identifier is replaced wholesale.
func (svc *MeetingService) Upsert(ctx context.Context, rec model.RawMeeting) (*model.Meeting, error) {
	now := svc.clock()
	if rec.ID == "" {
		rec.ID = fmt.Sprintf("local-%d", now.UnixMilli())
	}
	if rec.CreatedAt == nil {
		ts := model.FlexString(now.UTC().Format(time.RFC3339))
		rec.CreatedAt = &ts
	}

	if err := svc.store.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	svc.logger.Info().Str("meetingId", rec.ID).Msg("meeting upserted")

	m := svc.pipeline.Normalize(rec, now)
	return &m, nil
}

// Dashboard computes the aggregate landing view from one snapshot.
func (svc *MeetingService) Dashboard(ctx context.Context) (*Dashboard, error) {
	ms, err := svc.Collection(ctx)
	if err != nil {
		return nil, err
	}
	now := svc.clock()

	upcoming := derive.UpcomingMeetings(ms, now)
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	return &Dashboard{
		TotalMeetings:    len(ms),
		TodaysMeetings:   derive.TodaysMeetings(ms, now),
		UpcomingMeetings: upcoming,
		OverdueItems:     derive.OverdueActionItems(ms, now),
		PendingItems:     derive.PendingActionItems(ms),
		Health:           derive.Health(ms, now),
	}, nil
}

// Months returns the collection partitioned into month buckets, most
// recent first.
func (svc *MeetingService) Months(ctx context.Context) ([]model.MonthBucket, error) {
	ms, err := svc.Collection(ctx)
	if err != nil {
		return nil, err
	}
	return derive.GroupByMonth(ms, svc.clock()), nil
}

// Month returns one bucket by its "YYYY-MM" key or model.ErrNotFound.
func (svc *MeetingService) Month(ctx context.Context, key string) (*model.MonthBucket, error) {
	buckets, err := svc.Months(ctx)
	if err != nil {
		return nil, err
	}
	for i := range buckets {
		if buckets[i].Key == key {
			return &buckets[i], nil
		}
	}
	return nil, fmt.Errorf("month %q: %w", key, model.ErrNotFound)
}

// Subscribe registers a collection-change callback and returns the
// matching unsubscribe function.
func (svc *MeetingService) Subscribe(fn func()) func() {
	return svc.store.Subscribe(fn)
}
