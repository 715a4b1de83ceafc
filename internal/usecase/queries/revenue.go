package queries

import (
	"context"
	"math"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRevenueLotNotFound  = errs.New("parking lot not found")
	ErrRevenueAccessDenied = errs.New("not allowed to view revenue for this lot")
	ErrInvalidRevenueMonth = errs.New("invalid revenue month")
)

type RevenueQueries interface {
	MonthlyRevenue(ctx context.Context, actorID uuid.UUID, actorRole user.Role, lotID uuid.UUID, year, month int) (*RevenueView, error)
}

type RevenueReadStore interface {
	LotOwner(ctx context.Context, lotID uuid.UUID) (uuid.UUID, error)
	// Reservation revenue keys on creation time, not slot time.
	CompletedReservationPrices(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]float64, error)
	CompletedSessionCharges(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]SessionCharge, error)
	SubscriptionPrices(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]float64, error)
}

type revenueQueriesImpl struct {
	reads RevenueReadStore
	loc   *time.Location
}

func NewRevenueQueries(reads RevenueReadStore, loc *time.Location) RevenueQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &revenueQueriesImpl{reads: reads, loc: loc}
}

func (q *revenueQueriesImpl) MonthlyRevenue(ctx context.Context, actorID uuid.UUID, actorRole user.Role, lotID uuid.UUID, year, month int) (*RevenueView, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidRevenueMonth
	}

	ownerID, err := q.reads.LotOwner(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRevenueLotNotFound)
		}
		return nil, errs.Wrap(err, "failed to load lot owner")
	}
	if actorRole != user.RoleAdmin && ownerID != actorID {
		return nil, ErrRevenueAccessDenied
	}

	// Calendar month boundaries in the lot operator's timezone.
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, q.loc)
	to := from.AddDate(0, 1, 0)

	resPrices, err := q.reads.CompletedReservationPrices(ctx, lotID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to collect reservation revenue")
	}
	sessCharges, err := q.reads.CompletedSessionCharges(ctx, lotID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to collect session revenue")
	}
	subPrices, err := q.reads.SubscriptionPrices(ctx, lotID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to collect subscription revenue")
	}

	var resTotal, sessTotal, subTotal float64
	for _, p := range resPrices {
		resTotal += p
	}
	for _, c := range sessCharges {
		sessTotal += c.FinalPrice + c.PenaltyAmount
	}
	for _, p := range subPrices {
		subTotal += p
	}

	return &RevenueView{
		LotID:               lotID,
		Year:                year,
		Month:               month,
		ReservationRevenue:  round2(resTotal),
		SessionRevenue:      round2(sessTotal),
		SubscriptionRevenue: round2(subTotal),
		Total:               round2(resTotal + sessTotal + subTotal),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
