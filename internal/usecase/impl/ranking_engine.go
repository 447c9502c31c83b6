package impl

import (
	"context"
	"math"
	"sort"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	discoveryModeRadius = "radius"
	discoveryModeBox    = "box"
)

// rankingEngine implements usecase.RankingEngine.
//
//	score = boostFactor / max(distanceMiles, epsilon)
//
// Higher scores first, ties broken by the most recent activity. The geo index caps a
// query at its nearest rows, so boosted entities are fetched by a second query and
// merged in; an unboosted entity past the cap can never outscore the ones inside it.
type rankingEngine struct {
	geoIndex usecase.GeoIndex
	boosts   usecase.BoostLedger
	limit    int
	epsilon  float64
	metrics  service.EngineMetrics
	now      func() time.Time
}

// RankingEngineParams holds dependencies for RankingEngine, injected by Fx.
type RankingEngineParams struct {
	fx.In

	GeoIndex usecase.GeoIndex
	Boosts   usecase.BoostLedger
	Config   *config.Config
	Metrics  service.EngineMetrics `optional:"true"`
}

// NewRankingEngine is the constructor for rankingEngine.
func NewRankingEngine(params RankingEngineParams) usecase.RankingEngine {
	engineCfg := engineConfig(params.Config)

	return &rankingEngine{
		geoIndex: params.GeoIndex,
		boosts:   params.Boosts,
		limit:    engineCfg.RankingLimit,
		epsilon:  engineCfg.DistanceEpsilonMiles,
		metrics:  metricsOrNop(params.Metrics),
		now:      utcNow,
	}
}

// Rank ranks candidates within radiusMiles of center.
func (e *rankingEngine) Rank(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter, requester *uuid.UUID) ([]*usecase.RankedCandidate, error) {
	started := time.Now()

	candidates, err := e.withBoosted(excludeRequester(filter, requester), func(f entity.GeoFilter) ([]*entity.Candidate, error) {
		return e.geoIndex.FindWithinRadius(ctx, center, radiusMiles, f)
	})
	if err != nil {
		return nil, err
	}

	ranked := e.rank(ctx, candidates, requester)
	e.metrics.ObserveDiscovery(discoveryModeRadius, len(ranked), time.Since(started))

	return ranked, nil
}

// RankWithinBox ranks candidates inside box, distances measured from its center.
func (e *rankingEngine) RankWithinBox(ctx context.Context, box geo.BoundingBox, filter entity.GeoFilter, requester *uuid.UUID) ([]*usecase.RankedCandidate, error) {
	started := time.Now()

	candidates, err := e.withBoosted(excludeRequester(filter, requester), func(f entity.GeoFilter) ([]*entity.Candidate, error) {
		return e.geoIndex.FindWithinBoundingBox(ctx, box, f)
	})
	if err != nil {
		return nil, err
	}

	ranked := e.rank(ctx, candidates, requester)
	e.metrics.ObserveDiscovery(discoveryModeBox, len(ranked), time.Since(started))

	return ranked, nil
}

// withBoosted runs find twice, once as given and once restricted to boosted entities,
// and returns the union.
func (e *rankingEngine) withBoosted(filter entity.GeoFilter, find func(entity.GeoFilter) ([]*entity.Candidate, error)) ([]*entity.Candidate, error) {
	candidates, err := find(filter)
	if err != nil {
		return nil, err
	}

	now := e.now()
	boostedFilter := filter
	boostedFilter.BoostedAt = &now

	boosted, err := find(boostedFilter)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(candidates))
	for _, c := range candidates {
		seen[c.EntityID] = struct{}{}
	}
	for _, c := range boosted {
		if _, ok := seen[c.EntityID]; ok {
			continue
		}
		seen[c.EntityID] = struct{}{}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

func (e *rankingEngine) rank(ctx context.Context, candidates []*entity.Candidate, requester *uuid.UUID) []*usecase.RankedCandidate {
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		if requester != nil && c.EntityID == *requester {
			continue
		}
		ids = append(ids, c.EntityID)
	}
	factors := e.boosts.EffectiveBoosts(ctx, ids)

	ranked := make([]*usecase.RankedCandidate, 0, len(ids))
	for _, c := range candidates {
		if requester != nil && c.EntityID == *requester {
			continue
		}

		factor, ok := factors[c.EntityID]
		if !ok {
			factor = entity.NoBoostFactor
		}

		ranked = append(ranked, &usecase.RankedCandidate{
			EntityID:      c.EntityID,
			EntityKind:    c.EntityKind,
			Location:      c.Location,
			DistanceMiles: c.DistanceMiles,
			BoostFactor:   factor,
			Score:         e.score(factor, c.DistanceMiles),
			LastActive:    c.LastActive,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].LastActive.After(ranked[j].LastActive)
	})

	if e.limit > 0 && len(ranked) > e.limit {
		ranked = ranked[:e.limit]
	}

	return ranked
}

// score ranks malformed distances last.
func (e *rankingEngine) score(factor, distanceMiles float64) float64 {
	if distanceMiles >= geo.MalformedDistance || math.IsNaN(distanceMiles) {
		return 0
	}

	return factor / math.Max(distanceMiles, e.epsilon)
}

func excludeRequester(filter entity.GeoFilter, requester *uuid.UUID) entity.GeoFilter {
	if requester == nil {
		return filter
	}

	exclude := make([]uuid.UUID, 0, len(filter.ExcludeIDs)+1)
	exclude = append(exclude, filter.ExcludeIDs...)
	filter.ExcludeIDs = append(exclude, *requester)

	return filter
}
