package analysis

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lucidlog-backend/application/ports"
	"lucidlog-backend/domain/core/entities"
	"lucidlog-backend/domain/core/valueobjects"
	"lucidlog-backend/domain/events"
	pkgerrors "lucidlog-backend/pkg/errors"
	"lucidlog-backend/pkg/observability"
)

// RunOptions are the per-request knobs of an analysis run
type RunOptions struct {
	// WindowDays is the snapshot window length; zero selects the default.
	WindowDays int
	// Refresh bypasses the persisted-pattern cache check.
	Refresh bool
}

// Engine orchestrates a full analysis run: cache check, snapshot fetch,
// scatter/gather across the analyzers, suggestion merge, ranking,
// persistence. It is constructed once at process start and shared; it
// holds no per-run state.
type Engine struct {
	entries   ports.EntryReader
	patterns  ports.PatternRepository
	suggester ports.SuggestionService
	eventBus  ports.EventBus
	metrics   *observability.Metrics
	tracer    *observability.Tracer
	logger    *zap.Logger
	opts      Options

	frequency *FrequencyAnalyzer
	temporal  *TemporalAnalyzer
	evolution *ThemeEvolutionAnalyzer
	lucidity  *LucidityTriggerDetector
}

// NewEngine creates the analysis engine. suggester, eventBus, metrics,
// and tracer may be nil; the engine degrades to local-only analysis
// without them.
func NewEngine(
	entries ports.EntryReader,
	patterns ports.PatternRepository,
	suggester ports.SuggestionService,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
	opts Options,
) *Engine {
	return &Engine{
		entries:   entries,
		patterns:  patterns,
		suggester: suggester,
		eventBus:  eventBus,
		metrics:   metrics,
		tracer:    tracer,
		logger:    logger,
		opts:      opts,
		frequency: NewFrequencyAnalyzer(opts),
		temporal:  NewTemporalAnalyzer(opts),
		evolution: NewThemeEvolutionAnalyzer(opts),
		lucidity:  NewLucidityTriggerDetector(opts),
	}
}

// AnalyzePatterns runs one analysis for a user. With Refresh false it
// first tries the persisted patterns; otherwise it recomputes from a
// fresh snapshot and upserts the results. A snapshot below the minimum
// size yields an empty list and no error, and an unexpected panic inside
// the run is recovered into the same safe empty result so consuming
// surfaces stay functional.
func (e *Engine) AnalyzePatterns(ctx context.Context, userID string, run RunOptions) (result []*entities.Pattern, err error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}

	window, werr := valueobjects.NewAnalysisWindow(run.WindowDays, time.Now())
	if werr != nil {
		return nil, pkgerrors.NewValidationError(werr.Error())
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Analysis run panicked, returning empty result",
				zap.String("userID", userID),
				zap.Any("panic", r),
			)
			result, err = []*entities.Pattern{}, nil
		}
	}()

	if !run.Refresh {
		if cached, ok := e.cachedPatterns(ctx, userID, window); ok {
			e.logger.Debug("Returning cached patterns",
				zap.String("userID", userID),
				zap.Int("count", len(cached)),
			)
			if e.metrics != nil {
				e.metrics.RecordAnalysisRun(ctx, true, time.Since(start), len(cached))
			}
			return cached, nil
		}
	}

	result, err = e.compute(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	if e.metrics != nil {
		e.metrics.RecordAnalysisRun(ctx, false, time.Since(start), len(result))
	}
	return result, nil
}

// cachedPatterns returns the persisted active patterns when at least one
// still has its last occurrence inside the requested window. A repository
// failure here degrades to a recompute instead of failing the request.
func (e *Engine) cachedPatterns(ctx context.Context, userID string, window valueobjects.AnalysisWindow) ([]*entities.Pattern, bool) {
	persisted, err := e.patterns.FindActiveByUser(ctx, userID)
	if err != nil {
		e.logger.Warn("Cache lookup failed, recomputing",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, false
	}

	fresh := persisted[:0]
	for _, p := range persisted {
		if window.Contains(p.LastOccurrence()) {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) == 0 {
		return nil, false
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		if fresh[i].Confidence() != fresh[j].Confidence() {
			return fresh[i].Confidence() > fresh[j].Confidence()
		}
		if fresh[i].Name() != fresh[j].Name() {
			return fresh[i].Name() < fresh[j].Name()
		}
		return fresh[i].Type() < fresh[j].Type()
	})
	if len(fresh) > e.opts.MaxPatterns {
		fresh = fresh[:e.opts.MaxPatterns]
	}
	return fresh, true
}

func (e *Engine) compute(ctx context.Context, userID string, window valueobjects.AnalysisWindow) ([]*entities.Pattern, error) {
	snapshot, err := e.fetchSnapshot(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	if len(snapshot) < e.opts.MinEntries {
		e.logger.Info("Snapshot too small for analysis",
			zap.String("userID", userID),
			zap.Int("entries", len(snapshot)),
			zap.Int("minimum", e.opts.MinEntries),
		)
		return []*entities.Pattern{}, nil
	}

	pool := e.scatterGather(ctx, userID, snapshot, window.Days())
	result := dedupeAndRank(pool, e.opts.MaxPatterns)

	e.persist(ctx, result)
	e.publish(ctx, userID, window.Days(), result)

	e.logger.Info("Analysis run complete",
		zap.String("userID", userID),
		zap.Int("entries", len(snapshot)),
		zap.Int("candidates", len(pool)),
		zap.Int("patterns", len(result)),
	)
	return result, nil
}

func (e *Engine) fetchSnapshot(ctx context.Context, userID string, window valueobjects.AnalysisWindow) ([]*entities.Entry, error) {
	var snapshot []*entities.Entry
	fetch := func(ctx context.Context) error {
		var err error
		snapshot, err = e.entries.ListEntries(ctx, userID, window.Start(), window.End())
		return err
	}

	var err error
	if e.tracer != nil {
		err = e.tracer.TraceFunction(ctx, "analysis.fetch_snapshot", fetch)
	} else {
		err = fetch(ctx)
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list entries", err)
	}
	return snapshot, nil
}

// scatterGather runs the four analyzers and the suggestion call
// concurrently over the immutable snapshot. Each analyzer writes into its
// own slot and is guarded against panics, so one analyzer's fault degrades
// the batch instead of voiding it; the merge order is fixed regardless of
// completion order.
func (e *Engine) scatterGather(ctx context.Context, userID string, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	analyzers := []struct {
		name string
		run  func() []*entities.Pattern
	}{
		{"frequency", func() []*entities.Pattern { return e.frequency.Analyze(userID, snapshot, windowDays) }},
		{"temporal", func() []*entities.Pattern { return e.temporal.Analyze(userID, snapshot, windowDays) }},
		{"evolution", func() []*entities.Pattern { return e.evolution.Analyze(userID, snapshot, windowDays) }},
		{"lucidity", func() []*entities.Pattern { return e.lucidity.Analyze(userID, snapshot, windowDays) }},
	}

	slots := make([][]*entities.Pattern, len(analyzers)+1)
	g, gctx := errgroup.WithContext(ctx)

	for i, a := range analyzers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error("Analyzer panicked, dropping its candidates",
						zap.String("analyzer", a.name),
						zap.Any("panic", r),
					)
				}
			}()
			slots[i] = a.run()
			return nil
		})
	}

	g.Go(func() error {
		slots[len(analyzers)] = e.suggest(gctx, userID, snapshot, windowDays)
		return nil
	})

	// Analyzer errors never propagate, only panics are swallowed above.
	_ = g.Wait()

	var pool []*entities.Pattern
	for _, slot := range slots {
		pool = append(pool, slot...)
	}
	return pool
}

// suggest asks the generative-text collaborator for candidate patterns.
// Any failure, timeout, or malformed response degrades to an empty list.
func (e *Engine) suggest(ctx context.Context, userID string, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	if e.suggester == nil || len(snapshot) < e.opts.SuggestionMinEntries {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Suggestion merge panicked", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, e.opts.SuggestionTimeout)
	defer cancel()

	var candidates []ports.PatternCandidate
	call := func(ctx context.Context) error {
		var err error
		candidates, err = e.suggester.SuggestPatterns(ctx, summarizeEntries(snapshot, e.opts))
		return err
	}

	var err error
	if e.tracer != nil {
		err = e.tracer.TraceFunction(ctx, "analysis.suggest", call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		e.logger.Warn("Suggestion service unavailable, continuing with local analyzers",
			zap.String("userID", userID),
			zap.Error(err),
		)
		if e.metrics != nil {
			e.metrics.RecordSuggestionFailure(ctx)
		}
		return nil
	}

	return mergeCandidates(userID, candidates, snapshot, windowDays)
}

// persist upserts each pattern independently; one write's failure does
// not block the others (partial-success semantics).
func (e *Engine) persist(ctx context.Context, patterns []*entities.Pattern) {
	for _, pattern := range patterns {
		if err := e.patterns.Upsert(ctx, pattern); err != nil {
			e.logger.Error("Pattern upsert failed",
				zap.String("type", string(pattern.Type())),
				zap.String("name", pattern.Name()),
				zap.Error(err),
			)
			if e.metrics != nil {
				e.metrics.RecordUpsertFailure(ctx)
			}
		}
	}
}

func (e *Engine) publish(ctx context.Context, userID string, windowDays int, patterns []*entities.Pattern) {
	if e.eventBus == nil {
		return
	}

	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name()
	}

	event := events.NewPatternsComputed(userID, windowDays, len(patterns), names)
	if err := e.eventBus.Publish(ctx, event); err != nil {
		e.logger.Warn("Failed to publish patterns.computed event",
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
}
