package propagation

import "github.com/esteinig/netviewr/centrality"

// VoteWeights holds the per-channel coefficients applied to each vote
// cast by a labeled neighbor (spec.md §4.4). Mirrors
// original_source/src/label.rs's VoteWeights / Default impl.
type VoteWeights struct {
	Centrality float64
	Weight     float64
	AF         float64
	ANI        float64
	AAI        float64
}

// DefaultVoteWeights returns the weights used by the original
// implementation: similarity dominates (2.0), centrality and AF count
// once, ANI/AAI are off by default.
func DefaultVoteWeights() VoteWeights {
	return VoteWeights{
		Centrality: 1.0,
		Weight:     2.0,
		AF:         1.0,
		ANI:        0.0,
		AAI:        0.0,
	}
}

// TargetKind selects which nodes a propagation run updates.
type TargetKind int

const (
	// All targets every node in the graph.
	All TargetKind = iota
	// Unlabeled targets only nodes with no label set, resolved once at
	// the start of the run (spec.md §4.4's "T is fixed for the
	// duration of a propagation call").
	Unlabeled
	// ByIds targets exactly the nodes named by external identifier.
	ByIds
)

// TargetSelection configures which nodes propagation updates. Ids is
// only consulted when Kind == ByIds.
type TargetSelection struct {
	Kind TargetKind
	Ids  []string
}

// Config groups every propagation knob into a single immutable value,
// passed by value into Run (spec.md §9's "group propagation knobs ...
// into a single immutable configuration value"). Build one via
// NewConfig and the With* options below.
type Config struct {
	centralityMetric       centrality.Metric
	maxIterations          int
	voteWeights            VoteWeights
	neighborCentralityVote bool
	distancePercent        bool
	target                 TargetSelection
	workers                int
}

// Option customizes a Config, mirroring the teacher's builder.BuilderOption
// functional-options idiom (builder/options.go): constructors validate and
// panic on meaningless input, algorithms themselves never panic.
type Option func(*Config)

// NewConfig builds a Config with the original implementation's defaults
// (degree centrality, vote weights via DefaultVoteWeights, target=All,
// neighbor-centrality vote off, distance already 0-1) and applies opts
// in order.
func NewConfig(maxIterations int, opts ...Option) Config {
	if maxIterations <= 0 {
		panic("propagation: NewConfig(maxIterations<=0)")
	}
	cfg := Config{
		centralityMetric: centrality.Degree,
		maxIterations:    maxIterations,
		voteWeights:      DefaultVoteWeights(),
		target:           TargetSelection{Kind: All},
		workers:          1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCentralityMetric selects which centrality feeds the vote.
func WithCentralityMetric(m centrality.Metric) Option {
	return func(c *Config) { c.centralityMetric = m }
}

// WithVoteWeights overrides the default vote coefficients.
func WithVoteWeights(w VoteWeights) Option {
	return func(c *Config) { c.voteWeights = w }
}

// WithNeighborCentralityVote toggles adding the neighbor's own
// centrality (unweighted) to each vote.
func WithNeighborCentralityVote(enabled bool) Option {
	return func(c *Config) { c.neighborCentralityVote = enabled }
}

// WithDistancePercent declares that edge weights are on a 0-100 scale
// and must be rescaled to 0-1 before conversion to similarity.
func WithDistancePercent(enabled bool) Option {
	return func(c *Config) { c.distancePercent = enabled }
}

// WithTargetAll targets every node (the default).
func WithTargetAll() Option {
	return func(c *Config) { c.target = TargetSelection{Kind: All} }
}

// WithTargetUnlabeled restricts propagation to nodes without a label.
func WithTargetUnlabeled() Option {
	return func(c *Config) { c.target = TargetSelection{Kind: Unlabeled} }
}

// WithTargetIds restricts propagation to the named external identifiers.
// Panics if ids is empty: an intentionally empty target set should be
// expressed by simply not calling Run.
func WithTargetIds(ids []string) Option {
	if len(ids) == 0 {
		panic("propagation: WithTargetIds(empty)")
	}
	return func(c *Config) { c.target = TargetSelection{Kind: ByIds, Ids: ids} }
}

// WithWorkers bounds the worker pool used for the parallel proposal
// phase (spec.md §5); <= 1 runs sequentially.
func WithWorkers(n int) Option {
	return func(c *Config) { c.workers = n }
}
