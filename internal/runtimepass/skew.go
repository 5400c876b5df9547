// Package runtimepass implements the runtime skew pass: given a
// physical plan and a metric report (block ids plus a key-to-size
// map), it replaces the task-index -> key-range assignment on the
// stage edges the metric report names, rebalancing a skewed keyspace
// into evenly-sized ranges while flagging the hottest keys.
package runtimepass

import (
	"fmt"
	"log"
	"sort"

	"flowcore/internal/attribute"
	"flowcore/internal/dag"
	"flowcore/internal/idgen"
	"flowcore/internal/plan"
)

var logger = log.New(log.Writer(), "[runtimepass] ", log.LstdFlags)

// DynamicOptimizationHandlerID is the single event-handler identifier
// the skew pass declares, standing in for the original's
// DynamicOptimizationEventHandler class token — the embedding runtime
// wires actual dispatch, entirely out of this module's scope.
const DynamicOptimizationHandlerID = "DynamicOptimization"

// DefaultNumSkewedKeys is the default number of top-by-size keys
// flagged as skewed.
const DefaultNumSkewedKeys = 3

// DataSkewRuntimePass rewrites a physical plan's stage edges in
// response to a metric report.
type DataSkewRuntimePass struct {
	numSkewedKeys int
}

// Option configures a DataSkewRuntimePass.
type Option func(*DataSkewRuntimePass)

// WithNumSkewedKeys overrides the default top-k skewed-key count.
func WithNumSkewedKeys(n int) Option {
	return func(p *DataSkewRuntimePass) { p.numSkewedKeys = n }
}

// NewDataSkewRuntimePass returns a pass with DefaultNumSkewedKeys unless
// overridden by an Option.
func NewDataSkewRuntimePass(opts ...Option) *DataSkewRuntimePass {
	p := &DataSkewRuntimePass{numSkewedKeys: DefaultNumSkewedKeys}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// EventHandlerIDs returns the static set of event-handler identifiers
// the driver should wire this pass's results to.
func (p *DataSkewRuntimePass) EventHandlerIDs() []string {
	return []string{DynamicOptimizationHandlerID}
}

// Apply rewrites the task-index -> key-range assignment of every stage
// edge named by metric.BlockIDs, returning a fresh physical plan with
// the same id and a structurally identical stage DAG. No partial
// mutation of originalPlan occurs: the stage-edge writes happen only
// after the key ranges are fully computed.
func (p *DataSkewRuntimePass) Apply(originalPlan *plan.PhysicalPlan, metric MetricData) (*plan.PhysicalPlan, error) {
	stageDAG := originalPlan.StageDAG()

	optimizationEdgeIDs := make(map[string]bool, len(metric.BlockIDs))
	for _, blockID := range metric.BlockIDs {
		runtimeEdgeID, err := idgen.RuntimeEdgeIDOf(blockID)
		if err != nil {
			return nil, fmt.Errorf("runtime skew pass: %w", err)
		}
		optimizationEdgeIDs[runtimeEdgeID] = true
	}

	var optimizationEdges []*plan.StageEdge
	for _, stage := range stageDAG.Vertices() {
		for _, edge := range stageDAG.IncomingEdgesOf(stage) {
			if optimizationEdgeIDs[edge.ID()] {
				optimizationEdges = append(optimizationEdges, edge)
			}
		}
	}
	if len(optimizationEdges) == 0 {
		return nil, &EmptyOptimizationEdgesError{}
	}

	numDstTasks := optimizationEdges[0].Destination().TaskCount()

	ranges, err := p.CalculateKeyRanges(metric.KeySizes, numDstTasks)
	if err != nil {
		return nil, err
	}

	for _, edge := range optimizationEdges {
		taskIdxToRange := make(map[int]attribute.KeyRange, numDstTasks)
		for taskIdx := 0; taskIdx < numDstTasks; taskIdx++ {
			taskIdxToRange[taskIdx] = ranges[taskIdx]
		}
		edge.SetTaskIndexToKeyRange(taskIdxToRange)
	}

	rebuilt, err := dag.NewBuilderFrom(stageDAG).Build()
	if err != nil {
		return nil, fmt.Errorf("runtime skew pass: rebuilding stage DAG: %w", err)
	}
	return plan.NewPhysicalPlan(originalPlan.ID(), rebuilt), nil
}

// IdentifySkewedKeys returns the top-k keys by descending partition
// size, tie-broken by ascending key.
func (p *DataSkewRuntimePass) IdentifySkewedKeys(keySizes map[int]int64) ([]int, error) {
	if len(keySizes) < p.numSkewedKeys {
		return nil, &InsufficientKeysError{Have: len(keySizes), Want: p.numSkewedKeys}
	}
	keys := make([]int, 0, len(keySizes))
	for k := range keySizes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		si, sj := keySizes[keys[i]], keySizes[keys[j]]
		if si != sj {
			return si > sj
		}
		return keys[i] < keys[j]
	})
	skewed := keys[:p.numSkewedKeys]
	for _, k := range skewed {
		logger.Printf("skewed key: key %d size %d", k, keySizes[k])
	}
	out := make([]int, len(skewed))
	copy(out, skewed)
	return out, nil
}

// CalculateKeyRanges partitions the keyspace [0, max_key] into exactly
// numDstTasks half-open ranges, each holding an approximately equal
// share of total partition size, flagging any range that contains one
// of the top-k skewed keys. For each non-final range the walk adds keys
// until the accumulated size reaches the target, then steps back one
// key if that overshoots the target by more than stopping one key
// earlier would undershoot it. The next range's walk starts at the
// emitted boundary key; no key is skipped. The final range runs to
// max_key+1 and is flagged if any key in it is skewed.
func (p *DataSkewRuntimePass) CalculateKeyRanges(keySizes map[int]int64, numDstTasks int) ([]attribute.KeyRange, error) {
	if len(keySizes) == 0 {
		return nil, &DynamicOptimizationError{Reason: "cannot find max key among blocks"}
	}
	maxKey := 0
	for k := range keySizes {
		if k > maxKey {
			maxKey = k
		}
	}

	skewedKeys, err := p.IdentifySkewedKeys(keySizes)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, v := range keySizes {
		total += v
	}
	idealSizePerTask := total / int64(numDstTasks)

	ranges := make([]attribute.KeyRange, 0, numDstTasks)
	startingKey := 0
	finishingKey := 1
	currentAccumulatedSize := keySizes[0]
	var prevAccumulatedSize int64

	for i := 1; i <= numDstTasks; i++ {
		if i != numDstTasks {
			idealAccumulatedSize := idealSizePerTask * int64(i)
			for currentAccumulatedSize < idealAccumulatedSize {
				currentAccumulatedSize += keySizes[finishingKey]
				finishingKey++
			}

			oneStepBack := currentAccumulatedSize - keySizes[finishingKey-1]
			diffFromIdeal := currentAccumulatedSize - idealAccumulatedSize
			diffFromIdealOneStepBack := idealAccumulatedSize - oneStepBack
			if diffFromIdeal > diffFromIdealOneStepBack {
				finishingKey--
				currentAccumulatedSize -= keySizes[finishingKey]
			}

			isSkewed := containsSkewedKey(skewedKeys, startingKey, finishingKey)
			ranges = append(ranges, attribute.NewKeyRange(startingKey, finishingKey, isSkewed))
			logger.Printf("key range %d~%d, size %d", startingKey, finishingKey-1, currentAccumulatedSize-prevAccumulatedSize)

			prevAccumulatedSize = currentAccumulatedSize
			startingKey = finishingKey
		} else {
			isSkewed := containsSkewedKey(skewedKeys, startingKey, maxKey+1)
			ranges = append(ranges, attribute.NewKeyRange(startingKey, maxKey+1, isSkewed))

			for finishingKey <= maxKey {
				currentAccumulatedSize += keySizes[finishingKey]
				finishingKey++
			}
			logger.Printf("key range %d~%d, size %d", startingKey, maxKey+1, currentAccumulatedSize-prevAccumulatedSize)
		}
	}
	return ranges, nil
}

func containsSkewedKey(skewedKeys []int, startingKey, finishingKey int) bool {
	for k := startingKey; k < finishingKey; k++ {
		for _, sk := range skewedKeys {
			if sk == k {
				return true
			}
		}
	}
	return false
}
