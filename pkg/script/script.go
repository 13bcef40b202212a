package script

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"

	"ringqueue/pkg/klog"
	"ringqueue/util/queue"
)

const (
	GrowthMultiply string = "multiply"
	GrowthAdd      string = "add"
)

const (
	OpAdd         string = "add"
	OpOffer       string = "offer"
	OpAddAll      string = "add-all"
	OpPoll        string = "poll"
	OpPollBack    string = "poll-back"
	OpDequeue     string = "dequeue"
	OpPeek        string = "peek"
	OpPeekBack    string = "peek-back"
	OpElement     string = "element"
	OpGet         string = "get"
	OpRemoveAt    string = "remove-at"
	OpRemove      string = "remove"
	OpContains    string = "contains"
	OpContainsAll string = "contains-all"
	OpRemoveAll   string = "remove-all"
	OpRetainAll   string = "retain-all"
	OpClear       string = "clear"
	OpSize        string = "size"
	OpSnapshot    string = "snapshot"
)

// null is printed in place of a value an empty queue could not produce.
const null = "null"

var (
	ErrUnknownOp         = errors.New("unknown op")
	ErrUnknownGrowthMode = errors.New("unknown growth mode")
)

type Growth struct {
	Mode   string `json:"mode" yaml:"mode"`
	Amount int    `json:"amount" yaml:"amount"`
}

type Op struct {
	Op     string   `json:"op" yaml:"op"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// Script describes a queue and the operations to run against it.
type Script struct {
	Capacity int    `json:"capacity" yaml:"capacity"`
	Growth   Growth `json:"growth" yaml:"growth"`
	Ops      []Op   `json:"ops" yaml:"ops"`
}

// Result is the outcome of one op. OK is false when the op found nothing
// to act on or failed, Err holds the failure.
type Result struct {
	Step  int    `json:"step"`
	Op    string `json:"op"`
	Value string `json:"value,omitempty"`
	OK    bool   `json:"ok"`
	Err   string `json:"error,omitempty"`
	State string `json:"state"`
}

// GrowthFunc turns g into a queue growth policy. A zero Growth doubles.
// Amounts are not validated here, a policy that does not grow is reported
// by the queue when it is first applied.
func GrowthFunc(g Growth) (queue.GrowthFunc, error) {
	switch g.Mode {
	case "", GrowthMultiply:
		factor := g.Amount
		if factor == 0 {
			factor = 2
		}
		return func(c int) int { return c * factor }, nil
	case GrowthAdd:
		amount := g.Amount
		return func(c int) int { return c + amount }, nil
	}
	return nil, errors.Wrapf(ErrUnknownGrowthMode, "%q", g.Mode)
}

// NewQueue builds the queue described by s. A zero capacity means
// queue.DefaultCapacity.
func NewQueue(s *Script) (*queue.RingQueue[string], error) {
	growth, err := GrowthFunc(s.Growth)
	if err != nil {
		return nil, err
	}
	capacity := s.Capacity
	if capacity == 0 {
		capacity = queue.DefaultCapacity
	}
	return queue.NewRingQueueWithGrowth[string](capacity, growth)
}

// ParseOp reads the compact form op[:value], where value is split on commas
// for the bulk ops.
func ParseOp(s string) (Op, error) {
	name, value, hasValue := strings.Cut(s, ":")
	op := Op{Op: strings.ToLower(strings.TrimSpace(name))}
	if op.Op == "" {
		return op, errors.Wrapf(ErrUnknownOp, "%q", s)
	}
	if !hasValue {
		return op, nil
	}
	switch op.Op {
	case OpAddAll, OpContainsAll, OpRemoveAll, OpRetainAll:
		if value != "" {
			op.Values = strings.Split(value, ",")
		}
	default:
		op.Value = value
	}
	return op, nil
}

// Execute runs ops in order against rq. A failing op is recorded in its
// Result and the next op still runs; an unknown op stops execution.
func Execute(rq *queue.RingQueue[string], ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for i, op := range ops {
		res := Result{Step: i + 1, Op: op.Op}
		if err := apply(rq, op, &res); err != nil {
			if errors.Is(err, ErrUnknownOp) {
				return results, errors.WithMessagef(err, "step %d", res.Step)
			}
			klog.Warnf("step %d %s: %v", res.Step, op.Op, err)
			res.OK = false
			res.Err = err.Error()
		}
		res.State = rq.String()
		klog.Debugf("step %d %s -> %s %s", res.Step, op.Op, res.Value, res.State)
		results = append(results, res)
	}
	return results, nil
}

func apply(rq *queue.RingQueue[string], op Op, res *Result) error {
	switch op.Op {
	case OpAdd:
		ok, err := rq.Add(op.Value)
		res.OK, res.Value = ok, strconv.FormatBool(ok)
		return err
	case OpOffer:
		res.OK = rq.Offer(op.Value)
		res.Value = strconv.FormatBool(res.OK)
	case OpAddAll:
		ok, err := rq.AddAll(op.Values...)
		res.OK, res.Value = ok, strconv.FormatBool(ok)
		return err
	case OpPoll:
		setSentinel(res)(rq.Poll())
	case OpPollBack:
		setSentinel(res)(rq.PollBack())
	case OpPeek:
		setSentinel(res)(rq.Peek())
	case OpPeekBack:
		setSentinel(res)(rq.PeekBack())
	case OpDequeue:
		return setValue(res)(rq.Dequeue())
	case OpElement:
		return setValue(res)(rq.Element())
	case OpGet, OpRemoveAt:
		index, err := strconv.Atoi(op.Value)
		if err != nil {
			return errors.Wrapf(err, "index %q", op.Value)
		}
		if op.Op == OpGet {
			return setValue(res)(rq.Get(index))
		}
		return setValue(res)(rq.RemoveAt(index))
	case OpRemove:
		setBool(res, rq.RemoveValue(op.Value))
	case OpContains:
		setBool(res, rq.Contains(op.Value))
	case OpContainsAll:
		setBool(res, rq.ContainsAll(op.Values...))
	case OpRemoveAll:
		setBool(res, rq.RemoveAll(op.Values...))
	case OpRetainAll:
		setBool(res, rq.RetainAll(op.Values...))
	case OpClear:
		rq.Clear()
		res.OK = true
	case OpSize:
		res.OK, res.Value = true, strconv.Itoa(rq.Len())
	case OpSnapshot:
		buf, err := ffjson.Marshal(rq.ToSlice())
		if err != nil {
			return err
		}
		res.OK, res.Value = true, string(buf)
	default:
		return errors.Wrapf(ErrUnknownOp, "%q", op.Op)
	}
	return nil
}

func setSentinel(res *Result) func(string, bool) {
	return func(v string, ok bool) {
		res.OK = ok
		res.Value = null
		if ok {
			res.Value = v
		}
	}
}

func setValue(res *Result) func(string, error) error {
	return func(v string, err error) error {
		if err != nil {
			res.Value = null
			return err
		}
		res.OK, res.Value = true, v
		return nil
	}
}

func setBool(res *Result, ok bool) {
	res.OK, res.Value = ok, strconv.FormatBool(ok)
}
