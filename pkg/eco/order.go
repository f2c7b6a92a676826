package eco

import (
	"sort"
	"strings"

	"github.com/edatools/defeco/pkg/diag"
)

// OrderResult is the dependency-ordered insertion sequence. When the
// inferred graph had a cycle (or the inference itself was inconsistent),
// Stuck names the buffers that never became ready; their commands are
// still present, appended in lexical order.
type OrderResult struct {
	Commands []InsertionCommand
	Stuck    []string
}

// Fallback reports whether lexical fallback ordering was applied.
func (r OrderResult) Fallback() bool { return len(r.Stuck) > 0 }

// Order sequences insertion commands so that a buffer feeding another
// buffer is inserted first. Command B depends on command A when B's load
// list names A's instance, or when A's output net appears among B's load
// terminals. Dependencies are inferred from the typed commands, not from
// their rendered text.
//
// The sort is layered: each pass emits every command whose dependencies
// have all been emitted, lexically by instance within the layer, which
// makes the order deterministic and idempotent. A pass that emits
// nothing means a genuine cycle; the remaining commands are flushed in
// lexical order with a diagnostic rather than hanging or being dropped.
func Order(cmds []InsertionCommand) (OrderResult, []diag.Diagnostic) {
	if len(cmds) == 0 {
		return OrderResult{}, nil
	}

	byInstance := make(map[string]InsertionCommand, len(cmds))
	for _, cmd := range cmds {
		byInstance[cmd.Instance] = cmd
	}
	deps := dependencies(cmds, byInstance)

	var (
		ordered  []InsertionCommand
		emitted  = make(map[string]bool, len(cmds))
		remained = len(byInstance)
		ds       []diag.Diagnostic
		result   OrderResult
	)

	// Each pass emits at least one command, so the pass count is bounded
	// by the command count; the extra pass detects the stuck state.
	for pass := 0; pass <= len(byInstance) && remained > 0; pass++ {
		var ready []string
		for instance, need := range deps {
			if emitted[instance] {
				continue
			}
			if subset(need, emitted) {
				ready = append(ready, instance)
			}
		}

		if len(ready) == 0 {
			var stuck []string
			for instance := range deps {
				if !emitted[instance] {
					stuck = append(stuck, instance)
				}
			}
			sort.Strings(stuck)
			for _, instance := range stuck {
				ordered = append(ordered, byInstance[instance])
			}
			ds = append(ds, diag.Diagnostic{
				Code:    diag.CodeDependencyCycle,
				Subject: strings.Join(stuck, ","),
				Message: "no ready command, flushing remainder in lexical order",
			})
			result.Stuck = stuck
			remained = 0
			break
		}

		sort.Strings(ready)
		for _, instance := range ready {
			ordered = append(ordered, byInstance[instance])
			emitted[instance] = true
			remained--
		}
	}

	result.Commands = ordered
	return result, ds
}

// dependencies builds the inferred edge set: instance -> set of buffer
// instances that must be inserted first.
func dependencies(cmds []InsertionCommand, byInstance map[string]InsertionCommand) map[string]map[string]bool {
	outputNetOf := make(map[string]string, len(cmds))
	for _, cmd := range cmds {
		outputNetOf[cmd.Instance] = cmd.OutputNet
	}

	deps := make(map[string]map[string]bool, len(cmds))
	for _, cmd := range cmds {
		need := make(map[string]bool)
		for _, load := range cmd.Loads {
			// Load terminal belongs to another new buffer.
			if _, isBuffer := byInstance[load.Instance]; isBuffer && load.Instance != cmd.Instance {
				need[load.Instance] = true
			}
			// Load terminal references another new buffer's output net.
			for other, net := range outputNetOf {
				if other == cmd.Instance {
					continue
				}
				if load.Instance == net || load.Pin == net {
					need[other] = true
				}
			}
		}
		deps[cmd.Instance] = need
	}
	return deps
}

func subset(need map[string]bool, have map[string]bool) bool {
	for k := range need {
		if !have[k] {
			return false
		}
	}
	return true
}
