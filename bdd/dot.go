// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"encoding/json"
	"fmt"
	"io"
)

// GenDot writes a Graphviz dot rendering of every node reachable from
// roots to w. options, when non-nil, is a JSON object. Its "attr" map is
// consulted for four keys only: "graph:rankdir" sets the graph's rankdir,
// "node" is appended verbatim to every decision node's attributes, and
// "edge:low"/"edge:high" are appended verbatim to the low/high edges'
// attributes; other keys are ignored. An optional "var_label" string array
// gives per-level display labels ("var_texlbl" is read when "var_label" is
// absent). Passing nil options renders with the library's own defaults.
func (b *Mgr) GenDot(w io.Writer, options []byte, roots ...Node) error {
	var opts map[string]interface{}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &opts); err != nil {
			b.seterror(InvalidArgument, "GenDot: invalid options JSON: %v", err)
			return b.err
		}
	}
	varLabel := stringArray(opts, "var_label")
	if varLabel == nil {
		varLabel = stringArray(opts, "var_texlbl")
	}
	attr := attrMap(opts)

	fmt.Fprintln(w, "digraph bdd {")
	fmt.Fprintln(w, graphAttrLine(attr))
	fmt.Fprintln(w, `  "F" [shape=box,label="0"];`)
	fmt.Fprintln(w, `  "T" [shape=box,label="1"];`)

	seen := make(map[int32]bool)
	var walk func(e edge)
	walk = func(e edge) {
		if e.isConst() || seen[e.index()] {
			return
		}
		seen[e.index()] = true
		nd := &b.nodes[e.index()]
		label := fmt.Sprintf("%d", nd.level)
		if int(nd.level) < len(varLabel) {
			label = varLabel[nd.level]
		}
		fmt.Fprintf(w, "  %s [label=%q%s];\n", nodeName(e.index()), label, attrSuffix(attr, "node", ""))
		walk(nd.e0)
		walk(nd.e1)
		fmt.Fprintf(w, "  %s -> %s [style=dashed%s];\n", nodeName(e.index()), edgeTarget(nd.e0), attrSuffix(attr, "edge", "low"))
		fmt.Fprintf(w, "  %s -> %s [style=solid%s];\n", nodeName(e.index()), edgeTarget(nd.e1), attrSuffix(attr, "edge", "high"))
	}
	for _, n := range roots {
		walk(n.e)
	}
	fmt.Fprintln(w, "}")
	return nil
}

func nodeName(idx int32) string {
	return fmt.Sprintf("n%d", idx)
}

func edgeTarget(e edge) string {
	if e.isFalse() {
		return `"F"`
	}
	if e.isTrue() {
		return `"T"`
	}
	return nodeName(e.index())
}

func stringArray(opts map[string]interface{}, key string) []string {
	raw, ok := opts[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			out[i] = s
		}
	}
	return out
}

func attrMap(opts map[string]interface{}) map[string]string {
	res := map[string]string{}
	raw, ok := opts["attr"].(map[string]interface{})
	if !ok {
		return res
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			res[k] = s
		}
	}
	return res
}

func graphAttrLine(attr map[string]string) string {
	if v, ok := attr["graph:rankdir"]; ok {
		return fmt.Sprintf("  rankdir=%s;", v)
	}
	return "  rankdir=TB;"
}

func attrSuffix(attr map[string]string, group, sub string) string {
	key := group
	if sub != "" {
		key = group + ":" + sub
	}
	if v, ok := attr[key]; ok {
		return "," + v
	}
	return ""
}
