// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import (
	"encoding/json"
	"fmt"
	"io"
)

// GenDot writes a Graphviz dot rendering of every node reachable from
// roots to w. options, when non-nil, is a JSON object. Its "attr" map is
// consulted for four keys only: "graph:rankdir" sets the graph's rankdir,
// "node:input"/"node:and" are appended verbatim to input/AND node
// attributes, and "edge" is appended verbatim to every edge's attributes;
// other keys are ignored. An optional "var_label" array gives per-input
// display labels ("var_texlbl" is not read).
func (m *Mgr) GenDot(w io.Writer, options []byte, roots ...Handle) error {
	var opts map[string]interface{}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &opts); err != nil {
			m.seterror(InvalidArgument, "GenDot: invalid options JSON: %v", err)
			return m.err
		}
	}
	varLabel := stringArray(opts, "var_label")
	attr := attrMap(opts)

	fmt.Fprintln(w, "digraph aig {")
	fmt.Fprintln(w, graphAttrLine(attr))
	fmt.Fprintln(w, `  "F" [shape=box,label="0"];`)
	fmt.Fprintln(w, `  "T" [shape=box,label="1"];`)

	seen := make(map[int32]bool)
	var walk func(e Edge)
	walk = func(e Edge) {
		if e.IsConst() || seen[e.index()] {
			return
		}
		seen[e.index()] = true
		n := &m.nodes[e.index()]
		if n.kind == kindInput {
			label := fmt.Sprintf("i%d", n.inputID)
			if int(n.inputID) < len(varLabel) {
				label = varLabel[n.inputID]
			}
			fmt.Fprintf(w, "  %s [shape=invhouse,label=%q%s];\n", nodeName(e.index()), label, attrSuffix(attr, "node", "input"))
			return
		}
		fmt.Fprintf(w, "  %s [label=%q%s];\n", nodeName(e.index()), "&", attrSuffix(attr, "node", "and"))
		walk(n.fanin0)
		walk(n.fanin1)
		fmt.Fprintf(w, "  %s -> %s%s;\n", nodeName(e.index()), edgeTarget(n.fanin0), edgeAttrSuffix(attr, n.fanin0))
		fmt.Fprintf(w, "  %s -> %s%s;\n", nodeName(e.index()), edgeTarget(n.fanin1), edgeAttrSuffix(attr, n.fanin1))
	}
	for _, h := range roots {
		walk(h.e)
		fmt.Fprintf(w, "  %s -> %s%s;\n", "root", edgeTarget(h.e), edgeAttrSuffix(attr, h.e))
	}
	fmt.Fprintln(w, "}")
	return nil
}

func nodeName(idx int32) string {
	return fmt.Sprintf("n%d", idx)
}

func edgeTarget(e Edge) string {
	if e.IsZero() {
		return `"F"`
	}
	if e.IsOne() {
		return `"T"`
	}
	return nodeName(e.index())
}

func edgeAttrSuffix(attr map[string]string, e Edge) string {
	style := "solid"
	if e.inv() {
		style = "dashed"
	}
	suffix := attrSuffix(attr, "edge", "")
	return fmt.Sprintf(" [style=%s%s]", style, suffix)
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
	return "  rankdir=BT;"
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
