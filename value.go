package ospace

import (
	"sort"
	"strings"
)

type treeKind uint8

const (
	treeLeaf treeKind = iota
	treeSeq
	treeMap
)

// tree is the canonical structural form of a stored value: named field
// maps over subtrees, opaque sequences, and primitive leaves. The query
// layer is written once against this vocabulary instead of once per user
// type. Sequence interiors are deliberately not retained; nothing below
// a sequence is addressable.
type tree struct {
	kind   treeKind
	leaf   leaf
	fields map[string]tree
}

func leafTree(lf leaf) tree          { return tree{kind: treeLeaf, leaf: lf} }
func seqTree() tree                  { return tree{kind: treeSeq} }
func mapTree(f map[string]tree) tree { return tree{kind: treeMap, fields: f} }

// leafAt resolves a dotted field path to a primitive leaf. The empty path
// addresses the root, which must itself be a leaf. Any mismatch (missing
// field, path ending at a map or sequence, path through a sequence)
// yields an invalid leaf, which matches nothing.
func (t tree) leafAt(path string) leaf {
	cur := t
	for path != "" {
		name, rest, _ := strings.Cut(path, ".")
		if cur.kind != treeMap {
			return invalidLeaf
		}
		sub, ok := cur.fields[name]
		if !ok {
			return invalidLeaf
		}
		cur, path = sub, rest
	}
	if cur.kind != treeLeaf {
		return invalidLeaf
	}
	return cur.leaf
}

type leafPath struct {
	path string
	leaf leaf
}

// leafPaths enumerates every (path, leaf) pair reachable from the root
// without traversing sequences, in lexicographic path order. This is the
// indexer's entire view of a value.
func (t tree) leafPaths() []leafPath {
	var out []leafPath
	t.appendLeafPaths(&out, "")
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out
}

func (t tree) appendLeafPaths(out *[]leafPath, prefix string) {
	switch t.kind {
	case treeLeaf:
		*out = append(*out, leafPath{prefix, t.leaf})
	case treeMap:
		for name, sub := range t.fields {
			p := name
			if prefix != "" {
				p = prefix + "." + name
			}
			sub.appendLeafPaths(out, p)
		}
	}
}
