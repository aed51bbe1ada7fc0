// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morpheme

import "fmt"

// Node is a single letter position in a Trie. A node's Tags set is
// non-empty exactly when the path from the root to this node spells a
// known morpheme; RuleClasses is always the image of Tags under
// RuleClassOf.
type Node struct {
	letter   rune
	children map[rune]*Node
	tags     map[MarkovTag]struct{}
	classes  map[RuleClass]struct{}
}

func newNode(letter rune) *Node {
	return &Node{
		letter:   letter,
		children: make(map[rune]*Node),
		tags:     make(map[MarkovTag]struct{}),
		classes:  make(map[RuleClass]struct{}),
	}
}

// Child returns the child reached by following letter, if any.
func (n *Node) Child(letter rune) (*Node, bool) {
	child, ok := n.children[letter]
	return child, ok
}

// IsTerminal reports whether this node is the end of at least one
// known morpheme.
func (n *Node) IsTerminal() bool {
	return len(n.tags) > 0
}

// Tags returns the MarkovTags assigned at this node. The returned
// slice is a fresh copy; iteration order is unspecified.
func (n *Node) Tags() []MarkovTag {
	tags := make([]MarkovTag, 0, len(n.tags))
	for t := range n.tags {
		tags = append(tags, t)
	}
	return tags
}

// RuleClasses returns the RuleClasses assigned at this node (the image
// of Tags under RuleClassOf). The returned slice is a fresh copy;
// iteration order is unspecified.
func (n *Node) RuleClasses() []RuleClass {
	classes := make([]RuleClass, 0, len(n.classes))
	for c := range n.classes {
		classes = append(classes, c)
	}
	return classes
}

// rootSentinel is the letter stored at the root node. It is never part
// of a surface string, so it can never collide with a real child key.
const rootSentinel = rune(-1)

// Trie maps morpheme surface forms to their MarkovTag sets. Trees are
// built once at startup from a directory of per-type word lists (see
// LoadDictionary) and are treated as immutable thereafter.
type Trie struct {
	root *Node
}

// NewTrie returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newNode(rootSentinel)}
}

// Root returns the trie's root node. The segmenter restarts its search
// from this node every time it commits a morpheme.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert records that surface is a known morpheme of type tag. Calling
// Insert for the same surface with a different tag adds to, rather
// than replaces, the node's tag set.
func (t *Trie) Insert(tag MarkovTag, surface string) {
	node := t.root
	for _, r := range surface {
		child, ok := node.children[r]
		if !ok {
			child = newNode(r)
			node.children[r] = child
		}
		node = child
	}
	node.tags[tag] = struct{}{}
	node.classes[RuleClassOf(tag)] = struct{}{}
}

// LookupNode returns the node whose path from the root spells surface,
// or nil if no such path exists.
func (t *Trie) LookupNode(surface string) *Node {
	node := t.root
	for _, r := range surface {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// AllTaggings returns every tag sequence obtainable by independently
// choosing one MarkovTag per surface in decomposition. Its cardinality
// is the product, over each surface, of the number of MarkovTags known
// for that surface's trie node. Every surface in decomposition must
// have been produced by FindMorphemes on this same trie; passing a
// surface that is not a known, terminal morpheme is an error.
func (t *Trie) AllTaggings(decomposition []string) ([][]MarkovTag, error) {
	if len(decomposition) == 0 {
		return [][]MarkovTag{{}}, nil
	}

	node := t.LookupNode(decomposition[0])
	if node == nil || !node.IsTerminal() {
		return nil, fmt.Errorf("morpheme: %q is not a known morpheme", decomposition[0])
	}

	rest, err := t.AllTaggings(decomposition[1:])
	if err != nil {
		return nil, err
	}

	taggings := make([][]MarkovTag, 0, len(node.tags)*len(rest))
	for tag := range node.tags {
		for _, tail := range rest {
			combo := make([]MarkovTag, 0, len(tail)+1)
			combo = append(combo, tag)
			combo = append(combo, tail...)
			taggings = append(taggings, combo)
		}
	}
	return taggings, nil
}
