package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cetrei/relationutils/relation"
)

// OverlapReport writes a two-set Venn breakdown: elements only in left,
// in both, and only in right, each region sorted. Labels caption the
// regions.
func OverlapReport(w io.Writer, leftLabel string, left []string, rightLabel string, right []string) error {
	if w == nil {
		return ErrNilWriter
	}

	leftSet := toSet(left)
	rightSet := toSet(right)
	onlyLeft := minus(leftSet, rightSet)
	both := intersect(leftSet, rightSet)
	onlyRight := minus(rightSet, leftSet)

	var b strings.Builder
	fmt.Fprintf(&b, "only %s: %s\n", leftLabel, region(onlyLeft))
	fmt.Fprintf(&b, "both: %s\n", region(both))
	fmt.Fprintf(&b, "only %s: %s\n", rightLabel, region(onlyRight))

	_, err := io.WriteString(w, b.String())

	return err
}

// FollowerOverlap compares the follower sets of a and b in r: the
// textual answer to "which successors do a and b share".
func FollowerOverlap(w io.Writer, r *relation.Relation, a, b string) error {
	if w == nil {
		return ErrNilWriter
	}
	if r == nil {
		return ErrNilRelation
	}

	fa, err := r.Followers(a)
	if err != nil {
		return err
	}
	fb, err := r.Followers(b)
	if err != nil {
		return err
	}

	return OverlapReport(w, fmt.Sprintf("followers(%s)", a), fa, fmt.Sprintf("followers(%s)", b), fb)
}

// DomainCodomainOverlap reports which elements appear only as sources,
// only as targets, or as both.
func DomainCodomainOverlap(w io.Writer, r *relation.Relation) error {
	if w == nil {
		return ErrNilWriter
	}
	if r == nil {
		return ErrNilRelation
	}

	return OverlapReport(w, "domain", r.Domain(), "codomain", r.Codomain())
}

// region formats a sorted set as "{a, b}" or "∅" when empty.
func region(set map[string]struct{}) string {
	if len(set) == 0 {
		return "∅"
	}
	items := make([]string, 0, len(set))
	for s := range set {
		items = append(items, s)
	}
	sort.Strings(items)

	return "{" + strings.Join(items, ", ") + "}"
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}

	return set
}

func minus(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for s := range a {
		if _, ok := b[s]; !ok {
			out[s] = struct{}{}
		}
	}

	return out
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for s := range a {
		if _, ok := b[s]; ok {
			out[s] = struct{}{}
		}
	}

	return out
}
