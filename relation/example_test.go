package relation_test

import (
	"fmt"

	"github.com/cetrei/relationutils/relation"
)

// ExampleRelation demonstrates basic construction, closure, and queries.
func ExampleRelation() {
	// 1) Declare the universe and some pairs:
	r, _ := relation.New([]string{"a", "b", "c"},
		relation.WithPairs(relation.Pair{A: "a", B: "b"}, relation.Pair{A: "b", B: "c"}))

	// 2) Check properties before and after closing:
	fmt.Println("reflexive?", r.IsReflexive())
	fmt.Println("transitive?", r.IsTransitive())

	r.ReflexiveClosure()
	r.TransitiveClosure()
	fmt.Println("after closures:", r)

	// Output:
	// reflexive? false
	// transitive? false
	// after closures: A = {a, b, c}, R = {(a,a), (a,b), (a,c), (b,b), (b,c), (c,c)}
}

// ExampleRelation_equivalenceClasses partitions a set by an equivalence.
func ExampleRelation_equivalenceClasses() {
	r, _ := relation.New([]string{"x", "y", "z"})
	_ = r.AddPairs(
		relation.Pair{A: "x", B: "y"},
		relation.Pair{A: "y", B: "x"},
	)
	r.EquivalenceClosure()

	classes, _ := r.EquivalenceClasses()
	fmt.Println(classes)

	// Output:
	// [[x y] [z]]
}

// ExampleRelation_compose chains two relations left to right.
func ExampleRelation_compose() {
	parent, _ := relation.New([]string{"ann", "bob", "cat"},
		relation.WithPairs(relation.Pair{A: "ann", B: "bob"}))
	likes, _ := relation.New([]string{"ann", "bob", "cat"},
		relation.WithPairs(relation.Pair{A: "bob", B: "cat"}))

	// "parent of someone who likes": ann → cat.
	composed, _ := parent.Compose(likes)
	fmt.Println(composed.Pairs())

	// Output:
	// [{ann cat}]
}
