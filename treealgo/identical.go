package treealgo

import "github.com/astcore/astcore/tree"

// Identical returns every subtree-equivalence class of size >= 2 within
// root, where equivalence is [tree.DeepCompare]. Nodes are bucketed by
// [tree.AbsoluteHash] first (an equal hash is necessary for equivalence)
// and then deep-compared within each bucket to rule out hash collisions,
// grounded on the bucket-by-hash-then-refine approach used for structural
// diffing elsewhere in the corpus.
func Identical(root *tree.Node) [][]*tree.Node {
	buckets := make(map[uint32][]*tree.Node)

	VisitPreOrder(root, func(n *tree.Node) {
		h := tree.AbsoluteHash(n)
		buckets[h] = append(buckets[h], n)
	})

	var classes [][]*tree.Node

	for _, bucket := range buckets {
		classes = append(classes, refineBucket(bucket)...)
	}

	return classes
}

// refineBucket partitions a hash bucket into deep-compare equivalence
// classes and keeps only the classes of size >= 2.
func refineBucket(bucket []*tree.Node) [][]*tree.Node {
	var classes [][]*tree.Node

	assigned := make([]bool, len(bucket))

	for i := range bucket {
		if assigned[i] {
			continue
		}

		class := []*tree.Node{bucket[i]}
		assigned[i] = true

		for j := i + 1; j < len(bucket); j++ {
			if assigned[j] {
				continue
			}

			if tree.DeepCompare(bucket[i], bucket[j]) {
				class = append(class, bucket[j])
				assigned[j] = true
			}
		}

		if len(class) >= 2 {
			classes = append(classes, class)
		}
	}

	return classes
}
