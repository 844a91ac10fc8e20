// SPDX-License-Identifier: MIT

package layers_test

import (
	"fmt"
	"strings"

	"github.com/anupam312nwd/matrix-manifolds/dataset"
	"github.com/anupam312nwd/matrix-manifolds/layers"
)

// ExamplePartition records the round in which each peer of a small network
// first receives a broadcast started by peer A: the round is the BFS layer.
func ExamplePartition() {
	const links = `# peer links
A B
A C
B D
C D
C E
E F
D G
F G
`
	el, err := dataset.Parse(strings.NewReader(links))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	asg, err := layers.Partition(el.Graph, el.ID("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for l := 0; l < asg.NumLayers(); l++ {
		var peers []string
		for _, v := range asg.Nodes(l) {
			peers = append(peers, el.Labels[v])
		}
		fmt.Printf("round %d: %v\n", l, peers)
	}
	// Output:
	// round 0: [A]
	// round 1: [B C]
	// round 2: [D E]
	// round 3: [F G]
}
