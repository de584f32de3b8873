package floorplan_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/floorplan/pkg/floorplan"
)

func Example() {
	input := "V\n1(2,3)\nH\n2(4,1)\n3(2,2)\n"

	root, err := floorplan.Parse(strings.NewReader(input))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("tree:")
	_ = floorplan.WriteTree(os.Stdout, root)

	fmt.Println("dimensions:")
	_, _ = floorplan.WriteDimensions(os.Stdout, root)

	fmt.Println("coordinates:")
	_ = floorplan.WriteCoordinates(os.Stdout, root, floorplan.Point{})
	// Output:
	// tree:
	// 1(2,3)
	// 2(4,1)
	// 3(2,2)
	// H
	// V
	// dimensions:
	// 1(2,3)
	// 2(4,1)
	// 3(2,2)
	// H(4,3)
	// V(6,3)
	// coordinates:
	// 1((2,3)(0,0))
	// 2((4,1)(2,2))
	// 3((2,2)(2,0))
}

func ExampleComputeCoordinates() {
	root := floorplan.NewCut(floorplan.Horizontal,
		floorplan.NewLeaf(1, 3, 1),
		floorplan.NewLeaf(2, 3, 2),
	)
	size, _ := floorplan.ComputeDimensions(root)
	fmt.Println("bbox", size)

	placements, _ := floorplan.ComputeCoordinates(root, floorplan.Point{})
	for _, p := range placements {
		fmt.Println(p)
	}
	// Output:
	// bbox (3,3)
	// 1((3,1)(0,2))
	// 2((3,2)(0,0))
}

func ExampleParse_error() {
	_, err := floorplan.Parse(strings.NewReader("V\n1(2,3)\n"))
	fmt.Println(err)
	// Output:
	// line 3: unexpected end of input
}
