package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
	"go.lepak.sg/ordtree/tree/binary"
)

var randomCommand = cli.Command{
	Name:  "random",
	Usage: "build a tree from a random insert order and print it",
	Flags: []cli.Flag{
		cli.Int64Flag{
			Name:  "seed, s",
			Usage: "`SEED` for the insert order (default current unix time in ns)",
		},
		cli.IntFlag{
			Name:  "num, n",
			Value: 10,
			Usage: "number of nodes in the tree",
		},
		cli.BoolFlag{
			Name:  "balanced, b",
			Usage: "keep building the tree until it is balanced",
		},
		cli.IntFlag{
			Name:  "attempts, a",
			Value: 100000,
			Usage: "give up on -balanced after this many trees (0 for no limit)",
		},
	},
	Action: runRandom,
}

func runRandom(c *cli.Context) error {
	seed, num := c.Int64("seed"), c.Int("num")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if num < 0 {
		return fmt.Errorf("invalid number of nodes: %d", num)
	}

	var tr *binary.Tree[int]
	attempts := 0

	if c.Bool("balanced") {
		var err error
		tr, attempts, err = binary.BuildRandomBalanced(num, seed, c.Int("attempts"))
		if err != nil {
			return fmt.Errorf("seed %d: %w", seed, err)
		}
	} else {
		tr = binary.BuildRandom(num, seed)
	}

	preorder := make([]int, 0, num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	w := c.App.Writer
	fmt.Fprintln(w, "seed:", seed)
	fmt.Fprintln(w, "preorder:", preorder)
	fmt.Fprintln(w, "inorder:", inorder)

	fmt.Fprintln(w, "tree:")
	fmt.Fprintln(w, tr.String())

	actual, ideal := tr.Height()
	fmt.Fprintln(w, "height:", actual, "ideal:", ideal)

	if c.Bool("balanced") {
		fmt.Fprintln(w, "attempts:", attempts)
	}

	return nil
}
