package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"
	"go.lepak.sg/ordtree/tree/binary"
)

var buildCommand = cli.Command{
	Name:  "build",
	Usage: "rebuild a tree from its in-order and pre-order traversals read from stdin",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "mode, m",
			Value: "iter",
			Usage: "`MODE` of building [iter|rec]",
		},
	},
	Action: runBuild,
}

func runBuild(c *cli.Context) error {
	var impl func([]int, []int) (*binary.Tree[int], error)
	switch c.String("mode") {
	case "iter":
		// interesting...
		// actual type params of the function cannot be inferred
		// even though the variable has the fully instantiated type
		impl = binary.BuildFromPreAndInOrderIter[[]int, int]
	case "rec":
		impl = binary.BuildFromPreAndInOrderRec[[]int, int]
	default:
		return fmt.Errorf("not a valid mode: %q", c.String("mode"))
	}

	w := c.App.Writer
	rd := bufio.NewReader(os.Stdin)

	fmt.Fprint(w, "in-order: ")
	in, err := readInts(rd)
	if err != nil {
		return fmt.Errorf("in-order: %w", err)
	}

	fmt.Fprint(w, "pre-order: ")
	pre, err := readInts(rd)
	if err != nil {
		return fmt.Errorf("pre-order: %w", err)
	}

	tr, err := impl(pre, in)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, tr.String())

	if err := tr.Validate(); err != nil {
		// the input needn't be sorted
		fmt.Fprintln(w, "not a search tree:", err)
	}

	return nil
}

// readInts reads one line of space separated integers.
func readInts(rd *bufio.Reader) ([]int, error) {
	raw, err := rd.ReadString('\n')
	if err != nil && !(err == io.EOF && raw != "") {
		return nil, err
	}

	raws := strings.Fields(raw)

	out := make([]int, len(raws))

	for i, rawNum := range raws {
		num, err := strconv.Atoi(rawNum)
		if err != nil {
			return nil, err
		}

		out[i] = num
	}
	return out, nil
}
