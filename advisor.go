package main

import (
	"fmt"
	"io"
	"math/bits"
)

// nextPowerOfTwo returns the smallest power
// of two that is not less than n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// AdviseDimensions computes the power-of-two size the
// sheet should be packed at and reports whether the
// advisory applies. It only applies when both axes
// are off.
func AdviseDimensions(width, height int) (nextWidth, nextHeight int, repack bool) {
	nextWidth = nextPowerOfTwo(width)
	nextHeight = nextPowerOfTwo(height)
	repack = width != nextWidth && height != nextHeight

	return
}

func printAdvisory(out io.Writer, width, height int) {
	nextWidth, nextHeight, repack := AdviseDimensions(width, height)

	if repack {
		fmt.Fprintf(out, "You should pack a new image: %d, %d\n",
			nextWidth, nextHeight)
	}
}
