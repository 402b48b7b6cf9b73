package tablr

import "fmt"

// planBlocks partitions the ordered column list into render blocks, greedy
// left to right. Every block after the first is seeded with the repeat
// columns. A block that has not yet consumed anything from the remaining
// list takes the head column even when it does not fit, so planning always
// makes progress and no column is ever dropped; the block simply renders
// wider than the target.
func planBlocks(cols, repeats []*column, avail int) [][]*column {
	if len(cols) == 0 {
		return nil
	}
	var blocks [][]*column
	remaining := cols
	for len(remaining) > 0 {
		before := len(remaining)
		var block []*column
		if len(blocks) > 0 {
			block = appendMissing(block, repeats)
		}
		consumed := 0
		for len(remaining) > 0 {
			head := remaining[0]
			if blockHas(block, head) {
				// A seeded repeat column reached its natural turn.
				remaining = remaining[1:]
				consumed++
				continue
			}
			if blockWidth(block)+head.width+1 > avail && consumed > 0 {
				break
			}
			block = append(block, head)
			remaining = remaining[1:]
			consumed++
		}
		if len(remaining) >= before || len(block) == 0 {
			panic(fmt.Sprintf("tablr: block planner stalled with %d of %d columns remaining", len(remaining), len(cols)))
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// blockWidth is the rendered width of a block: the member widths plus one
// border column before, between, and after them.
func blockWidth(block []*column) int {
	w := 1
	for _, c := range block {
		w += c.width + 1
	}
	return w
}

func blockHas(block []*column, c *column) bool {
	for _, m := range block {
		if m == c {
			return true
		}
	}
	return false
}

// appendMissing appends cols in order, skipping any already in the block.
func appendMissing(block, cols []*column) []*column {
	for _, c := range cols {
		if !blockHas(block, c) {
			block = append(block, c)
		}
	}
	return block
}
