package board

// This file contains some sample filled boards, used solely for testing.
// Each is one string per row in the format SetFromStrings reads.

// VsWho is a string representation of a board.
type VsWho []string

var (
	// EmptyWordfeud has no tiles.
	EmptyWordfeud = VsWho{
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	}

	// VsHulpen has HULPEN across the middle row, starting on the center
	// square.
	VsHulpen = VsWho{
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		".......hulpen..",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	}

	// VsPunch is VsHulpen after PUNCH was played down through the U.
	VsPunch = VsWho{
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"........p......",
		".......hulpen..",
		"........n......",
		"........c......",
		"........h......",
		"...............",
		"...............",
		"...............",
		"...............",
	}

	// VsBlanks has a designated blank (the capital E) in the middle of a word
	// and a word along the top edge.
	VsBlanks = VsWho{
		"bar............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		".......bEl.....",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	}
)
