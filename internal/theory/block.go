package theory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// BlockType tags the three structural block shapes of the method.
type BlockType string

const (
	BlockHead   BlockType = "head"
	BlockBridge BlockType = "bridge"
	BlockTriple BlockType = "triple"
)

// Range is an inclusive min..max span.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Block is a compact cluster of diatonic notes on consecutive strings.
// Blocks are transient query results; the ID survives a drag re-anchor so
// the client can replace a moved block wholesale.
type Block struct {
	ID          string              `json:"id"`
	Type        BlockType           `json:"type"`
	StringRange Range               `json:"stringRange"`
	FretRange   Range               `json:"fretRange"`
	Positions   []FretboardPosition `json:"positions"`
	Description string              `json:"description"`
}

// clusterSpec parameterizes the compact-cluster search shared by HEAD and
// BRIDGE. The two block types differ only in these numbers and their labels.
type clusterSpec struct {
	blockType      BlockType
	notesPerString int
	stringSpan     int
	fretBack       int // frets searched below the anchor
	fretForward    int // frets searched above the anchor
	maxSpan        int // compactness tolerance
	firstAnchor    int // lowest anchor string number
	lastAnchor     int // highest anchor string number
}

var headSpec = clusterSpec{
	blockType:      BlockHead,
	notesPerString: 2,
	stringSpan:     3,
	fretBack:       1,
	fretForward:    4,
	maxSpan:        4,
	firstAnchor:    1,
	lastAnchor:     4,
}

var bridgeSpec = clusterSpec{
	blockType:      BlockBridge,
	notesPerString: 2,
	stringSpan:     3,
	fretBack:       0,
	fretForward:    4,
	maxSpan:        3,
	firstAnchor:    2,
	lastAnchor:     4,
}

func specFor(bt BlockType) (clusterSpec, bool) {
	switch bt {
	case BlockHead:
		return headSpec, true
	case BlockBridge:
		return bridgeSpec, true
	default:
		return clusterSpec{}, false
	}
}

// maxBlocksPerType bounds AllBlocks output; the full board yields far more
// anchors than distinct blocks, and the client only pages through a handful.
const maxBlocksPerType = 10

// searchCluster runs the parameterized compact-cluster search at one anchor.
// Per window string it takes the first spec.notesPerString diatonic frets in
// the anchor's fret neighborhood, then accepts the cluster only when the
// note count is full and the fret span is compact. A false result is the normal
// case: most anchors do not hold a valid block.
func searchCluster(key Key, tuning Tuning, maxFret int, spec clusterSpec, anchorString, anchorFret int) (*Block, bool) {
	if anchorString < spec.firstAnchor || anchorString > spec.lastAnchor {
		return nil, false
	}
	if anchorString+spec.stringSpan-1 > tuning.Strings() {
		return nil, false
	}

	lo := anchorFret - spec.fretBack
	if lo < 0 {
		lo = 0
	}
	hi := anchorFret + spec.fretForward
	if hi > maxFret {
		hi = maxFret
	}

	var positions []FretboardPosition
	for str := anchorString; str < anchorString+spec.stringSpan; str++ {
		taken := 0
		for fret := lo; fret <= hi && taken < spec.notesPerString; fret++ {
			note, ok := tuning.NoteAt(str, fret)
			if !ok || !key.Contains(note) {
				continue
			}
			positions = append(positions, FretboardPosition{
				String: str,
				Fret:   fret,
				Note:   note,
				IsRoot: note == key.Root,
			})
			taken++
		}
	}

	want := spec.notesPerString * spec.stringSpan
	if len(positions) != want {
		return nil, false
	}
	fr := fretRangeOf(positions)
	if fr.Max-fr.Min > spec.maxSpan {
		return nil, false
	}

	return &Block{
		ID:          blockID(spec.blockType, positions),
		Type:        spec.blockType,
		StringRange: Range{Min: anchorString, Max: anchorString + spec.stringSpan - 1},
		FretRange:   fr,
		Positions:   positions,
		Description: blockDescription(spec.blockType, key),
	}, true
}

// tripleStringSpan is the string window of a stacked-triad search. The root
// sits on the lowest-pitched string of the window (the highest string
// number), the major third on the next string up in pitch, the perfect
// fifth above that, the way a triad stacks under the hand.
const tripleStringSpan = 3

// tripleFretWindow bounds each chord-tone step to frets near the previous
// tone. Resolving the target pitch class to its nearest occurrence absorbs
// the B-string shift without a special case.
const tripleFretWindow = 2

// searchTriple stacks up to three root-third-fifth triads on one string
// window, starting from root occurrences at or above anchorFret. The anchor
// string carries the roots; valid anchors are strings 3..6. The block is
// accepted with two complete triads but three is the target.
func searchTriple(key Key, tuning Tuning, maxFret, anchorString, anchorFret int) (*Block, bool) {
	if anchorString < tripleStringSpan || anchorString > tuning.Strings() {
		return nil, false
	}
	third := key.Root.Transpose(4)
	fifth := key.Root.Transpose(7)

	var positions []FretboardPosition
	triads := 0
	for _, rootFret := range tuning.FretsFor(key.Root, anchorString, maxFret) {
		if rootFret < anchorFret {
			continue
		}
		thirdFret, ok := tuning.fretNear(third, anchorString-1, rootFret, tripleFretWindow, maxFret)
		if !ok {
			continue
		}
		fifthFret, ok := tuning.fretNear(fifth, anchorString-2, thirdFret, tripleFretWindow, maxFret)
		if !ok {
			continue
		}
		positions = append(positions,
			FretboardPosition{String: anchorString, Fret: rootFret, Note: key.Root, IsRoot: true},
			FretboardPosition{String: anchorString - 1, Fret: thirdFret, Note: third},
			FretboardPosition{String: anchorString - 2, Fret: fifthFret, Note: fifth},
		)
		triads++
		if triads == 3 {
			break
		}
	}

	if len(positions) < 6 {
		return nil, false
	}
	return &Block{
		ID:          blockID(BlockTriple, positions),
		Type:        BlockTriple,
		StringRange: Range{Min: anchorString - tripleStringSpan + 1, Max: anchorString},
		FretRange:   fretRangeOf(positions),
		Positions:   positions,
		Description: blockDescription(BlockTriple, key),
	}, true
}

// SearchBlock runs the single-block search for one type at one anchor.
func SearchBlock(bt BlockType, key Key, anchor FretboardPosition, maxFret int, tuning Tuning) (*Block, bool, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, false, err
	}
	switch bt {
	case BlockHead, BlockBridge:
		spec, _ := specFor(bt)
		b, ok := searchCluster(key, tuning, maxFret, spec, anchor.String, anchor.Fret)
		return b, ok, nil
	case BlockTriple:
		b, ok := searchTriple(key, tuning, maxFret, anchor.String, anchor.Fret)
		return b, ok, nil
	default:
		return nil, false, fmt.Errorf("unknown block type %q", bt)
	}
}

// AllBlocks runs all three searches over every anchor on the board and
// returns the distinct blocks found, capped per type. Blocks may share note
// positions; overlap between neighboring blocks is part of the method.
func AllBlocks(key Key, maxFret int, tuning Tuning) ([]Block, error) {
	if err := tuning.Validate(maxFret); err != nil {
		return nil, err
	}
	var blocks []Block

	for _, spec := range []clusterSpec{headSpec, bridgeSpec} {
		seen := make(map[string]bool)
		count := 0
		for str := spec.firstAnchor; str <= spec.lastAnchor && count < maxBlocksPerType; str++ {
			for fret := 0; fret <= maxFret && count < maxBlocksPerType; fret++ {
				b, ok := searchCluster(key, tuning, maxFret, spec, str, fret)
				if !ok || seen[positionSignature(b.Positions)] {
					continue
				}
				seen[positionSignature(b.Positions)] = true
				blocks = append(blocks, *b)
				count++
			}
		}
	}

	seen := make(map[string]bool)
	count := 0
	for str := tuning.Strings(); str >= tripleStringSpan && count < maxBlocksPerType; str-- {
		for _, rootFret := range tuning.FretsFor(key.Root, str, maxFret) {
			if count >= maxBlocksPerType {
				break
			}
			b, ok := searchTriple(key, tuning, maxFret, str, rootFret)
			if !ok || seen[positionSignature(b.Positions)] {
				continue
			}
			seen[positionSignature(b.Positions)] = true
			blocks = append(blocks, *b)
			count++
		}
	}

	return blocks, nil
}

// Reanchor re-runs the single-block search for prior's type at a new anchor.
// On success the replacement keeps prior's ID; on failure it returns prior
// unchanged so a bad drag never destroys a block.
func Reanchor(prior Block, anchor FretboardPosition, key Key, maxFret int, tuning Tuning) (Block, bool, error) {
	moved, ok, err := SearchBlock(prior.Type, key, anchor, maxFret, tuning)
	if err != nil {
		return prior, false, err
	}
	if !ok {
		return prior, false, nil
	}
	moved.ID = prior.ID
	return *moved, true, nil
}

func fretRangeOf(positions []FretboardPosition) Range {
	r := Range{Min: positions[0].Fret, Max: positions[0].Fret}
	for _, p := range positions[1:] {
		if p.Fret < r.Min {
			r.Min = p.Fret
		}
		if p.Fret > r.Max {
			r.Max = p.Fret
		}
	}
	return r
}

// blockIDNamespace seeds content-derived block IDs. Deriving the ID from the
// position set keeps generator output fully deterministic for fixed inputs;
// a re-anchored block overrides this with the prior block's ID.
var blockIDNamespace = uuid.MustParse("7b1d2c64-9a3f-4a6e-8c05-3f2e1d0b9a87")

func blockID(bt BlockType, positions []FretboardPosition) string {
	return uuid.NewSHA1(blockIDNamespace, []byte(string(bt)+"|"+positionSignature(positions))).String()
}

// positionSignature is the dedup key for a block: its sorted (string, fret)
// set. Two searches that land on the same physical notes are one block.
func positionSignature(positions []FretboardPosition) string {
	keys := make([]string, len(positions))
	for i, p := range positions {
		keys[i] = fmt.Sprintf("%d:%d", p.String, p.Fret)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func blockDescription(bt BlockType, key Key) string {
	switch bt {
	case BlockHead:
		return fmt.Sprintf("HEAD block (XX-X) in %s major", key)
	case BlockBridge:
		return fmt.Sprintf("BRIDGE block (X-XX) in %s major", key)
	default:
		return fmt.Sprintf("TRIPLE block of stacked %s triads", key)
	}
}
