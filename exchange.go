package sortcheck

import (
	"fmt"

	"github.com/hupe1980/sortcheck/codec"
)

// EncodeSummary frames a rank's local permutation summary for round. A nil
// codec selects codec.Default.
func EncodeSummary(c codec.Codec, round uint64, rank int, s Summary) ([]byte, error) {
	return codec.Encode(c, round, rank, s)
}

// EncodeSortSummary frames a rank's sort snapshot for round.
func EncodeSortSummary[T any](c codec.Codec, round uint64, rank int, s SortSummary[T]) ([]byte, error) {
	return codec.Encode(c, round, rank, s)
}

// DecodeSummaries decodes one frame per rank, in any arrival order, and
// returns the round they share with the summaries in rank order.
//
// The frames must carry the same round and the ranks 0..len(frames)-1 each
// exactly once.
func DecodeSummaries(frames [][]byte) (uint64, []Summary, error) {
	return decodeFrames[Summary](frames)
}

// DecodeSortSummaries is DecodeSummaries for sort snapshots. Rank order is
// final partition order.
func DecodeSortSummaries[T any](frames [][]byte) (uint64, []SortSummary[T], error) {
	return decodeFrames[SortSummary[T]](frames)
}

func decodeFrames[P any](frames [][]byte) (uint64, []P, error) {
	out := make([]P, len(frames))
	seen := make([]bool, len(frames))

	var round uint64
	for i, data := range frames {
		f, err := codec.Decode[P](data)
		if err != nil {
			return 0, nil, fmt.Errorf("frame %d: %w", i, err)
		}

		if i == 0 {
			round = f.Round
		} else if f.Round != round {
			return 0, nil, &ErrRoundMismatch{Want: round, Got: f.Round, Rank: f.Rank}
		}

		if f.Rank < 0 || f.Rank >= len(frames) {
			return 0, nil, &ErrRank{Rank: f.Rank, Ranks: len(frames)}
		}
		if seen[f.Rank] {
			return 0, nil, &ErrRank{Rank: f.Rank, Ranks: len(frames), Duplicate: true}
		}
		seen[f.Rank] = true
		out[f.Rank] = f.Payload
	}
	return round, out, nil
}
