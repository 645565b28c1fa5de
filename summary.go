package sortcheck

// Summary is the exchangeable state of a permutation accumulator: element
// counts and hash sums for the pre and post channels.
//
// Sums wrap modulo 2^64. Go defines unsigned overflow as wrapping, so equal
// multisets give equal sums regardless of the order they were added in.
type Summary struct {
	CountPre  uint64 `json:"count_pre"`
	CountPost uint64 `json:"count_post"`
	SumPre    uint64 `json:"sum_pre"`
	SumPost   uint64 `json:"sum_post"`
}

// Merge returns the channel-wise total of s and o.
func (s Summary) Merge(o Summary) Summary {
	return Summary{
		CountPre:  s.CountPre + o.CountPre,
		CountPost: s.CountPost + o.CountPost,
		SumPre:    s.SumPre + o.SumPre,
		SumPost:   s.SumPost + o.SumPost,
	}
}

// IsLikelyPermutation reports whether the post channel matches the pre channel.
func (s Summary) IsLikelyPermutation() bool {
	return s.CountPre == s.CountPost && s.SumPre == s.SumPost
}

// MergeSummaries returns the total of all summaries.
func MergeSummaries(summaries ...Summary) Summary {
	var total Summary
	for _, s := range summaries {
		total = total.Merge(s)
	}
	return total
}
