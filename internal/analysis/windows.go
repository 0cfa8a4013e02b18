package analysis

// windowSize is how many sessions each comparison window holds at most.
const windowSize = 3

// mean averages values; zero for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// windows splits a most-recent-first value list into the recent and older
// comparison windows: the first min(3, n) values and the last min(3, n)
// values. With fewer than six values the windows deliberately overlap, which
// dampens the reported change on short histories instead of comparing single
// noisy sessions.
func windows(values []float64) (recent, older []float64) {
	n := len(values)
	k := windowSize
	if n < k {
		k = n
	}
	return values[:k], values[n-k:]
}

// windowDelta aggregates both windows of a metric's value list and classifies
// the change. ok is false when there are fewer than two values or the older
// window mean is zero.
func windowDelta(values []float64, metric Metric) (recentMean, olderMean float64, d Delta, ok bool) {
	if len(values) < 2 {
		return 0, 0, Delta{}, false
	}
	recent, older := windows(values)
	recentMean = mean(recent)
	olderMean = mean(older)
	d, ok = Classify(recentMean, olderMean, metric)
	return recentMean, olderMean, d, ok
}
