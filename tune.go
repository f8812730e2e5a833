package qoig

// Tune runs the tuning driver described in spec.md §4.5: it simulates
// the encoder over a size-capped prefix of the image for each
// clen_index in probeOrder (skipping the position reserved for
// clen == 64 when longindex is on), and returns the clen_index that
// produced the smallest simulated byte count together with that count.
//
// rewind must return a fresh RowSource positioned at the first row:
// Tune calls it before every probe so each one sees the same prefix
// from the start.
func Tune(rewind func() RowSource, width, height uint32, channels uint8, base EncodeConfig, totalBytes int, log *Logger) (bestClenIndex int, bestCount int) {
	prefixCap := totalBytes / 10
	if prefixCap < 10000 {
		prefixCap = 10000
	}

	bestCount = -1
	for pos, idx := range probeOrder {
		if base.Longindex && pos == probeSkipPosition {
			continue
		}
		cfg := base
		cfg.ClenIndex = idx
		cfg.Simulate = true
		cfg.Bytecap = prefixCap

		enc := NewEncoder(width, height, channels, 0, cfg)
		_, count, err := enc.Encode(rewind())
		if err != nil {
			continue
		}
		log.probe(idx, count, bestCount)
		if bestCount < 0 || count < bestCount {
			bestCount = count
			bestClenIndex = idx
		}
	}
	log.tuned(bestClenIndex, bestCount)
	return bestClenIndex, bestCount
}
