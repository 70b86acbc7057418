package chainmap

type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	Load         float64
	UsedBuckets  int
	LongestChain int
}

func (t *table[K, V]) Stats() Stats {
	stats := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		LoadFactor: t.loadFactor,
	}

	if t.capacity > 0 {
		stats.Load = float64(t.size) / float64(t.capacity)
	}

	for _, bucket := range t.buckets {
		if len(bucket) == 0 {
			continue
		}

		stats.UsedBuckets++
		stats.LongestChain = max(stats.LongestChain, len(bucket))
	}

	return stats
}
