package bot

import "github.com/rocketscienceinc/morpion/internal/entity"

type positionKey struct {
	board  uint32
	toMove entity.Side
}

type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// probabilityCache - transposition table for win probabilities. Positions are keyed exactly, so an entry
// always holds the value the recursion computed for that very position.
type probabilityCache struct {
	entries map[positionKey]float64
	hits    uint64
	misses  uint64
}

func newProbabilityCache() *probabilityCache {
	return &probabilityCache{
		entries: make(map[positionKey]float64),
	}
}

func (that *probabilityCache) Get(key positionKey) (float64, bool) {
	probability, ok := that.entries[key]
	if ok {
		that.hits++
	} else {
		that.misses++
	}

	return probability, ok
}

func (that *probabilityCache) Put(key positionKey, probability float64) {
	that.entries[key] = probability
}

func (that *probabilityCache) Stats() CacheStats {
	return CacheStats{
		Hits:    that.hits,
		Misses:  that.misses,
		Entries: len(that.entries),
	}
}
