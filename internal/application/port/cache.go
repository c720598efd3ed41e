package port

// Cache keeps values in memory in front of a slower store. Implementations
// are safe for concurrent use and may evict entries at any time, so a miss
// only means "ask the store".
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Remove(key K)
	Len() int
}
