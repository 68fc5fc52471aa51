package datagen

import "sync"

// KeyPool tracks generated primary-key values per table for FK population.
// A table's slice is append-only while that table generates and read-only
// afterward. Generation is sequential today; the lock keeps the pool safe
// should independent subtrees ever generate in parallel.
type KeyPool struct {
	mu   sync.RWMutex
	pool map[string][]string
}

func NewKeyPool() *KeyPool {
	return &KeyPool{pool: make(map[string][]string)}
}

// Add appends a primary-key value to the table's pool.
func (p *KeyPool) Add(table, key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pool[table] = append(p.pool[table], key)
}

// Random returns a uniformly chosen key from the table's pool. The second
// return is false when the pool is empty or the table is unknown.
func (p *KeyPool) Random(table string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := p.pool[table]
	if len(keys) == 0 {
		return "", false
	}
	return keys[randN(len(keys))], true
}

// Count returns the number of keys recorded for the table.
func (p *KeyPool) Count(table string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pool[table])
}

// Keys returns a copy of the table's key list in generation order.
func (p *KeyPool) Keys(table string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := p.pool[table]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
