package datagen

import "testing"

func TestKeyPoolEmpty(t *testing.T) {
	pool := NewKeyPool()

	if _, ok := pool.Random("companies"); ok {
		t.Error("expected no key from an empty pool")
	}
	if pool.Count("companies") != 0 {
		t.Errorf("expected count 0, got %d", pool.Count("companies"))
	}
}

func TestKeyPoolAddAndRandom(t *testing.T) {
	pool := NewKeyPool()
	pool.Add("companies", "a")
	pool.Add("companies", "b")
	pool.Add("companies", "c")

	if pool.Count("companies") != 3 {
		t.Fatalf("expected count 3, got %d", pool.Count("companies"))
	}

	members := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < 50; i++ {
		key, ok := pool.Random("companies")
		if !ok {
			t.Fatal("expected a key from a populated pool")
		}
		if !members[key] {
			t.Fatalf("Random returned %q, not a pool member", key)
		}
	}
}

func TestKeyPoolKeysPreserveOrder(t *testing.T) {
	pool := NewKeyPool()
	pool.Add("roles", "1")
	pool.Add("roles", "2")
	pool.Add("roles", "3")

	keys := pool.Keys("roles")
	for i, want := range []string{"1", "2", "3"} {
		if keys[i] != want {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want)
		}
	}

	// Keys returns a copy; mutating it must not touch the pool.
	keys[0] = "mutated"
	if pool.Keys("roles")[0] != "1" {
		t.Error("Keys must return a copy")
	}
}
