package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestLRUSetGet(t *testing.T) {
	c := NewLRUCache(10)
	ctx := context.Background()

	if err := c.Set(ctx, "example.com", []byte(`{"score":40}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := c.Get(ctx, "example.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"score":40}` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestLRUMissIsNilNil(t *testing.T) {
	c := NewLRUCache(10)

	got, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if got != nil {
		t.Errorf("miss should return nil value, got %s", got)
	}
}

func TestLRUTTLExpiry(t *testing.T) {
	c := NewLRUCache(10)
	ctx := context.Background()

	c.Set(ctx, "example.com", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	got, err := c.Get(ctx, "example.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Error("expired entry should be a miss")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be evicted on access, len=%d", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCache(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		c.Set(ctx, fmt.Sprintf("d%d.com", i), []byte("v"), time.Minute)
	}

	// Touch d0 so d1 becomes the least recently used.
	c.Get(ctx, "d0.com")
	c.Set(ctx, "d3.com", []byte("v"), time.Minute)

	if got, _ := c.Get(ctx, "d1.com"); got != nil {
		t.Error("least recently used entry should be evicted")
	}
	if got, _ := c.Get(ctx, "d0.com"); got == nil {
		t.Error("recently used entry should survive")
	}
	if c.Len() != 3 {
		t.Errorf("cache should hold at most 3 entries, len=%d", c.Len())
	}
}

func TestLRUOverwrite(t *testing.T) {
	c := NewLRUCache(10)
	ctx := context.Background()

	c.Set(ctx, "example.com", []byte("old"), time.Minute)
	c.Set(ctx, "example.com", []byte("new"), time.Minute)

	got, _ := c.Get(ctx, "example.com")
	if string(got) != "new" {
		t.Errorf("overwrite lost: %s", got)
	}
	if c.Len() != 1 {
		t.Errorf("overwrite should not grow the cache, len=%d", c.Len())
	}
}

func TestLRUDeleteAndClose(t *testing.T) {
	c := NewLRUCache(10)
	ctx := context.Background()

	c.Set(ctx, "a.com", []byte("v"), time.Minute)
	c.Set(ctx, "b.com", []byte("v"), time.Minute)

	if err := c.Delete(ctx, "a.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got, _ := c.Get(ctx, "a.com"); got != nil {
		t.Error("deleted entry still present")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("close should drop all entries, len=%d", c.Len())
	}
}
