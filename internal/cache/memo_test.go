package cache

import (
	"errors"
	"testing"
)

func TestMemoComputesOncePerKey(t *testing.T) {
	m := NewMemo[string]()
	calls := 0
	compute := func() (string, error) {
		calls++
		return "result", nil
	}

	for i := 0; i < 3; i++ {
		v, err := m.Do("key", compute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "result" {
			t.Fatalf("unexpected value: %s", v)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 computation, got %d", calls)
	}
}

func TestMemoDoesNotCacheErrors(t *testing.T) {
	m := NewMemo[string]()
	calls := 0
	fail := errors.New("transient")
	compute := func() (string, error) {
		calls++
		if calls == 1 {
			return "", fail
		}
		return "ok", nil
	}

	if _, err := m.Do("key", compute); !errors.Is(err, fail) {
		t.Fatalf("expected transient error, got %v", err)
	}
	v, err := m.Do("key", compute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ok" || calls != 2 {
		t.Fatalf("expected recomputation after failure, got v=%s calls=%d", v, calls)
	}
}

func TestMemoSeparateKeys(t *testing.T) {
	m := NewMemo[int]()
	a, _ := m.Do("a", func() (int, error) { return 1, nil })
	b, _ := m.Do("b", func() (int, error) { return 2, nil })
	if a != 1 || b != 2 || m.Len() != 2 {
		t.Fatalf("expected two independent entries, got a=%d b=%d len=%d", a, b, m.Len())
	}
}
