package pool

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spiddekauga/aligntable/internal/debug"
)

type item struct {
	value int
	reset int
}

func (i *item) Reset() {
	i.value = 0
	i.reset++
}

func TestPool_GetPut(t *testing.T) {
	created := 0
	p := New(func() *item {
		created++
		return &item{}
	})

	a := p.Get()
	a.value = 42
	if p.Active() != 1 {
		t.Errorf("Active() = %d, want 1", p.Active())
	}

	p.Put(a)
	if a.value != 0 || a.reset != 1 {
		t.Errorf("Put did not reset: value=%d reset=%d", a.value, a.reset)
	}
	if p.Idle() != 1 {
		t.Errorf("Idle() = %d, want 1", p.Idle())
	}

	b := p.Get()
	if b != a {
		t.Error("Get() after Put should reuse the idle value")
	}
	if created != 1 {
		t.Errorf("created = %d, want 1", created)
	}
}

func TestPool_ForeignValue(t *testing.T) {
	t.Cleanup(func() { _ = debug.Close() })
	var buf bytes.Buffer
	debug.SetOutput(&buf, zerolog.DebugLevel)

	p := New(func() *item { return &item{} })

	foreign := &item{value: 7}
	p.Put(foreign)

	if foreign.value != 0 {
		t.Errorf("foreign value not reset: %d", foreign.value)
	}
	if p.Idle() != 0 {
		t.Errorf("Idle() = %d, want 0 for a value not borrowed from the pool", p.Idle())
	}
	if !strings.Contains(buf.String(), `"message":"pool dropped value"`) {
		t.Errorf("debug log = %q, want dropped value event", buf.String())
	}
}

func TestPool_DoublePutIsLogged(t *testing.T) {
	t.Cleanup(func() { _ = debug.Close() })
	var buf bytes.Buffer
	debug.SetOutput(&buf, zerolog.DebugLevel)

	p := New(func() *item { return &item{} })
	v := p.Get()
	p.Put(v)
	if buf.Len() != 0 {
		t.Fatalf("first Put logged %q, want nothing", buf.String())
	}

	p.Put(v)

	if p.Idle() != 1 {
		t.Errorf("Idle() = %d, want 1", p.Idle())
	}
	if strings.Count(buf.String(), "pool dropped value") != 1 {
		t.Errorf("debug log = %q, want one dropped value event", buf.String())
	}
}

func TestPool_Unbounded(t *testing.T) {
	p := New(func() *item { return &item{} })

	seen := make(map[*item]bool)
	for i := 0; i < 100; i++ {
		v := p.Get()
		if seen[v] {
			t.Fatalf("Get() returned a value that is still borrowed")
		}
		seen[v] = true
	}
	if p.Active() != 100 {
		t.Errorf("Active() = %d, want 100", p.Active())
	}
}
