package actionport

import "testing"

func TestDefine(t *testing.T) {
	t.Run("creator constructs tagged action", func(t *testing.T) {
		s := NewSchema()
		increment := Define(s, "increment", func(n int) int { return n })

		a := increment.New(5)
		if a.Tag != "increment" {
			t.Errorf("Tag = %q, want %q", a.Tag, "increment")
		}
		if a.Payload != 5 {
			t.Errorf("Payload = %v, want 5", a.Payload)
		}
	})

	t.Run("transform shapes the payload", func(t *testing.T) {
		type moved struct {
			X, Y int
		}
		s := NewSchema()
		move := Define(s, "move", func(m moved) moved { return moved{X: m.X * 2, Y: m.Y * 2} })

		a := move.New(moved{X: 1, Y: 2})
		if a.Payload != (moved{X: 2, Y: 4}) {
			t.Errorf("Payload = %v", a.Payload)
		}
	})

	t.Run("duplicate tag panics", func(t *testing.T) {
		s := NewSchema()
		Define(s, "increment", func(n int) int { return n })

		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate tag")
			}
		}()
		Define(s, "increment", func(s string) string { return s })
	})

	t.Run("empty tag panics", func(t *testing.T) {
		s := NewSchema()

		defer func() {
			if recover() == nil {
				t.Error("expected panic on empty tag")
			}
		}()
		Define(s, "", func(n int) int { return n })
	})

	t.Run("nil transform panics", func(t *testing.T) {
		s := NewSchema()

		defer func() {
			if recover() == nil {
				t.Error("expected panic on nil transform")
			}
		}()
		Define[int, int](s, "increment", nil)
	})
}

func TestDefine2(t *testing.T) {
	type pair struct {
		Name  string
		Count int
	}

	s := NewSchema()
	record := Define2(s, "record", func(name string, count int) pair {
		return pair{Name: name, Count: count}
	})

	a := record.New("hits", 3)
	if a.Tag != "record" {
		t.Errorf("Tag = %q, want %q", a.Tag, "record")
	}
	if a.Payload != (pair{Name: "hits", Count: 3}) {
		t.Errorf("Payload = %v", a.Payload)
	}
}

func TestSignal(t *testing.T) {
	t.Run("action carries no payload", func(t *testing.T) {
		s := NewSchema()
		reset := Signal(s, "reset")

		a := reset.New()
		if a.Tag != "reset" {
			t.Errorf("Tag = %q, want %q", a.Tag, "reset")
		}
		if a.Payload != nil {
			t.Errorf("Payload = %v, want nil", a.Payload)
		}
	})

	t.Run("shares tag namespace with Define", func(t *testing.T) {
		s := NewSchema()
		Define(s, "reset", func(n int) int { return n })

		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate tag")
			}
		}()
		Signal(s, "reset")
	})
}

func TestSchema(t *testing.T) {
	s := NewSchema()
	Define(s, "increment", func(n int) int { return n })
	Signal(s, "reset")
	Define2(s, "rename", func(from, to string) [2]string { return [2]string{from, to} })

	t.Run("Has reports declared tags", func(t *testing.T) {
		for _, tag := range []string{"increment", "reset", "rename"} {
			if !s.Has(tag) {
				t.Errorf("Has(%q) = false, want true", tag)
			}
		}
		if s.Has("missing") {
			t.Error(`Has("missing") = true, want false`)
		}
	})

	t.Run("Tags returns sorted tags", func(t *testing.T) {
		got := s.Tags()
		want := []string{"increment", "rename", "reset"}
		if len(got) != len(want) {
			t.Fatalf("Tags() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Tags()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})
}
