package knowledge

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// #region fakes

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.text, g.err
}

// #endregion fakes

func newTestStore(t *testing.T, gen *stubGenerator) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var s *Store
	if gen == nil {
		s, err = NewStore(db, nil)
	} else {
		s, err = NewStore(db, gen)
	}
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestDescribe(t *testing.T) {
	s := newTestStore(t, nil)

	overview, ok := s.Describe("Common Cold")
	if !ok {
		t.Fatal("Describe(Common Cold) not found")
	}
	if !strings.Contains(strings.ToLower(overview), "viral") {
		t.Errorf("overview = %q, want a viral-infection description", overview)
	}

	if _, ok := s.Describe("Unicorn Flu"); ok {
		t.Error("Describe returned an entry for an unknown disease")
	}
}

func TestCoverageMatchesSeed(t *testing.T) {
	s := newTestStore(t, nil)
	info, guidance, err := s.Coverage()
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	if info != len(seedInfo) {
		t.Errorf("info count = %d, want %d", info, len(seedInfo))
	}
	var wantGuidance int
	for _, e := range seedGuidance {
		wantGuidance += len(e.Items)
	}
	if guidance != wantGuidance {
		t.Errorf("guidance count = %d, want %d", guidance, wantGuidance)
	}
}

func TestRecommendations_StoredSectionsWin(t *testing.T) {
	gen := &stubGenerator{text: "generated advice"}
	s := newTestStore(t, gen)

	g := s.Recommendations(context.Background(), "Common Cold")
	if g.Empty() {
		t.Fatal("no guidance for a seeded disease")
	}
	if len(g.Lifestyle) == 0 || len(g.Diet) == 0 {
		t.Errorf("missing seeded sections: %+v", g)
	}
	if g.GeneratedText != "" {
		t.Errorf("generated text present despite stored sections: %q", g.GeneratedText)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for a covered disease, want 0", gen.calls)
	}
}

func TestRecommendations_GenerativeFallback(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gen := &stubGenerator{text: "Drink fluids and rest."}
		s := newTestStore(t, gen)

		g := s.Recommendations(context.Background(), "Unicorn Flu")
		if g.GeneratedText != "Drink fluids and rest." {
			t.Errorf("generated text = %q", g.GeneratedText)
		}
		if gen.calls != 1 {
			t.Errorf("generator called %d times, want 1", gen.calls)
		}
	})

	t.Run("failure degrades to placeholder", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("rate limited")}
		s := newTestStore(t, gen)

		g := s.Recommendations(context.Background(), "Unicorn Flu")
		if g.GeneratedText != AIUnavailable {
			t.Errorf("generated text = %q, want unavailable placeholder", g.GeneratedText)
		}
	})

	t.Run("blank output degrades to placeholder", func(t *testing.T) {
		gen := &stubGenerator{text: "   \n"}
		s := newTestStore(t, gen)

		g := s.Recommendations(context.Background(), "Unicorn Flu")
		if g.GeneratedText != AIUnavailable {
			t.Errorf("generated text = %q, want unavailable placeholder", g.GeneratedText)
		}
	})

	t.Run("nil generator yields empty guidance", func(t *testing.T) {
		s := newTestStore(t, nil)
		g := s.Recommendations(context.Background(), "Unicorn Flu")
		if !g.Empty() {
			t.Errorf("guidance = %+v, want empty", g)
		}
	})
}
