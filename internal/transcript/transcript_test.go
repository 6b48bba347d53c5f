package transcript

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/symptom-triage/internal/dataset"
	"github.com/danielpatrickdp/symptom-triage/internal/diagnose"
	"github.com/danielpatrickdp/symptom-triage/internal/dialogue"
	"github.com/danielpatrickdp/symptom-triage/internal/knowledge"
	"github.com/danielpatrickdp/symptom-triage/internal/predict"
	"github.com/danielpatrickdp/symptom-triage/internal/session"
	"github.com/danielpatrickdp/symptom-triage/internal/triage"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()
	data, err := dataset.NewStore(":memory:")
	if err != nil {
		t.Fatalf("dataset store: %v", err)
	}
	t.Cleanup(func() { data.Close() })

	kb, err := knowledge.NewStore(data.DB(), nil)
	if err != nil {
		t.Fatalf("knowledge store: %v", err)
	}
	policy := diagnose.NewPolicy(data, predict.NewNaiveBayes(), kb, nil)
	return NewHarness(triage.NewAssistant(policy))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	orig := New("fever-case", "I have a high fever", "it started yesterday")

	if err := Save(path, orig); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Name != orig.Name {
		t.Errorf("name = %q, want %q", loaded.Name, orig.Name)
	}
	if len(loaded.Turns) != len(orig.Turns) {
		t.Fatalf("got %d turns, want %d", len(loaded.Turns), len(orig.Turns))
	}
	for i := range orig.Turns {
		if loaded.Turns[i] != orig.Turns[i] {
			t.Errorf("turn %d = %+v, want %+v", i, loaded.Turns[i], orig.Turns[i])
		}
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Load succeeded on a missing file")
		}
	})
	t.Run("empty transcript", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		if err := Save(path, Transcript{Name: "empty"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load succeeded on a transcript with no turns")
		}
	})
}

func TestRunRecordsEveryTurn(t *testing.T) {
	h := newTestHarness(t)
	tr := New("guided",
		"I have a high fever and I keep coughing",
		"no pain",
		"two days",
	)

	results, st := h.Run(tr)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Reply != dialogue.Questions[session.SlotPain] {
		t.Errorf("turn 1 reply = %q, want the pain question", results[0].Reply)
	}
	if results[0].SymptomCount != 2 {
		t.Errorf("turn 1 symptom count = %d, want 2", results[0].SymptomCount)
	}
	for i, r := range results {
		if r.TurnID != tr.Turns[i].TurnID {
			t.Errorf("result %d turn id = %q, want %q", i, r.TurnID, tr.Turns[i].TurnID)
		}
		if r.Stage != session.StageGatheringDetails {
			t.Errorf("result %d stage = %s, want %s", i, r.Stage, session.StageGatheringDetails)
		}
	}
	if st.CurrentSlot != session.SlotFever {
		t.Errorf("final slot = %q, want %q", st.CurrentSlot, session.SlotFever)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	tr := New("repeat",
		"I have a high fever and I keep coughing",
		"no other pain",
		"please give me a diagnosis",
	)

	a, _ := newTestHarness(t).Run(tr)
	b, _ := newTestHarness(t).Run(tr)

	if len(a) != len(b) {
		t.Fatalf("result lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Reply != b[i].Reply || a[i].Stage != b[i].Stage || a[i].SymptomCount != b[i].SymptomCount {
			t.Errorf("turn %d differs between runs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}
