package session

import "testing"

func TestNewSeedsGreeting(t *testing.T) {
	st := New()
	if len(st.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(st.History))
	}
	first := st.History[0]
	if first.Text != Greeting || first.Role != RoleAssistant {
		t.Errorf("first turn = %+v, want the assistant greeting", first)
	}
	if st.Stage != StageGatheringInitial {
		t.Errorf("stage = %s, want %s", st.Stage, StageGatheringInitial)
	}
	if st.CurrentSlot != SlotNone {
		t.Errorf("slot = %q, want none", st.CurrentSlot)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	st := New()
	st.Stage = StagePostDiagnosis
	st.CurrentSlot = SlotFever
	st.AddSymptom("cough")
	st.FoundSymptomInLastTurn = true
	st.RepetitionCount = 2
	st.DiagnosisMade = true
	st.LastReply = "something"
	st.AddUserTurn("hello")
	st.AddAssistantTurn("hi")

	st.Reset()

	fresh := New()
	if st.Stage != fresh.Stage || st.CurrentSlot != fresh.CurrentSlot {
		t.Errorf("stage/slot = %s/%q after reset", st.Stage, st.CurrentSlot)
	}
	if st.SymptomCount() != 0 || st.FoundSymptomInLastTurn || st.RepetitionCount != 0 ||
		st.DiagnosisMade || st.LastReply != "" {
		t.Errorf("reset left residual state: %+v", st)
	}
	if len(st.History) != 1 || st.History[0].Text != Greeting {
		t.Errorf("history = %+v, want greeting only", st.History)
	}
}

func TestAddSymptomIsSetLike(t *testing.T) {
	st := New()
	if !st.AddSymptom("cough") {
		t.Error("first add returned false")
	}
	if st.AddSymptom("cough") {
		t.Error("duplicate add returned true")
	}
	if st.SymptomCount() != 1 {
		t.Errorf("count = %d, want 1", st.SymptomCount())
	}
}

func TestSymptomsSorted(t *testing.T) {
	st := New()
	for _, id := range []string{"headache", "back_pain", "cough"} {
		st.AddSymptom(id)
	}
	got := st.Symptoms()
	want := []string{"back_pain", "cough", "headache"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("symptoms = %v, want %v", got, want)
		}
	}
}

func TestLastAssistantTexts(t *testing.T) {
	st := New()
	st.AddUserTurn("one")
	st.AddAssistantTurn("reply one")
	st.AddUserTurn("two")
	st.AddAssistantTurn("reply two")

	got := st.LastAssistantTexts(2)
	if len(got) != 2 || got[0] != "reply two" || got[1] != "reply one" {
		t.Errorf("LastAssistantTexts(2) = %v", got)
	}
	if all := st.LastAssistantTexts(10); len(all) != 3 {
		t.Errorf("LastAssistantTexts(10) returned %d texts, want 3", len(all))
	}
}
