package predict

import (
	"math"
	"testing"
)

// A tiny separable dataset: flu presents with fever+cough, cold with
// sneeze+cough, rash alone means allergy. Features: fever, cough, sneeze, rash.
var (
	trainX = [][]float64{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
	}
	trainY = []string{"Flu", "Flu", "Cold", "Cold", "Allergy", "Allergy"}
)

func trained(t *testing.T) *NaiveBayes {
	t.Helper()
	nb := NewNaiveBayes()
	if err := nb.Train(trainX, trainY); err != nil {
		t.Fatalf("Train: %v", err)
	}
	return nb
}

func TestPredictDistribution(t *testing.T) {
	nb := trained(t)
	preds, err := nb.Predict([]float64{1, 1, 0, 0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(preds) != 3 {
		t.Fatalf("got %d predictions, want one per label", len(preds))
	}

	sum := 0.0
	for i, p := range preds {
		if p.Probability < 0 || p.Probability > 1 {
			t.Errorf("prediction %d probability %f out of range", i, p.Probability)
		}
		if i > 0 && p.Probability > preds[i-1].Probability {
			t.Errorf("predictions not sorted descending at index %d", i)
		}
		sum += p.Probability
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %f, want 1", sum)
	}

	if preds[0].Label != "Flu" {
		t.Errorf("top label = %q, want Flu for a fever+cough vector", preds[0].Label)
	}
}

func TestPredictDeterministic(t *testing.T) {
	// Same data, two independent models, identical output.
	a := trained(t)
	b := trained(t)

	vec := []float64{0, 1, 1, 0}
	pa, err := a.Predict(vec)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	pb, err := b.Predict(vec)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("prediction %d differs between identically trained models: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestPredictTieBreakIsLabelOrder(t *testing.T) {
	// Two labels with mirror-image evidence; an all-zero query vector scores
	// them identically, so sorted label order must decide.
	nb := NewNaiveBayes()
	X := [][]float64{{1, 0}, {0, 1}}
	y := []string{"Zeta", "Alpha"}
	if err := nb.Train(X, y); err != nil {
		t.Fatalf("Train: %v", err)
	}
	preds, err := nb.Predict([]float64{0, 0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if preds[0].Probability != preds[1].Probability {
		t.Fatalf("expected a tie, got %f vs %f", preds[0].Probability, preds[1].Probability)
	}
	if preds[0].Label != "Alpha" {
		t.Errorf("tie broken to %q, want Alpha first", preds[0].Label)
	}
}

func TestTrainErrors(t *testing.T) {
	tests := []struct {
		name string
		X    [][]float64
		y    []string
	}{
		{"empty matrix", nil, nil},
		{"row label mismatch", [][]float64{{1, 0}}, []string{"A", "B"}},
		{"zero width", [][]float64{{}}, []string{"A"}},
		{"ragged rows", [][]float64{{1, 0}, {1}}, []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewNaiveBayes().Train(tt.X, tt.y); err == nil {
				t.Error("Train succeeded, want error")
			}
		})
	}
}

func TestPredictErrors(t *testing.T) {
	t.Run("untrained", func(t *testing.T) {
		if _, err := NewNaiveBayes().Predict([]float64{1}); err == nil {
			t.Error("Predict on untrained model succeeded, want error")
		}
	})
	t.Run("wrong width", func(t *testing.T) {
		nb := trained(t)
		if _, err := nb.Predict([]float64{1, 0}); err == nil {
			t.Error("Predict with wrong vector width succeeded, want error")
		}
	})
}
