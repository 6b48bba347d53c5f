// Package predict implements the classification boundary used for diagnosis.
// The in-process model is a Bernoulli naive Bayes over binary
// symptom-presence vectors: stock, deterministic, and cheap enough to train
// fresh on every invocation.
package predict

// #region imports
import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// #endregion

// #region naive-bayes

// NaiveBayes is a Bernoulli naive Bayes classifier with Laplace smoothing.
// The zero value is unusable until Train has been called.
type NaiveBayes struct {
	labels     []string    // sorted; defines tie-break order
	logPrior   []float64   // per label
	logPresent [][]float64 // [label][feature] log P(x_j = 1 | label)
	logAbsent  [][]float64 // [label][feature] log P(x_j = 0 | label)
	features   int
	trained    bool
}

// NewNaiveBayes returns an untrained classifier.
func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{}
}

// #endregion naive-bayes

// #region train

// Train fits the model on a binary feature matrix and its disease labels.
// Retraining on the same data yields the same model.
func (nb *NaiveBayes) Train(X [][]float64, y []string) error {
	if len(X) == 0 {
		return errors.New("train: empty feature matrix")
	}
	if len(X) != len(y) {
		return fmt.Errorf("train: %d rows but %d labels", len(X), len(y))
	}
	features := len(X[0])
	if features == 0 {
		return errors.New("train: zero-width feature matrix")
	}

	caseCount := make(map[string]int)
	presentCount := make(map[string][]float64)
	for i, row := range X {
		if len(row) != features {
			return fmt.Errorf("train: row %d has %d features, want %d", i, len(row), features)
		}
		label := y[i]
		caseCount[label]++
		counts, ok := presentCount[label]
		if !ok {
			counts = make([]float64, features)
			presentCount[label] = counts
		}
		for j, v := range row {
			if v > 0 {
				counts[j]++
			}
		}
	}

	labels := make([]string, 0, len(caseCount))
	for label := range caseCount {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	total := float64(len(X))
	nb.labels = labels
	nb.logPrior = make([]float64, len(labels))
	nb.logPresent = make([][]float64, len(labels))
	nb.logAbsent = make([][]float64, len(labels))
	for li, label := range labels {
		n := float64(caseCount[label])
		nb.logPrior[li] = math.Log(n / total)
		nb.logPresent[li] = make([]float64, features)
		nb.logAbsent[li] = make([]float64, features)
		for j := 0; j < features; j++ {
			// Laplace smoothing keeps unseen feature/label pairs off zero.
			p := (presentCount[label][j] + 1) / (n + 2)
			nb.logPresent[li][j] = math.Log(p)
			nb.logAbsent[li][j] = math.Log(1 - p)
		}
	}
	nb.features = features
	nb.trained = true
	return nil
}

// #endregion train

// #region predict

// Predict returns the probability distribution over disease labels for one
// symptom-presence vector, sorted descending. Equal probabilities keep the
// trained (sorted) label order.
func (nb *NaiveBayes) Predict(vec []float64) ([]Prediction, error) {
	if !nb.trained {
		return nil, errors.New("predict: model not trained")
	}
	if len(vec) != nb.features {
		return nil, fmt.Errorf("predict: vector has %d features, want %d", len(vec), nb.features)
	}

	scores := make([]float64, len(nb.labels))
	for li := range nb.labels {
		score := nb.logPrior[li]
		for j, v := range vec {
			if v > 0 {
				score += nb.logPresent[li][j]
			} else {
				score += nb.logAbsent[li][j]
			}
		}
		scores[li] = score
	}

	// Log-sum-exp normalization with max subtraction for stability.
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	sum := 0.0
	probs := make([]float64, len(scores))
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}

	out := make([]Prediction, len(nb.labels))
	for i, label := range nb.labels {
		out[i] = Prediction{Label: label, Probability: probs[i] / sum}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	return out, nil
}

// #endregion predict
