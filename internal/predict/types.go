package predict

// #region prediction

// Prediction pairs a disease label with its predicted probability.
type Prediction struct {
	Label       string
	Probability float64
}

// #endregion prediction

// #region classifier

// Classifier is the classification capability consumed by the decision
// policy: given a feature matrix and labels, produce a model mapping a
// symptom-presence vector to a probability distribution over disease labels.
// Train is idempotent for a fixed dataset and safe to call repeatedly.
// Predict returns the full distribution sorted descending by probability;
// ties keep the trained label order.
type Classifier interface {
	Train(X [][]float64, y []string) error
	Predict(vec []float64) ([]Prediction, error)
}

// #endregion classifier
