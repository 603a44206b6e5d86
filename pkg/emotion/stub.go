package emotion

import "context"

// Stub is a Predictor for local runs and tests. It replays scripted deltas
// and falls back to a fixed delta once the script is exhausted.
type Stub struct {
	Delta  float64
	Script []float64
	Err    error

	calls int
}

func (s *Stub) Predict(ctx context.Context, features FeatureVector) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if s.calls < len(s.Script) {
		d := s.Script[s.calls]
		s.calls++
		return d, nil
	}
	s.calls++
	return s.Delta, nil
}
