package ytpilot

import "ytpilot/labeler"

// Label codes one comment text with the built-in dictionary and returns the
// full prediction with detections and rule trace. It is a convenience
// wrapper for one-off use; batch callers should construct a labeler.Labeler
// once and reuse it.
func Label(text string) (*labeler.Prediction, error) {
	l, err := labeler.New(nil)
	if err != nil {
		return nil, err
	}
	return l.PredictDetailed(text)
}

// LabelColumns codes one comment text and returns only the 0/1 prediction
// columns (pred_VP .. pred_Mobi).
func LabelColumns(text string) (map[string]int, error) {
	l, err := labeler.New(nil)
	if err != nil {
		return nil, err
	}
	return l.Predict(text)
}
