package usecase

import "errors"

var (
	ErrModelUnavailable = errors.New("model artifacts not loaded")
	ErrBadPrediction    = errors.New("model returned an unusable prediction")
)
