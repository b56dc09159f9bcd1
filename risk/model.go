package risk

import (
	"github.com/cardiolabs/cvdrisk/subject"
)

// Model is the common interface of the cardiovascular risk models. A model
// computes the probability of developing a cardiovascular disease for a
// single validated subject record.
type Model interface {
	// Name returns the unique model name.
	Name() string
	// Template returns the subject template the model scores.
	Template() *subject.Template
	// ScoreOne computes the risk probability for given subject record.
	ScoreOne(record *subject.Record) (float64, error)
}
