// Package chancing estimates a student's admission chance at a college.
//
// The estimate is a deterministic heuristic, not a trained model: metric scores
// with diminishing returns are weighted, mapped into the range allowed by the
// college's selectivity tier, capped for the most selective tiers, then
// classified with rules that let selectivity override the number.
package chancing

// Engine is safe for concurrent use; it holds no mutable state.
type Engine struct {
	conf Config
}

func NewEngine(conf Config) *Engine {
	return &Engine{conf: conf}
}

// NewDefaultEngine returns an Engine using DefaultConfig with the given college defaults.
func NewDefaultEngine(defaults Defaults) *Engine {
	conf := DefaultConfig()
	conf.Defaults = defaults
	return NewEngine(conf)
}

func (e *Engine) Config() Config { return e.conf }

// Estimate returns nil when either the student or the college is missing.
// Sparse inputs are never an error: unknown metrics score neutral.
func (e *Engine) Estimate(student *StudentProfile, college *CollegeRecord) *Result {
	if student == nil || college == nil {
		return nil
	}

	ratePct := NormalizeAcceptanceRate(college.AcceptanceRate)
	chance, factors := e.conf.Aggregate(*student, *college, ratePct)
	category, recommendation := e.conf.Classifier.Classify(chance, ratePct)

	return &Result{
		Chance:         chance,
		Category:       category,
		Factors:        factors,
		Recommendation: recommendation,
	}
}
