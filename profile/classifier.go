package profile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/millfab/sectio/model"
)

// Classifier determines the stock-shape family and measurements of solid
// bodies. A Classifier is immutable after construction and safe for
// concurrent use; each call to Classify works entirely on its own input and
// local state.
type Classifier struct {
	config Config
	log    *zap.Logger
}

// New creates a classifier with default thresholds.
func New() *Classifier {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a classifier with the given configuration. A nil
// Logger disables stage tracing.
func NewWithConfig(cfg Config) *Classifier {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{config: cfg, log: log}
}

// Classify classifies one body using default thresholds.
func Classify(fs *model.FaceSet) (*model.ProfileResult, error) {
	return New().Classify(fs)
}

// Classify determines the shape family and measurements of the body
// described by fs. The only error return is a structural precondition
// violation in the input; every valid input yields a result, possibly
// ShapeUnknown with diagnostics explaining why.
func (c *Classifier) Classify(fs *model.FaceSet) (*model.ProfileResult, error) {
	if err := fs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid face set: %w", err)
	}

	r := &run{
		cfg:   c.config,
		log:   c.log,
		faces: fs.Faces,
	}

	if len(r.faces) < 2 {
		r.diagnose(model.DiagnosticInsufficientFaces,
			"%d face(s) cannot form a closed body with identifiable end caps", len(r.faces))
		return r.assemble(), nil
	}

	r.resolveAxis()
	if !r.axisOK {
		return r.assemble(), nil
	}
	r.resolvePrimaries()

	if r.hasCyl {
		r.log.Debug("taking round path", zap.Int("primaries", len(r.primaryIdx)))
		r.classifyRound()
	} else {
		r.log.Debug("taking prismatic path", zap.Int("primaries", len(r.primaryIdx)))
		r.classifyPrismatic()
	}

	return r.assemble(), nil
}

// run carries the working state of one classification call. All fields are
// built fresh per call and discarded with it.
type run struct {
	cfg   Config
	log   *zap.Logger
	faces []model.Face

	axis   model.Vector3
	axisOK bool

	// outerCyl is the largest-radius cylindrical face, when one exists.
	outerCyl model.Cylinder
	hasCyl   bool

	// primaryIdx indexes the end-cap faces within faces.
	primaryIdx map[int]bool

	res   model.ProfileResult
	diags []model.Diagnostic
}

// diagnose records an advisory finding. Messages are formatted from
// measurements and counts only, never from face identity, so identical
// bodies diagnose identically regardless of face order.
func (r *run) diagnose(kind model.DiagnosticKind, format string, args ...any) {
	r.diags = append(r.diags, model.Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *run) isPrimary(i int) bool {
	return r.primaryIdx[i]
}

// assemble finalizes the result: diagnostics are attached in pipeline order
// with duplicates of the same kind dropped.
func (r *run) assemble() *model.ProfileResult {
	seen := make(map[model.DiagnosticKind]bool, len(r.diags))
	for _, d := range r.diags {
		if seen[d.Kind] {
			continue
		}
		seen[d.Kind] = true
		r.res.Diagnostics = append(r.res.Diagnostics, d)
	}

	r.log.Debug("classified",
		zap.String("shape", r.res.Shape.String()),
		zap.Float64("length", r.res.Length),
		zap.Float64("cutLength", r.res.CutLength),
		zap.Int("holes", r.res.HoleCount),
		zap.Int("diagnostics", len(r.res.Diagnostics)))

	return &r.res
}
