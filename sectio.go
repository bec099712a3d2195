// Package sectio classifies the boundary representation of a solid body
// into a standard stock-shape family (round tube or bar, square tube,
// rectangular tube, angle, channel) and measures its defining dimensions.
//
// Basic usage:
//
//	result, err := sectio.Classify(faceSet)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Shape, result.OuterDiameter, result.WallThickness)
//	if len(result.Diagnostics) > 0 {
//	    log.Println("Diagnostics:", sectio.FormatDiagnostics(result.Diagnostics))
//	}
//
// With tuned thresholds:
//
//	cfg := profile.DefaultConfig()
//	cfg.MaxWallRatio = 0.25
//	result, err := sectio.ClassifyWithConfig(faceSet, cfg)
//
// For advanced use cases, the lower-level profile package is also
// available, and the solids package builds synthetic reference bodies.
package sectio

import (
	"github.com/millfab/sectio/model"
	"github.com/millfab/sectio/profile"
)

// Classify classifies one body with default thresholds. The only error is
// a structurally invalid face set; inconclusive classification is reported
// through diagnostics on the result instead.
//
// Example:
//
//	result, err := sectio.Classify(solids.RoundTube(0.025, 0.020, 0.5))
func Classify(fs *model.FaceSet) (*model.ProfileResult, error) {
	return profile.Classify(fs)
}

// ClassifyWithConfig classifies one body with explicit thresholds.
func ClassifyWithConfig(fs *model.FaceSet, cfg profile.Config) (*model.ProfileResult, error) {
	return profile.NewWithConfig(cfg).Classify(fs)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := sectio.Must(sectio.Classify(fs))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatDiagnostics renders diagnostics as a single human-readable line.
func FormatDiagnostics(diags []model.Diagnostic) string {
	return model.FormatDiagnostics(diags)
}
