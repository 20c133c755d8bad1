package chart

import (
	"math"

	"github.com/matzehuels/cascade/pkg/errors"
)

// ValidateCategories gates entry into the layout pipeline. It checks
// that the dataset is non-empty and that every category has a label and
// at least one segment with a finite value and a usable color. Nothing
// downstream runs on data that fails here.
func ValidateCategories(categories []Category) error {
	if len(categories) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no categories to lay out")
	}

	for i, c := range categories {
		if err := errors.ValidateLabel(c.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidData, err, "category %d", i)
		}
		if len(c.Stacks) == 0 {
			return errors.New(errors.ErrCodeInvalidData, "category %q has no segments", c.Label)
		}
		for j, s := range c.Stacks {
			if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
				return errors.New(errors.ErrCodeInvalidData, "category %q segment %d has non-finite value", c.Label, j)
			}
			if err := errors.ValidateColor(s.Color); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidData, err, "category %q segment %d", c.Label, j)
			}
		}
	}

	return nil
}
