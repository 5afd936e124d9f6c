// Package validation evaluates style mappings against ordered rule lists.
//
// An Engine holds per-property rules and global rules (each global rule names the
// property it applies to). Validation never fails: broken values are reported as
// errors in the returned domain.ValidationResult, and heuristic warnings are added
// for suspicious but legal values.
//
//	v := validation.New()
//	res := v.Validate(domain.Style{"opacity": 1.5})
//	// res.IsValid == false
//	// res.Errors  == []string{"opacity: Opacity must be a number between 0 and 1"}
//
// Custom rules are plain predicates:
//
//	v.AddRule("color", validation.Rule{
//	    Validator: func(v any) bool { _, ok := v.(string); return ok },
//	    Message:   "Color must be a string",
//	})
package validation
