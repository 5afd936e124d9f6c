package validation

import (
	"errors"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProperty_Boundaries(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		property string
		value    any
		valid    bool
	}{
		{"opacity one", "opacity", 1, true},
		{"opacity zero", "opacity", 0, true},
		{"opacity above", "opacity", 1.01, false},
		{"opacity below", "opacity", -0.01, false},
		{"opacity string", "opacity", "0.5", false},
		{"zIndex integer", "zIndex", 3, true},
		{"zIndex float", "zIndex", 3.5, false},
		{"zIndex whole float", "zIndex", 3.0, true},
		{"width px", "width", "10px", true},
		{"width bare string", "width", "10", false},
		{"width auto", "width", "auto", true},
		{"width percent", "width", "50.5%", true},
		{"width viewport", "width", "100vw", true},
		{"width number", "width", 10, true},
		{"width negative", "width", -1, false},
		{"height rem", "height", "2rem", true},
		{"height unknown unit", "height", "2pt", false},
		{"fontSize px", "fontSize", "16px", true},
		{"fontSize vh", "fontSize", "2vh", false},
		{"fontSize zero", "fontSize", 0, false},
		{"fontSize positive", "fontSize", 14, true},
		{"unruled property", "color", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.ValidateProperty(tt.property, tt.value)
			assert.Equal(t, tt.valid, res.IsValid, "errors: %v", res.Errors)
			assert.Equal(t, len(res.Errors) == 0, res.IsValid)
		})
	}
}

func TestValidate_ErrorFormatAndOrder(t *testing.T) {
	v := New()

	res := v.Validate(domain.Style{
		"zIndex":  1.5,
		"opacity": 2,
		"color":   "red",
	})

	assert.False(t, res.IsValid)
	assert.Equal(t, []string{
		"opacity: Opacity must be a number between 0 and 1",
		"zIndex: Z-index must be an integer",
	}, res.Errors)
}

func TestValidate_Warnings(t *testing.T) {
	v := New()

	res := v.Validate(domain.Style{
		"margin":  -5,
		"padding": 20000,
		"width":   100,
	})

	assert.True(t, res.IsValid)
	assert.Equal(t, []string{
		"margin: Negative margin (-5) may cause layout issues",
		"padding: Very large value (20000) may cause performance issues",
		"width: Numeric value (100) without unit will be treated as pixels",
	}, res.Warnings)
}

func TestValidate_EmptyStyle(t *testing.T) {
	res := New().Validate(domain.Style{})
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.NotNil(t, res.Warnings)
}

func TestCustomRules(t *testing.T) {
	v := New(WithoutDefaults())
	require.Empty(t, v.GlobalRules())

	isString := func(val any) bool { _, ok := val.(string); return ok }
	v.AddRule("color", Rule{Validator: isString, Message: "Color must be a string"})
	v.AddGlobalRule(Rule{Property: "color", Validator: isString, Message: "global color"})

	res := v.ValidateProperty("color", 12)
	assert.Equal(t, []string{"color: Color must be a string", "color: global color"}, res.Errors)

	v.RemoveRule("color", 0)
	v.RemoveRule("color", 5) // out of range
	assert.Empty(t, v.Rules("color"))

	v.RemoveGlobalRule(-1) // out of range
	assert.Len(t, v.GlobalRules(), 1)
	v.RemoveGlobalRule(0)
	assert.True(t, v.ValidateProperty("color", 12).IsValid)
}

func TestClearRules(t *testing.T) {
	v := New()
	v.AddRule("width", Rule{Validator: func(any) bool { return false }, Message: "never"})

	v.ClearPropertyRules("width")
	assert.Empty(t, v.Rules("width"))
	assert.False(t, v.ValidateProperty("width", "10").IsValid, "global default still applies")

	v.ClearRules()
	assert.True(t, v.ValidateProperty("width", "10").IsValid)
}

func TestErr_Aggregate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Err(domain.Style{"opacity": 0.5}))

	err := v.Err(domain.Style{"opacity": 5, "zIndex": 0.5})
	require.Error(t, err)

	ruleErrs := RuleErrors(err)
	require.Len(t, ruleErrs, 2)

	var re *RuleError
	require.True(t, errors.As(ruleErrs[0], &re))
	assert.Equal(t, "opacity", re.Property)
	assert.Equal(t, 5, re.Value)
}
