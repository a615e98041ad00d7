package customizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Defaults()))
}

func TestValidateBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*FormData)
		field   Field
		message string
	}{
		{name: "height below min", mutate: func(d *FormData) { d.Height = 99 }, field: FieldHeight, message: "Height must be between 100-250 cm"},
		{name: "height at min", mutate: func(d *FormData) { d.Height = 100 }},
		{name: "height at max", mutate: func(d *FormData) { d.Height = 250 }},
		{name: "height above max", mutate: func(d *FormData) { d.Height = 251 }, field: FieldHeight, message: "Height must be between 100-250 cm"},
		{name: "weight below min", mutate: func(d *FormData) { d.Weight = 29 }, field: FieldWeight, message: "Weight must be between 30-200 kg"},
		{name: "weight at min", mutate: func(d *FormData) { d.Weight = 30 }},
		{name: "weight at max", mutate: func(d *FormData) { d.Weight = 200 }},
		{name: "weight above max", mutate: func(d *FormData) { d.Weight = 201 }, field: FieldWeight, message: "Weight must be between 30-200 kg"},
		{name: "missing height", mutate: func(d *FormData) { d.Height = 0 }, field: FieldHeight, message: "Height is required"},
		{name: "missing build", mutate: func(d *FormData) { d.Build = "" }, field: FieldBuild, message: "Build is required"},
		{name: "unknown build", mutate: func(d *FormData) { d.Build = "tall" }, field: FieldBuild, message: "Build must be one of lean, regular, athletic, big"},
		{name: "too many lines", mutate: func(d *FormData) { d.Text = "a\nb\nc\nd" }, field: FieldText, message: "Text must fit on 3 lines"},
		{name: "three lines", mutate: func(d *FormData) { d.Text = "a\nb\nc" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := Defaults()
			tt.mutate(&data)
			err := Validate(data)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.message, fieldErrs.For(tt.field))
			assert.Len(t, fieldErrs, 1)
		})
	}
}

func TestValidateReportsEveryFieldInOrder(t *testing.T) {
	t.Parallel()

	err := Validate(FormData{Height: 300, Weight: 5, Build: BuildLean, Text: "1\n2\n3\n4"})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)
	assert.Equal(t, "height", fieldErrs[0].Field)
	assert.Equal(t, "weight", fieldErrs[1].Field)
	assert.Equal(t, "text", fieldErrs[2].Field)

	var single *apperrors.ValidationError
	require.ErrorAs(t, err, &single)
	assert.Equal(t, "height", single.Field)
}

func TestParse(t *testing.T) {
	t.Parallel()

	data, err := Parse(Input{Height: " 100 ", Weight: "200", Build: BuildBig, Text: "a\nb\nc\nd"})
	require.NoError(t, err)
	assert.Equal(t, FormData{Height: 100, Weight: 200, Build: BuildBig, Text: "a\nb\nc"}, data)
}

func TestParseCollectsFieldErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse(Input{Height: "99", Weight: "", Build: BuildLean})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Height must be between 100-250 cm", fieldErrs.For(FieldHeight))
	assert.Equal(t, "Weight is required", fieldErrs.For(FieldWeight))
	assert.False(t, fieldErrs.Has(FieldBuild))
}

func TestParseRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	_, err := Parse(Input{Height: "1.8m", Weight: "80", Build: BuildLean})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "Height must be a whole number", fieldErrs.For(FieldHeight))
}

func TestInputFromRoundTripsDefaults(t *testing.T) {
	t.Parallel()

	data, err := Parse(InputFrom(Defaults()))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), data)
}
