package customizer

import (
	"strconv"
	"strings"

	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

// Height and weight bounds, inclusive.
const (
	MinHeight = 100
	MaxHeight = 250
	MinWeight = 30
	MaxWeight = 200
)

// Field names a form control.
type Field string

const (
	FieldHeight Field = "height"
	FieldWeight Field = "weight"
	FieldBuild  Field = "build"
	FieldText   Field = "text"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldHeight, FieldWeight, FieldBuild, FieldText}

// FormData is a validated customization request.
type FormData struct {
	Height int    `json:"height" yaml:"height" validate:"required,min=100,max=250"`
	Weight int    `json:"weight" yaml:"weight" validate:"required,min=30,max=200"`
	Build  Build  `json:"build" yaml:"build" validate:"required,oneof=lean regular athletic big"`
	Text   string `json:"text" yaml:"text" validate:"maxlines=3"`
}

// Defaults returns the values the form starts with.
func Defaults() FormData {
	return FormData{
		Height: 180,
		Weight: 80,
		Build:  BuildAthletic,
		Text:   "",
	}
}

// Input is the raw, unparsed state of the form controls.
type Input struct {
	Height string
	Weight string
	Build  Build
	Text   string
}

// InputFrom renders form data back into raw control values.
func InputFrom(data FormData) Input {
	return Input{
		Height: strconv.Itoa(data.Height),
		Weight: strconv.Itoa(data.Weight),
		Build:  data.Build,
		Text:   data.Text,
	}
}

// Parse converts raw control values into FormData and validates the result.
// The returned error is a FieldErrors when any field is invalid; the FormData
// is still populated with whatever could be parsed.
func Parse(in Input) (FormData, error) {
	var errs FieldErrors

	height, herr := parseWhole(FieldHeight, in.Height)
	if herr != nil {
		errs = append(errs, herr)
	}
	weight, werr := parseWhole(FieldWeight, in.Weight)
	if werr != nil {
		errs = append(errs, werr)
	}

	data := FormData{
		Height: height,
		Weight: weight,
		Build:  in.Build,
		Text:   ClampLines(in.Text),
	}

	for _, fe := range validate(data) {
		if errs.Has(Field(fe.Field)) {
			continue
		}
		errs = append(errs, fe)
	}

	if len(errs) == 0 {
		return data, nil
	}
	return data, errs.sorted()
}

func parseWhole(field Field, raw string) (int, *apperrors.ValidationError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newFieldError(field, fieldLabel(field)+" must be a whole number", err)
	}
	return value, nil
}
