package college

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unitrack/core"
)

var (
	percentileOrderTag  = "p25lte75"
	percentileOrderText = "the 75th percentile cannot be lower than the 25th"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(collegeStructValidation, NewCollege{})
	core.RegisterCustomTranslation(validate, translator, percentileOrderTag, percentileOrderText)
}

func collegeStructValidation(sl validator.StructLevel) {
	nc, ok := sl.Current().Interface().(NewCollege)
	if !ok {
		return
	}
	checkPercentiles(sl, nc.SATP25, nc.SATP75, "sat_p75", "SATP75")
	checkPercentiles(sl, nc.ACTP25, nc.ACTP75, "act_p75", "ACTP75")
}

func checkPercentiles(sl validator.StructLevel, p25, p75 null.Int, field, structField string) {
	if p25.Valid && p75.Valid && p75.Int < p25.Int {
		sl.ReportError(p75, field, structField, percentileOrderTag, "")
	}
}

func (nc *NewCollege) Validate(validate *validator.Validate) error {
	nc.clean()
	return validate.Struct(nc)
}
