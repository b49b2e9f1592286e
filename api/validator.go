package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stefanreuther/c2ng-sub017/render"
)

const renderFormatTag = "renderformat"

// validRenderFormat accepts every output format [render.Render] understands.
var validRenderFormat validator.Func = func(fl validator.FieldLevel) bool {
	format, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if format == render.FormatRaw || format == render.FormatSource {
		return true
	}
	_, ok = render.ParseFormat(format)
	return ok
}

// RegisterValidators makes v report json field names and know the custom tags of the service.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation(renderFormatTag, validRenderFormat)
}
