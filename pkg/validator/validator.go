package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/ordersvc/pkg/httpx"
)

const (
	TitleValidation   = "Erro de validação"
	MsgValidation     = "Um ou mais campos estão inválidos."
	MsgInvalidJSON    = "Corpo da requisição inválido."
	MsgBodyTooLarge   = "Corpo da requisição excede o tamanho máximo."
	titleInvalidInput = "Requisição inválida"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field path → human-readable message. Nested fields keep their path
// (e.g. "itens[0].nome").
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[fieldPath(e)] = formatFieldError(e)
	}
	return errs
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Campo obrigatório"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("Deve conter pelo menos %s elemento(s)", e.Param())
		}
		if isNumber(e.Kind()) {
			return fmt.Sprintf("Valor mínimo é %s", e.Param())
		}
		return fmt.Sprintf("Tamanho mínimo é %s", e.Param())
	case "max":
		if isNumber(e.Kind()) {
			return fmt.Sprintf("Valor máximo é %s", e.Param())
		}
		return fmt.Sprintf("Tamanho máximo é %s", e.Param())
	case "email":
		return "Deve ser um e-mail válido"
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s", e.Param())
	case "gte":
		return fmt.Sprintf("Deve ser maior ou igual a %s", e.Param())
	case "lte":
		return fmt.Sprintf("Deve ser menor ou igual a %s", e.Param())
	case "notblank":
		return "Não pode estar em branco"
	default:
		return fmt.Sprintf("Validação falhou em '%s'", e.Tag())
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "", MsgBodyTooLarge)
			return nil, false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, titleInvalidInput, MsgInvalidJSON)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, httpx.ValidationError{
			StandardError: httpx.NewStandardError(r, http.StatusUnprocessableEntity, TitleValidation, MsgValidation),
			Fields:        FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
