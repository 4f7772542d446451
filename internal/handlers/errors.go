package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"fitness-catalog/internal/models"
	"fitness-catalog/internal/repository"
)

const (
	locBody  = "body"
	locQuery = "query"
	locPath  = "path"
)

// ErrorResponse es el cuerpo de los errores simples
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationError describe un campo inválido del request
type ValidationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationErrorResponse struct {
	Detail []ValidationError `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

var registerOnce sync.Once

// registerValidators usa los nombres JSON en los errores y registra la regla "enum"
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("enum", validateEnum)
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// validateEnum acepta solo valores de las enumeraciones cerradas del modelo
func validateEnum(fl validator.FieldLevel) bool {
	if v, ok := fl.Field().Interface().(interface{ Valid() bool }); ok {
		return v.Valid()
	}
	return false
}

// respondBindError responde 422 con el detalle por campo de un error de binding
func respondBindError(c *gin.Context, loc string, err error) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: validationDetails(loc, requestValues(c, loc), err)})
}

// requestValues devuelve los valores crudos de la ubicación que se bindeó
func requestValues(c *gin.Context, loc string) url.Values {
	switch loc {
	case locQuery:
		return c.Request.URL.Query()
	case locPath:
		values := url.Values{}
		for _, p := range c.Params {
			values.Add(p.Key, p.Value)
		}
		return values
	default:
		return nil
	}
}

// respondError traduce errores del servicio a respuestas HTTP
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var enumErr *models.EnumError

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Product not found"})
	case errors.As(err, &enumErr):
		respondBindError(c, locPath, err)
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	}
}

func validationDetails(loc string, values url.Values, err error) []ValidationError {
	var (
		verrs     validator.ValidationErrors
		enumErr   *models.EnumError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)

	switch {
	case errors.As(err, &verrs):
		details := make([]ValidationError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, ValidationError{
				Loc:  append([]string{loc}, fieldPath(fe)...),
				Msg:  fieldMessage(fe),
				Type: fe.Tag(),
			})
		}
		return details
	case errors.As(err, &enumErr):
		return []ValidationError{{
			Loc:  []string{loc, enumErr.Field},
			Msg:  fmt.Sprintf("value is not a valid enumeration member; permitted: %s", strings.Join(enumErr.Allowed, ", ")),
			Type: "enum",
		}}
	case errors.As(err, &typeErr):
		return []ValidationError{{
			Loc:  append([]string{loc}, strings.Split(typeErr.Field, ".")...),
			Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value),
			Type: "type_error",
		}}
	case errors.As(err, &numErr):
		return []ValidationError{{
			Loc:  append([]string{loc}, fieldWithValue(values, numErr.Num)...),
			Msg:  fmt.Sprintf("value %q is not a valid number", numErr.Num),
			Type: "number_parsing",
		}}
	case errors.As(err, &syntaxErr):
		return []ValidationError{{Loc: []string{loc}, Msg: syntaxErr.Error(), Type: "json_invalid"}}
	default:
		return []ValidationError{{Loc: []string{loc}, Msg: err.Error(), Type: "value_error"}}
	}
}

// fieldWithValue busca el parámetro que trae el valor que no se pudo convertir;
// gin no incluye el nombre del campo en los errores de strconv
func fieldWithValue(values url.Values, raw string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if slices.Contains(values[k], raw) {
			return []string{k}
		}
	}
	return nil
}

// fieldPath quita el nombre del struct raíz del namespace del validador
func fieldPath(fe validator.FieldError) []string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		return parts[1:]
	}
	return parts
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s element(s)", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "enum":
		return fmt.Sprintf("%s is not a valid enumeration member", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
