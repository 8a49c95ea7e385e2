package helper

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"praktikum_backend/internals/helpers/apperror"
	"praktikum_backend/internals/observability"
)

// Validate dipakai bersama oleh semua controller; nama field mengikuti tag json.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	return v
}

// ValidateStruct menjalankan validator lalu mengembalikan error apa adanya
// (validator.ValidationErrors) supaya FromError bisa memetakan per field.
func ValidateStruct(s any) error {
	return Validate.Struct(s)
}

// FromError merender error apa pun ke envelope standar.
func FromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return JsonValidationError(c, "validation failed", ValidationMap(ve))
	}

	var ae *apperror.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperror.KindValidation:
			fields := map[string][]string{}
			if ae.Field != "" {
				fields[ae.Field] = []string{ae.Message}
			}
			return JsonValidationError(c, ae.Message, fields)
		case apperror.KindInternal:
			return internalError(c, err)
		default:
			return JsonError(c, ae.Status(), ae.Message)
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= 500 {
			return internalError(c, err)
		}
		return JsonError(c, fe.Code, fe.Message)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return JsonError(c, fiber.StatusServiceUnavailable, "request timeout")
	}
	return internalError(c, err)
}

func internalError(c *fiber.Ctx, err error) error {
	zap.L().Error("internal error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("requestid")),
		zap.Error(err),
	)
	observability.CaptureErr(err)
	return JsonError(c, fiber.StatusInternalServerError, "terjadi kesalahan pada server")
}

// ValidationMap: field -> daftar pesan.
func ValidationMap(ve validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "min", "gte":
		return "minimal " + fe.Param()
	case "max", "lte":
		return "maksimal " + fe.Param()
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "url":
		return "harus berupa URL yang valid"
	case "email":
		return "harus berupa email yang valid"
	case "gtefield":
		return "tidak boleh lebih awal dari " + fe.Param()
	default:
		return fmt.Sprintf("tidak valid (%s)", fe.Tag())
	}
}

// ParseID membaca path param id positif.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperror.Validation(name, "%s harus bilangan bulat positif", name)
	}
	return uint(n), nil
}

// BodyParser + validasi dalam satu langkah.
func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "payload tidak valid")
	}
	return ValidateStruct(out)
}
