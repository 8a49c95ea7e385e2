package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praktikum_backend/internals/helpers/apperror"
)

type errBody struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
}

func doErr(t *testing.T, err error) (int, errBody) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return FromError(c, err) })

	resp, e := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, e)
	raw, _ := io.ReadAll(resp.Body)

	var b errBody
	require.NoError(t, json.Unmarshal(raw, &b))
	return resp.StatusCode, b
}

func TestFromError_DomainKinds(t *testing.T) {
	code, b := doErr(t, apperror.NotFound("praktikum tidak ditemukan"))
	assert.Equal(t, 404, code)
	assert.Equal(t, "NOT_FOUND", b.ErrorCode)
	assert.False(t, b.Success)

	code, b = doErr(t, apperror.Conflict("urutan bentrok"))
	assert.Equal(t, 409, code)
	assert.Equal(t, "CONFLICT", b.ErrorCode)
	assert.Equal(t, "urutan bentrok", b.Message)

	code, b = doErr(t, apperror.Validation("nilai", "di luar rentang"))
	assert.Equal(t, 422, code)
	assert.Equal(t, "VALIDATION_ERROR", b.ErrorCode)
	assert.Equal(t, []string{"di luar rentang"}, b.Errors["nilai"])
}

func TestFromError_InternalHidesMessage(t *testing.T) {
	code, b := doErr(t, apperror.Internal(errors.New("dial tcp: refused"), "db"))
	assert.Equal(t, 500, code)
	assert.Equal(t, "INTERNAL_ERROR", b.ErrorCode)
	assert.NotContains(t, b.Message, "refused")
}

func TestFromError_Validator(t *testing.T) {
	type req struct {
		Nama  string   `json:"nama" validate:"required"`
		Nilai *float64 `json:"nilai" validate:"omitempty,gte=0,lte=100"`
	}
	over := 120.0
	code, b := doErr(t, ValidateStruct(req{Nilai: &over}))
	assert.Equal(t, 422, code)
	assert.Contains(t, b.Errors, "nama")
	assert.Contains(t, b.Errors, "nilai")
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	app.Get("/x/:id", func(c *fiber.Ctx) error {
		id, err := ParseID(c, "id")
		if err != nil {
			return FromError(c, err)
		}
		return JsonOK(c, "", id)
	})

	for path, want := range map[string]int{"/x/7": 200, "/x/0": 422, "/x/-3": 422, "/x/abc": 422} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
