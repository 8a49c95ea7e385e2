package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, h fiber.Handler, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)

	var b map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &b))
	return resp.StatusCode, b
}

func TestJsonList_Pagination(t *testing.T) {
	code, b := doJSON(t, func(c *fiber.Ctx) error {
		pg := BuildPaginationFromPage(45, 2, 20)
		return JsonList(c, "", []int{1, 2, 3}, &pg)
	}, "/")
	assert.Equal(t, 200, code)
	assert.JSONEq(t, `"ok"`, string(b["message"]))

	var pg Pagination
	require.NoError(t, json.Unmarshal(b["pagination"], &pg))
	assert.Equal(t, Pagination{Page: 2, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: true, Count: 3}, pg)
}

func TestJsonList_TanpaPagination(t *testing.T) {
	_, b := doJSON(t, func(c *fiber.Ctx) error {
		return JsonList(c, "daftar", []string{"a"}, nil)
	}, "/")
	_, ada := b["pagination"]
	assert.False(t, ada)
	assert.JSONEq(t, `["a"]`, string(b["data"]))
}

func TestJsonCreated_Fallback(t *testing.T) {
	code, b := doJSON(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, " ", fiber.Map{"id": 1})
	}, "/")
	assert.Equal(t, 201, code)
	assert.JSONEq(t, `true`, string(b["success"]))
	assert.JSONEq(t, `"created"`, string(b["message"]))
	assert.JSONEq(t, `{"id":1}`, string(b["data"]))
}

func TestResolvePaging(t *testing.T) {
	var p Paging
	h := func(c *fiber.Ctx) error {
		p = ResolvePaging(c, 20, 100)
		return JsonOK(c, "", nil)
	}

	doJSON(t, h, "/?page=3&per_page=10")
	assert.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, p)

	doJSON(t, h, "/?limit=500&page=0")
	assert.Equal(t, Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}, p)

	doJSON(t, h, "/?per_page=abc")
	assert.Equal(t, 20, p.PerPage)
}
