package controller

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praktikum_backend/internals/helpers/apperror"
)

func postForm(t *testing.T, fields map[string]string) (uint, error) {
	t.Helper()
	var (
		gotID  uint
		gotErr error
	)
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		gotID, gotErr = formPraktikumID(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return gotID, gotErr
}

func TestFormPraktikumID(t *testing.T) {
	id, err := postForm(t, map[string]string{"laporan_praktikum_id": "12"})
	require.NoError(t, err)
	assert.EqualValues(t, 12, id)

	id, err = postForm(t, map[string]string{"id_praktikum": " 7 "})
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)

	// field baru menang bila keduanya dikirim
	id, err = postForm(t, map[string]string{"laporan_praktikum_id": "3", "id_praktikum": "9"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, id)

	for _, fields := range []map[string]string{
		{},
		{"id_praktikum": "abc"},
		{"laporan_praktikum_id": "0"},
		{"laporan_praktikum_id": "-4"},
	} {
		_, err := postForm(t, fields)
		var ae *apperror.Error
		require.ErrorAs(t, err, &ae, "fields %v", fields)
		assert.Equal(t, apperror.KindValidation, ae.Kind)
		assert.Equal(t, "laporan_praktikum_id", ae.Field)
	}
}
