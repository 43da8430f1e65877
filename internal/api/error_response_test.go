// File: internal/api/error_response_test.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lost-and-found/internal/apperr"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusNotFound, HTTPStatus(apperr.NotFound("x")))
	require.Equal(t, http.StatusConflict, HTTPStatus(apperr.Conflict("x")))
	require.Equal(t, http.StatusForbidden, HTTPStatus(apperr.Authorization("x")))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("x")))

	// 包裝過的領域錯誤也要對得上
	wrapped := fmt.Errorf("op: %w", apperr.NotFound("gone"))
	require.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}
