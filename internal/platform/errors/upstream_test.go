package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeForStatus_Maps(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCode
		ok     bool
	}{
		{http.StatusOK, ErrorCodeUnknown, false},
		{http.StatusNoContent, ErrorCodeUnknown, false},
		{http.StatusNotFound, ErrorCodeNotFound, true},
		{http.StatusTooManyRequests, ErrorCodeTooManyRequests, true},
		{http.StatusUnauthorized, ErrorCodeUnauthorized, true},
		{http.StatusForbidden, ErrorCodeForbidden, true},
		{http.StatusRequestTimeout, ErrorCodeUnavailable, true},
		{http.StatusBadGateway, ErrorCodeUnavailable, true},
		{http.StatusServiceUnavailable, ErrorCodeUnavailable, true},
		{http.StatusGatewayTimeout, ErrorCodeUnavailable, true},
		{http.StatusInternalServerError, ErrorCodeUpstream, true},
		{http.StatusTeapot, ErrorCodeUpstream, true},
	}
	for _, c := range cases {
		got, ok := CodeForStatus(c.status)
		assert.Equal(t, c.want, got, "status %d", c.status)
		assert.Equal(t, c.ok, ok, "status %d", c.status)
	}
}

func TestFromStatusf_CarriesStatus(t *testing.T) {
	assert.NoError(t, FromStatusf(http.StatusOK, "fine"))

	err := FromStatusf(http.StatusNotFound, "crew %s", "abc")
	assert.Equal(t, ErrorCodeNotFound, CodeOf(err))
	assert.EqualError(t, err, "crew abc (status 404)")
}

func TestIsRetryable_ByCode(t *testing.T) {
	yes := []error{
		Unavailablef("down"),
		Newf(ErrorCodeTooManyRequests, "slow down"),
		fmt.Errorf("wrapped: %w", Unavailablef("down")),
	}
	for _, err := range yes {
		assert.True(t, IsRetryable(err), err.Error())
	}
	no := []error{
		nil,
		NotFoundf("gone"),
		Wrap(context.Canceled, ErrorCodeUnavailable, "cancelled"),
		Wrap(context.DeadlineExceeded, ErrorCodeUnavailable, "deadline"),
		stderrs.New("nope"),
	}
	for _, err := range no {
		assert.False(t, IsRetryable(err), "%v", err)
	}
}

func TestIsRetryableStatus_Transient(t *testing.T) {
	for _, s := range []int{429, 502, 503, 504, 408} {
		assert.True(t, IsRetryableStatus(s), "status %d", s)
	}
	for _, s := range []int{200, 400, 404, 500} {
		assert.False(t, IsRetryableStatus(s), "status %d", s)
	}
}
