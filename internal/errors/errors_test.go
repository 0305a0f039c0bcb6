package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "unavailable error",
			code:     errors.CodeUnavailable,
			message:  "no wallet provider",
			expected: "UNAVAILABLE: no wallet provider",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("dial tcp: connection refused")
	wrapped := errors.Wrap(baseErr, "failed to reach wallet")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to reach wallet", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("no character").WithMeta("account", "0xabc")
	wrapped := errors.Wrap(baseErr, "character lookup failed")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("0xabc", wrapped.Meta["account"])
	s.Equal(baseErr, wrapped.Unwrap())

	wrapped.WithMeta("method", "checkIfUserHasNFT")
	s.NotContains(baseErr.Meta, "method")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("boom").WithMeta("contract", "0x1")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "contract unreachable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("0x1", wrapped.Meta["contract"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
	s.True(errors.Is(errors.Wrap(errors.PermissionDenied("rejected"), "connect"), errors.PermissionDenied("")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.True(errors.IsNotFound(errors.Wrap(errors.NotFound("x"), "wrapped")))
	s.True(errors.IsPermissionDenied(errors.PermissionDenied("x")))
	s.True(errors.IsUnavailable(errors.Unavailablef("rpc %s down", "x")))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("x")))
	s.False(errors.IsInvalidArgument(errors.Internal("x")))

	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("wrapped", errors.GetMessage(errors.Wrap(errors.NotFound("x"), "wrapped")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 64},
		{errors.CodeUnavailable, 69},
		{errors.CodePermissionDenied, 77},
		{errors.CodeFailedPrecondition, 78},
		{errors.CodeInternal, 70},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
