package common

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusErrorNil(t *testing.T) {
	if err := ToStatusError(nil, "upload failed"); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestToStatusErrorCarriesValidationReason(t *testing.T) {
	err := fmt.Errorf("%w: unsupported file type %q", ErrInvalidInput, "pdf")

	st, ok := status.FromError(ToStatusError(err, "upload failed"))
	if !ok {
		t.Fatal("not a status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", st.Code())
	}
	if !strings.Contains(st.Message(), `unsupported file type "pdf"`) {
		t.Errorf("message = %q, want the validation reason", st.Message())
	}
}

func TestToStatusErrorCarriesNotFoundReason(t *testing.T) {
	err := fmt.Errorf("%w: session %s", ErrNotFound, "abc")

	st, ok := status.FromError(ToStatusError(err, "lookup failed"))
	if !ok {
		t.Fatal("not a status error")
	}
	if st.Code() != codes.NotFound {
		t.Errorf("code = %v, want NotFound", st.Code())
	}
	if !strings.Contains(st.Message(), "session abc") {
		t.Errorf("message = %q, want the lookup detail", st.Message())
	}
}

func TestToStatusErrorHidesInternalDetail(t *testing.T) {
	err := fmt.Errorf("%w: connect to 10.0.0.5:5432 refused", ErrDatabase)

	st, ok := status.FromError(ToStatusError(err, "failed to generate output file"))
	if !ok {
		t.Fatal("not a status error")
	}
	if st.Code() != codes.Internal {
		t.Errorf("code = %v, want Internal", st.Code())
	}
	if st.Message() != "failed to generate output file" {
		t.Errorf("message = %q, internal detail must not leak", st.Message())
	}
	if !errors.Is(err, ErrDatabase) {
		t.Error("sentinel lost in wrapping")
	}
}
