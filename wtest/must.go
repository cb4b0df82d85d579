// Package wtest holds helpers shared by simpleio's tests.
package wtest

import (
	"testing"

	"github.com/pkg/errors"
)

// Must fails the test immediately, showing a complete error stack,
// if err is non-nil
func Must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
}
