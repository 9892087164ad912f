//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"performance-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunMain(m, "repository"))
}
