package service

import (
	"os"
	"testing"

	"utube/internal/testutil/pgtest"
)

func TestMain(m *testing.M) {
	os.Exit(pgtest.Run(m))
}
