package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests run from the project root so relative paths (config/, logs/)
	// resolve the same way they do for cmd/server
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/solar-dashboard-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}

	if _, found := os.LookupEnv("GO_ENV"); !found {
		_ = os.Setenv("GO_ENV", "test")
	}
}
