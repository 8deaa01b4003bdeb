package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// calls counts snapshots per test so one test can validate several objects
var calls = make(map[string]int)

// ValidateSnapshot compares obj against the stored JSON snapshot for the
// calling test, writing the snapshot on its first run. depth skips helper
// frames between the test function and this call.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	name := filepath.Base(runtime.FuncForPC(pc).Name())

	n := calls[name]
	calls[name] = n + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, n))

	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot object: %v", err)
	}

	want, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		writeSnapshot(filename, got)
		return
	} else if err != nil {
		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.Trim(string(want), "\n"), string(got), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func writeSnapshot(filename string, data []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		panic(err)
	}
}
