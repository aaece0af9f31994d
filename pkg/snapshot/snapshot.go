// Package snapshot compares values against JSON fixtures stored under testdata/.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv is the environment variable that makes ValidateSnapshot rewrite fixtures
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	funcCount = make(map[string]int)
	countLock sync.Mutex
)

// ValidateSnapshot performs snapshot testing.
// The fixture is named after the calling test function and how many times it has
// validated so far, e.g. testdata/kusokurae.TestGame_Start-0.json. A missing fixture
// is written instead of compared.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) bool {
	t.Helper()
	skip := 1 + depth

	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	countLock.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	countLock.Unlock()

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || (err == nil && os.Getenv(UpdateEnv) != "") {
		create(t, filename, obj)
		return true
	}

	if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func create(t *testing.T, filename string, obj interface{}) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		t.Fatal(err)
	}
}
