package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	oldStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	fn()
	w.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestErrorf(t *testing.T) {
	got := captureStderr(t, func() {
		Errorf("%s", fmt.Errorf("no access points found"))
	})
	if !strings.HasPrefix(got, "Error: ") || !strings.Contains(got, "no access points found") {
		t.Errorf("unexpected stderr output: %q", got)
	}
}
