package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v0.1.0"

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} v0.1.0 (") || !strings.HasSuffix(got, ")\n") {
		t.Errorf("Template() = %q", got)
	}
}

func TestKeyVals(t *testing.T) {
	kv := KeyVals()
	if len(kv)%2 != 0 {
		t.Fatalf("KeyVals() has odd length %d", len(kv))
	}
	if kv[0] != "version" || kv[1] != Version {
		t.Errorf("KeyVals() = %v, want version first", kv)
	}
}
