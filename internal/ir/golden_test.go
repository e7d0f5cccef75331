package ir

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestGoldenFixturesProduceExpectedInstructions loads testdata/golden.txtar,
// a multi-program archive pairing each "<name>.mc" source with the
// instruction mnemonics its generated IR must contain, and checks every
// one of them shows up somewhere in the row chain.
func TestGoldenFixturesProduceExpectedInstructions(t *testing.T) {
	ar, err := txtar.ParseFile("testdata/golden.txtar")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	sources := map[string]string{}
	wants := map[string][]string{}
	for _, f := range ar.Files {
		name := strings.TrimSuffix(f.Name, ".mc")
		name = strings.TrimSuffix(name, ".want")
		switch {
		case strings.HasSuffix(f.Name, ".mc"):
			sources[name] = string(f.Data)
		case strings.HasSuffix(f.Name, ".want"):
			for _, line := range strings.Split(strings.TrimSpace(string(f.Data)), "\n") {
				line = strings.TrimSpace(line)
				if line != "" {
					wants[name] = append(wants[name], line)
				}
			}
		}
	}

	if len(sources) == 0 {
		t.Fatalf("expected at least one fixture program in golden.txtar")
	}

	for name, src := range sources {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			head := generate(t, src)
			seq := instrSeq(head)
			var got []string
			for _, instr := range seq {
				got = append(got, instr.String())
			}
			gotSet := map[string]bool{}
			for _, g := range got {
				gotSet[g] = true
			}
			for _, want := range wants[name] {
				if !gotSet[want] {
					t.Errorf("%s: expected instruction %s, got %v", name, want, got)
				}
			}
		})
	}
}
