package compileserver

import (
	"os"

	"github.com/google/uuid"
)

// writeTempSource spills an inline compile request's source text to a
// scratch file, since internal/driver's pipeline reads from paths (it
// parses concurrently across possibly-many named files); a daemon request
// is simply the one-file case.
func writeTempSource(text string) (string, error) {
	f, err := os.CreateTemp("", "mcc-serve-"+uuid.NewString()+"-*.src")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.WriteString(text); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func removeTempSource(path string) {
	os.Remove(path)
}
