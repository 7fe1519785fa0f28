package system

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// EnvFileName is the optional dotenv file looked up next to the script.
const EnvFileName = ".env"

// LoadScriptEnv reads <dir>/.env and returns its variables as KEY=VALUE
// pairs, sorted by key. Variables already present in the process
// environment are skipped, so the inherited environment always wins.
// A missing file yields no pairs and no error.
func LoadScriptEnv(dir string) ([]string, error) {
	data, err := afero.ReadFile(AppFs, filepath.Join(dir, EnvFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	vars, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, err
	}

	pairs := make([]string, 0, len(vars))
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		pairs = append(pairs, key+"="+value)
	}
	sort.Strings(pairs)
	return pairs, nil
}
