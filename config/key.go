package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const keyName = "OPENAI_API_KEY"

func secretsFilePath() string {
	if p := os.Getenv("SECRETS_FILE"); p != "" {
		return p
	}
	return "/run/secrets/app.env"
}

func keyFilePath() string {
	if p := os.Getenv("OPENAI_KEY_FILE"); p != "" {
		return p
	}
	return "openai_key.txt"
}

// ResolveAPIKey looks for the OpenAI key in three places, in order:
// the OPENAI_API_KEY environment variable, the OPENAI_API_KEY entry of
// the mounted secrets file, and the first non-blank line of
// openai_key.txt. An unreadable or missing source is not an error; the
// next one is tried. The returned key is trimmed of whitespace.
func ResolveAPIKey() (string, bool) {
	if key := strings.TrimSpace(os.Getenv(keyName)); key != "" {
		return key, true
	}
	if vals, err := godotenv.Read(secretsFilePath()); err == nil {
		if key := strings.TrimSpace(vals[keyName]); key != "" {
			return key, true
		}
	}
	if data, err := os.ReadFile(keyFilePath()); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if key := strings.TrimSpace(line); key != "" {
				return key, true
			}
		}
	}
	return "", false
}

// KeyGuidance names every place the key can be provided, for the
// message shown when none resolves.
func KeyGuidance() string {
	return "OpenAI API key not found. Set the OPENAI_API_KEY environment variable, " +
		"add OPENAI_API_KEY to the secrets file at " + secretsFilePath() + ", " +
		"or put the key on the first line of " + keyFilePath() + "."
}
