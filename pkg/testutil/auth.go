package testutil

import (
	"os"
	"regexp"
	"testing"
)

var secretRE = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretRE.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether live API tests are enabled through
// the <prefix>_API_KEY / <prefix>_API_SECRET env vars plus TEST_<prefix>=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf("%s api integration test enabled, key = %s, secret = %s", prefix, maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}
