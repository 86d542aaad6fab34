package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"googleOAuth": map[string]any{
			"clientId":     "",
			"clientSecret": "",
		},
		"session": map[string]any{
			"cookieName": "ww_session",
		},
		"uploads": map[string]any{
			"bucketUrl": "file://./uploads",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "GOOGLEOAUTH_CLIENTSECRET", want: "googleOAuth.clientSecret"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "UPLOADS_BUCKETURL", want: "uploads.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
