package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"checkInterval":  "30s",
			"noticeDebounce": "30s",
		},
		"storage": map[string]any{
			"driver": "sqlite",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_CHECKINTERVAL", want: "session.checkInterval"},
		{envKey: "SESSION_NOTICEDEBOUNCE", want: "session.noticeDebounce"},
		{envKey: "STORAGE_DRIVER", want: "storage.driver"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
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

func TestApplyDefaults_FillsSessionTimings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Session.Timeout != DefaultSessionTimeout {
		t.Fatalf("timeout = %v, want %v", cfg.Session.Timeout, DefaultSessionTimeout)
	}
	if cfg.Session.CheckInterval != DefaultCheckInterval {
		t.Fatalf("checkInterval = %v, want %v", cfg.Session.CheckInterval, DefaultCheckInterval)
	}
	if cfg.Session.NoticeDebounce != DefaultNoticeDebounce {
		t.Fatalf("noticeDebounce = %v, want %v", cfg.Session.NoticeDebounce, DefaultNoticeDebounce)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Fatalf("driver = %q, want sqlite", cfg.Storage.Driver)
	}
}
