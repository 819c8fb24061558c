package cli

import (
	"testing"

	"github.com/zoro11031/homelab-coreos-minipc/hook-runner/internal/config"
)

func TestApplyOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want config.Settings
	}{
		{
			name: "zero options keep settings",
			opts: Options{},
			want: config.Settings{ConfigPath: ".hookrun.yml", LogLevel: "warn", Shell: "bash -c"},
		},
		{
			name: "flags override",
			opts: Options{ConfigPath: "ci.yml", LogLevel: "debug", NoColor: true, NonInteractive: true},
			want: config.Settings{ConfigPath: "ci.yml", LogLevel: "debug", Shell: "bash -c", NoColor: true, NonInteractive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &config.Settings{ConfigPath: ".hookrun.yml", LogLevel: "warn", Shell: "bash -c"}
			applyOptions(settings, tt.opts)
			if *settings != tt.want {
				t.Errorf("applyOptions() = %+v, want %+v", *settings, tt.want)
			}
		})
	}
}
