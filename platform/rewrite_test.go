package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cmd wrapper", "cmd /c dir", "dir"},
		{"cmd.exe wrapper with args", "cmd.exe /C dir /w", "dir /w"},
		{"powershell command with opening quote", `powershell -NoProfile -Command "Get-Process"`, `Get-Process"`},
		{"pwsh short flag", `pwsh -c 'Get-Date'`, `Get-Date'`},
		{"powershell without flags", "powershell Get-Date", "Get-Date"},
		{"no wrapper passes through", "ls -la /tmp", "ls -la /tmp"},
		{"cmd without /c passes through", "cmd", "cmd"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(tt.in))
		})
	}
}
