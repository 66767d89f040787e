package clipboard

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func withPaths(t *testing.T, available ...string) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		available []string
		want      []string
		wantErr   bool
	}{
		{"macOS", "darwin", []string{"pbcopy"}, []string{"pbcopy"}, false},
		{"wayland preferred", "linux", []string{"xclip", "wl-copy"}, []string{"wl-copy"}, false},
		{"xclip fallback", "linux", []string{"xclip", "xsel"}, []string{"xclip", "-selection", "clipboard"}, false},
		{"xsel fallback", "linux", []string{"xsel"}, []string{"xsel", "--clipboard", "--input"}, false},
		{"nothing installed", "linux", nil, nil, true},
		{"unknown OS", "plan9", []string{"pbcopy"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withPaths(t, tt.available...)

			got, err := command(tt.goos)
			if tt.wantErr {
				if !errors.Is(err, ErrClipboardUnavailable) {
					t.Errorf("command(%q) error = %v, want ErrClipboardUnavailable", tt.goos, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("command(%q) error = %v", tt.goos, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("command(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestCopy_Unavailable(t *testing.T) {
	withPaths(t)

	if IsAvailable() {
		t.Error("IsAvailable() = true with no commands installed")
	}
	if err := Copy("hello"); !errors.Is(err, ErrClipboardUnavailable) {
		t.Errorf("Copy() error = %v, want ErrClipboardUnavailable", err)
	}
}
