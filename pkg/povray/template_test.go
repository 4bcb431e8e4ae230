package povray

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSubstituteMarkers(t *testing.T) {
	table := map[string]string{"width": "800", "height": "600"}
	out, unknown := substituteMarkers("w=[width] h=[height] i=[0] raw[not known]", table)
	if out != "w=800 h=600 i=[0] raw[not known]" {
		t.Errorf("unexpected output %q", out)
	}
	if len(unknown) != 0 {
		t.Errorf("non-marker brackets reported as unknown: %v", unknown)
	}
}

func TestSubstituteMarkers_Unknown(t *testing.T) {
	out, unknown := substituteMarkers("[width] [mystery] [mystery]", map[string]string{"width": "1"})
	if out != "1 [mystery] [mystery]" {
		t.Errorf("unexpected output %q", out)
	}
	if len(unknown) != 1 || unknown[0] != "mystery" {
		t.Errorf("expected one unknown marker reported once, got %v", unknown)
	}
}

func TestSubstituteMarkers_SinglePass(t *testing.T) {
	table := map[string]string{"outer": "[inner]", "inner": "boom"}
	out, _ := substituteMarkers("[outer]", table)
	if out != "[inner]" {
		t.Errorf("substituted text was rescanned: %q", out)
	}
}

func TestSubstituteMarkers_UnclosedBracket(t *testing.T) {
	out, unknown := substituteMarkers("array[3] end [", map[string]string{})
	if out != "array[3] end [" {
		t.Errorf("unexpected output %q", out)
	}
	if len(unknown) != 0 {
		t.Errorf("unexpected unknown markers: %v", unknown)
	}
}

func TestLoadTemplate_Default(t *testing.T) {
	tpl, err := loadTemplate("")
	if err != nil {
		t.Fatalf("default template failed: %v", err)
	}
	for _, want := range []string{"[camera_location]", "[background_color]", "sym_cog", "frame_number"} {
		if !strings.Contains(tpl, want) {
			t.Errorf("default template missing %q", want)
		}
	}
}

func TestLoadTemplate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.pov")
	if err := os.WriteFile(path, []byte("camera at [camera_location]"), 0o644); err != nil {
		t.Fatal(err)
	}
	tpl, err := loadTemplate(path)
	if err != nil {
		t.Fatalf("loading template file failed: %v", err)
	}
	if tpl != "camera at [camera_location]" {
		t.Errorf("unexpected template content %q", tpl)
	}
}

func TestLoadTemplate_Missing(t *testing.T) {
	_, err := loadTemplate(filepath.Join(t.TempDir(), "nope.pov"))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}
