package povray

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/magiconair/properties"
)

// renderINI builds the POV-Ray render control file for the given scene
// script: picture geometry, antialiasing, and an animation frame range
// driving the per-frame state includes. The frame range is a wide
// default the user edits down; the renderer stops at the first missing
// state file.
func (e *Exporter) renderINI(scriptName string) ([]byte, error) {
	p := properties.NewProperties()
	p.DisableExpansion = true

	entries := []struct{ key, value string }{
		{"Antialias", onOff(e.antialias)},
		{"Antialias_Threshold", povFloat(e.aaThreshold)},
		{"Antialias_Depth", strconv.Itoa(e.aaDepth)},
		{"Height", strconv.Itoa(e.height)},
		{"Width", strconv.Itoa(e.width)},
		{"Input_File_Name", scriptName},
		{"Output_File_Name", e.picDir + "/" + e.picFilebase},
		{"Initial_Frame", "0000"},
		{"Final_Frame", "0999"},
		{"Initial_Clock", "0"},
		{"Final_Clock", "1"},
		{"Pause_when_Done", "Off"},
	}
	for _, kv := range entries {
		if _, _, err := p.Set(kv.key, kv.value); err != nil {
			return nil, fmt.Errorf("%w: building ini: %w", ErrConfig, err)
		}
	}
	p.SetComment(entries[0].key, fmt.Sprintf("Render control for %s, session %s", scriptName, e.session))

	var buf bytes.Buffer
	if _, err := p.WriteComment(&buf, "; ", properties.UTF8); err != nil {
		return nil, fmt.Errorf("%w: building ini: %w", ErrConfig, err)
	}
	return buf.Bytes(), nil
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
