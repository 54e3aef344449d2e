package skills

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseInventory(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []Skill
		wantErr bool
	}{
		{
			name: "mapping",
			data: `skills:
  - name: soul-guardian
    version: 1.3.0
  - name: " Clawsec-Suite "
    version: v2.0.1
    path: /opt/skills/clawsec-suite
`,
			want: []Skill{
				{Name: "soul-guardian", Version: "1.3.0"},
				{Name: "Clawsec-Suite", Version: "v2.0.1", Path: "/opt/skills/clawsec-suite"},
			},
		},
		{
			name: "list",
			data: `- name: soul-guardian
  version: 1.3.0
- name: ""
  version: 9.9.9
`,
			want: []Skill{{Name: "soul-guardian", Version: "1.3.0"}},
		},
		{
			name: "empty",
			data: ``,
			want: nil,
		},
		{
			name:    "scalar",
			data:    `just text`,
			wantErr: true,
		},
		{
			name:    "malformed",
			data:    "skills: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInventory([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseInventory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got.Skills) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got.Skills, tt.want) {
				t.Errorf("ParseInventory() got = %v, want %v", got.Skills, tt.want)
			}
		})
	}
}

func TestLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	data := []byte("skills:\n  - name: soul-guardian\n    version: 1.3.0\n  - name: SOUL-GUARDIAN\n    version: 1.0.0\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write inventory: %v", err)
	}

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory() error = %v", err)
	}

	want := []string{"soul-guardian"}
	if got := inv.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() got = %v, want %v", got, want)
	}

	if _, err := LoadInventory(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadInventory() should return error for missing file")
	}
}
