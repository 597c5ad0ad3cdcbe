package shell

import (
	"errors"
	"testing"
)

func TestParseProjectArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    ProjectArgs
		wantErr bool
	}{
		{
			name: "minimum two tokens",
			args: []string{"Markov", "50"},
			want: ProjectArgs{Title: "Markov", Description: "", MaxGrade: "50"},
		},
		{
			name: "one description word",
			args: []string{"Markov", "chains", "50"},
			want: ProjectArgs{Title: "Markov", Description: "chains", MaxGrade: "50"},
		},
		{
			name: "last token is always max grade",
			args: []string{"title", "a", "b", "c"},
			want: ProjectArgs{Title: "title", Description: "a b", MaxGrade: "c"},
		},
		{
			name: "long description",
			args: []string{"Markov", "Tweets", "generated", "from", "Markov", "chains", "50"},
			want: ProjectArgs{Title: "Markov", Description: "Tweets generated from Markov chains", MaxGrade: "50"},
		},
		{
			name:    "title only",
			args:    []string{"Markov"},
			wantErr: true,
		},
		{
			name:    "no tokens",
			args:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProjectArgs(tt.args)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArguments) {
					t.Fatalf("ParseProjectArgs() error = %v, want ErrInvalidArguments", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProjectArgs() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseProjectArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCommand_CheckArity(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		wantErr bool
	}{
		{"student exact", "student", []string{"jhacks"}, false},
		{"student missing", "student", nil, true},
		{"student extra", "student", []string{"jhacks", "extra"}, true},
		{"new_student exact", "new_student", []string{"Jane", "Hacker", "jhacks"}, false},
		{"new_student short", "new_student", []string{"Jane", "jhacks"}, true},
		{"get_grade exact", "get_grade", []string{"jhacks", "Markov"}, false},
		{"give_grade long", "give_grade", []string{"jhacks", "Markov", "10", "11"}, true},
		{"add_project variadic", "add_project", []string{"a", "b", "c", "d", "e"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := lookupCommand(tt.command)
			if !ok {
				t.Fatalf("lookupCommand(%q) not found", tt.command)
			}
			err := cmd.checkArity(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkArity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidArguments) {
				t.Errorf("checkArity() error = %v, want ErrInvalidArguments", err)
			}
		})
	}
}

func TestLookupCommand_Unknown(t *testing.T) {
	for _, name := range []string{"quit", "help", "students", ""} {
		if _, ok := lookupCommand(name); ok {
			t.Errorf("lookupCommand(%q) found, want not found", name)
		}
	}
}
