package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsystems(t *testing.T) {
	assert.Equal(t, []string{
		"Ice", "IceBox", "IceGridAdmin", "IceGrid", "IcePatch2",
		"IceSSL", "IceStormAdmin", "IceStorm", "Glacier2", "Freeze",
	}, Subsystems())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want Result
	}{
		{
			name: "exact",
			key:  "Ice.MessageSizeMax",
			want: Result{Key: "Ice.MessageSizeMax", Subsystem: "Ice", Recognized: true},
		},
		{
			name: "wildcard suffix",
			key:  "Ice.Plugin.IceSSL",
			want: Result{Key: "Ice.Plugin.IceSSL", Subsystem: "Ice", Recognized: true},
		},
		{
			name: "wildcard requires suffix",
			key:  "Ice.Plugin.",
			want: Result{Key: "Ice.Plugin.", Subsystem: "Ice"},
		},
		{
			name: "deprecated",
			key:  "Glacier2.AllowCategories",
			want: Result{
				Key:         "Glacier2.AllowCategories",
				Subsystem:   "Glacier2",
				Recognized:  true,
				Deprecated:  true,
				Replacement: "Glacier2.Filter.Category.Accept",
			},
		},
		{
			name: "unknown under reserved prefix",
			key:  "Ice.Foo",
			want: Result{Key: "Ice.Foo", Subsystem: "Ice"},
		},
		{
			name: "longer prefix is its own subsystem",
			key:  "IceGridAdmin.Trace.Observers",
			want: Result{Key: "IceGridAdmin.Trace.Observers", Subsystem: "IceGridAdmin", Recognized: true},
		},
		{
			name: "anchored match",
			key:  "Ice.MessageSizeMaxExtra",
			want: Result{Key: "Ice.MessageSizeMaxExtra", Subsystem: "Ice"},
		},
		{
			name: "application key",
			key:  "Hello.Endpoints",
			want: Result{Key: "Hello.Endpoints"},
		},
		{
			name: "prefix without dot",
			key:  "IceFoo",
			want: Result{Key: "IceFoo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.key))
		})
	}
}

func TestReportable(t *testing.T) {
	assert.False(t, Validate("Hello.Endpoints").Reportable())
	assert.False(t, Validate("Ice.Trace.Network").Reportable())
	assert.True(t, Validate("Ice.Foo").Reportable())
	assert.True(t, Validate("Glacier2.AddUserToAllowCategories").Reportable())
}

func TestValidateAll(t *testing.T) {
	got := ValidateAll([]string{"Ice.Foo", "Hello.Endpoints", "Ice.Trace.Network", "Glacier2.AllowCategories"})
	require.Len(t, got, 2)
	assert.Equal(t, "Ice.Foo", got[0].Key)
	assert.Equal(t, "Glacier2.AllowCategories", got[1].Key)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("IceSSL")
	require.True(t, ok)
	assert.NotEmpty(t, s.Properties)

	_, ok = Lookup("Nope")
	assert.False(t, ok)
}

func TestPatternsCompile(t *testing.T) {
	assert.NotPanics(t, func() { Validate("Ice.Config") })
	for _, s := range subsystems {
		assert.Len(t, table[s.Name], len(s.Properties), s.Name)
	}
}
