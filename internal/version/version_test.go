package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemVerFromString(t *testing.T) {
	tests := []struct {
		arg     string
		want    *SemVer
		wantErr bool
	}{
		{arg: "", wantErr: true},
		{arg: "abcdas", wantErr: true},
		{arg: "a3.4.5", wantErr: true},
		{arg: "3.c.5", wantErr: true},
		{arg: "3.4-asd", wantErr: true},
		{arg: "1", want: &SemVer{Major: 1}},
		{arg: "0.11", want: &SemVer{Minor: 11}},
		{arg: "1.2.3\n", want: &SemVer{Major: 1, Minor: 2, Patch: 3}},
		{arg: "1.2.3-hello.yo", want: &SemVer{Major: 1, Minor: 2, Patch: 3, Appendix: "hello.yo"}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := FromString(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemVerString(t *testing.T) {
	v := SemVer{Major: 0, Minor: 1, Patch: 2, Appendix: "rc1", GitCommit: "abc"}

	assert.Equal(t, "0.1.2-rc1", v.Short())
	assert.Equal(t, "0.1.2-rc1 (abc)", v.String())
}

func TestLoadPackageVars(t *testing.T) {
	require.NoError(t, LoadPackageVars())
	assert.NotEmpty(t, CurSemVer.Short())
}
