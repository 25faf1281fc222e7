package version

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	assert.Equal(t, version, v.Version)
	assert.Equal(t, prerelease, v.Prerelease)
}

func TestSemanticVersion(t *testing.T) {
	testCases := []struct {
		name   string
		v      Version
		expect string
	}{
		{
			name:   "Test only Version",
			v:      Version{Version: "0.0.0"},
			expect: "0.0.0",
		},
		{
			name:   "Test Prerelease",
			v:      Version{Version: "0.0.0", Prerelease: "test"},
			expect: "0.0.0-test",
		},
		{
			name:   "Test Metadata",
			v:      Version{Version: "0.0.0", Metadata: "buildinfo"},
			expect: "0.0.0+buildinfo",
		},
		{
			name:   "Test All",
			v:      Version{Version: "0.0.0", Prerelease: "test", Metadata: "buildinfo"},
			expect: "0.0.0-test+buildinfo",
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, tc.v.SemanticVersion(), tc.name)
	}
}

func TestFullVersionNumber(t *testing.T) {
	v := Version{Version: "1.2.3", Revision: "abc123", BuildDate: "2025-01-01"}

	withRev := v.FullVersionNumber(true)
	assert.Equal(t, fmt.Sprintf("%s1.2.3 (abc123), built 2025-01-01", slug), withRev)

	withoutRev := v.FullVersionNumber(false)
	assert.Equal(t, fmt.Sprintf("%s1.2.3, built 2025-01-01", slug), withoutRev)
}
