package goalchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func(commit string) { GitCommit = commit }(GitCommit)

	cases := map[string]struct {
		commit string
		want   string
	}{
		"development build": {
			commit: "",
			want:   "v0.1.0-dev",
		},
		"built from a commit": {
			commit: "12345678",
			want:   "v0.1.0-dev 12345678",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			GitCommit = tc.commit
			assert.Equal(t, tc.want, Version())
		})
	}
}
