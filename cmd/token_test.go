package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcastr/internal/services/auth"
)

func TestTokenCommand(t *testing.T) {
	upstream := newUpstream(t)
	useTestEnvironment(t, upstream)

	run := func(args ...string) (string, error) {
		cmd := NewRootCmd()
		_ = tokenCmd.Flags().Set("help", "false")
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs(append([]string{"token"}, args...))
		err := cmd.Execute()
		return buf.String(), err
	}

	t.Run("requires a secret", func(t *testing.T) {
		t.Setenv("PODCASTR_SECURITY_REVALIDATE_SECRET", "")
		_, err := run()
		assert.ErrorIs(t, err, auth.ErrNoSecret)
	})

	t.Run("issues a revalidate token", func(t *testing.T) {
		t.Setenv("PODCASTR_SECURITY_REVALIDATE_SECRET", "s3cret")
		output, err := run("--subject", "cms")
		require.NoError(t, err)

		svc, err := auth.NewService("s3cret")
		require.NoError(t, err)
		claims, err := svc.ValidateToken(strings.TrimSpace(output), auth.ScopeRevalidate)
		require.NoError(t, err)
		assert.Equal(t, "cms", claims.Subject)
	})
}
