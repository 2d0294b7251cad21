package main

import (
	"bytes"
	"testing"

	"github.com/MikeRez0/ypmarket/internal/adapter/auth"
	"github.com/MikeRez0/ypmarket/internal/adapter/config"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	key, err := auth.New("")
	require.NoError(t, err)

	tests := []struct {
		name      string
		mode      string
		key       string
		expError  bool
		expOutput bool
	}{
		{name: "prod without key", mode: config.AppModeProduction, expError: true},
		{name: "prod with key", mode: config.AppModeProduction, key: key.ExportKey()},
		{name: "dev without key", mode: config.AppModeDevelop, expOutput: true},
		{name: "dev with key", mode: config.AppModeDevelop, key: key.ExportKey()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf := &config.Config{
				App:  &config.App{Mode: test.mode},
				Auth: &config.Auth{TokenKey: test.key},
			}
			var out bytes.Buffer

			ts, err := newTokenService(conf, &out)
			if test.expError {
				assert.Error(t, err)
				assert.Nil(t, ts)
				assert.Zero(t, out.Len())
				return
			}
			require.NoError(t, err)

			token, err := ts.CreateToken("u1", domain.RoleAdmin)
			require.NoError(t, err)
			_, err = ts.VerifyToken(token)
			assert.NoError(t, err)

			if test.expOutput {
				assert.Contains(t, out.String(), ts.ExportKey())
			} else {
				assert.Zero(t, out.Len())
			}
		})
	}
}
