package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labbench/internal/config"
	"github.com/dmitrijs2005/labbench/internal/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	a, err := NewApp(context.Background(), &config.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func invoke(t *testing.T, a *App, cmd string, payload string) json.RawMessage {
	t.Helper()
	var raw json.RawMessage
	if payload != "" {
		raw = json.RawMessage(payload)
	}
	out, err := a.Registry().Invoke(context.Background(), cmd, raw)
	require.NoError(t, err)
	return out
}

func TestNewApp_RegistersFullCommandSurface(t *testing.T) {
	a := newTestApp(t)

	want := []string{
		CmdRegisterUser, CmdLoginUser, CmdLogoutUser, CmdGetCurrentUser,
		CmdGetPreferences, CmdUpdatePreferences,
		CmdSaveRecipe, CmdListRecipes, CmdDeleteRecipe,
		CmdSaveMeasurement, CmdListMeasurements, CmdDeleteMeasurement,
	}
	assert.ElementsMatch(t, want, a.Registry().Commands())
}

func TestCommands_RegisterLoginFlow(t *testing.T) {
	a := newTestApp(t)

	out := invoke(t, a, CmdRegisterUser, `{"username":"alice","email":"alice@x","password":"secret1"}`)
	var resp services.AuthResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice", resp.User.Username)

	// the serialised user never carries the password hash
	assert.NotContains(t, string(out), "password")

	out = invoke(t, a, CmdGetCurrentUser, "")
	assert.Contains(t, string(out), `"username":"alice"`)

	out = invoke(t, a, CmdLogoutUser, "")
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.True(t, resp.Success)

	out = invoke(t, a, CmdGetCurrentUser, "")
	assert.Equal(t, "null", string(out))

	out = invoke(t, a, CmdLoginUser, `{"username":"alice","password":"secret1"}`)
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.True(t, resp.Success)
}

func TestCommands_PreferencesOverBridge(t *testing.T) {
	a := newTestApp(t)

	invoke(t, a, CmdRegisterUser, `{"username":"alice","email":"alice@x","password":"secret1"}`)

	out := invoke(t, a, CmdGetPreferences, "")
	assert.Contains(t, string(out), `"theme":"auto"`)

	var prefs map[string]any
	require.NoError(t, json.Unmarshal(out, &prefs))
	prefs["theme"] = "dark"
	updated, err := json.Marshal(prefs)
	require.NoError(t, err)

	invoke(t, a, CmdUpdatePreferences, string(updated))

	out = invoke(t, a, CmdGetPreferences, "")
	assert.Contains(t, string(out), `"theme":"dark"`)
}

func TestCommands_DomainCommandsRequireLogin(t *testing.T) {
	a := newTestApp(t)

	for _, cmd := range []string{CmdGetPreferences, CmdListRecipes, CmdListMeasurements} {
		_, err := a.Registry().Invoke(context.Background(), cmd, nil)
		assert.Error(t, err, "command %s must require a session", cmd)
	}
}

func TestCommands_InvalidPayloadIsError(t *testing.T) {
	a := newTestApp(t)

	_, err := a.Registry().Invoke(context.Background(), CmdRegisterUser, json.RawMessage(`{not json`))
	require.Error(t, err)

	_, err = a.Registry().Invoke(context.Background(), CmdRegisterUser, nil)
	require.Error(t, err)
}

func TestServe_RegisterOverStdio(t *testing.T) {
	a := newTestApp(t)

	in := strings.NewReader(`{"id":1,"command":"register_user","payload":{"username":"alice","email":"alice@x","password":"secret1"}}` + "\n")
	var out bytes.Buffer

	require.NoError(t, a.Serve(context.Background(), in, &out))

	var resp response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Empty(t, resp.Error)
	assert.Contains(t, string(resp.Result), `"success":true`)
}

func TestServe_UnknownCommandAndMalformedLine(t *testing.T) {
	a := newTestApp(t)

	in := strings.NewReader(`{"id":7,"command":"no_such_command"}` + "\n" + `{garbage` + "\n")
	var out bytes.Buffer

	require.NoError(t, a.Serve(context.Background(), in, &out))

	dec := json.NewDecoder(&out)
	errorsSeen := 0
	for dec.More() {
		var resp response
		require.NoError(t, dec.Decode(&resp))
		assert.NotEmpty(t, resp.Error)
		errorsSeen++
	}
	assert.Equal(t, 2, errorsSeen)
}
