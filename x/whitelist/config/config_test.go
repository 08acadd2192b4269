package config_test

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/initia-labs/whitelist-hook/x/whitelist/config"
	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

func Test_GetConfig(t *testing.T) {
	v := viper.New()
	v.Set("whitelist.program-id", "4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw")

	cfg := config.GetConfig(v)
	require.Equal(t, "4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw", cfg.ProgramID)

	programID, err := cfg.ParseProgramID()
	require.NoError(t, err)

	var expected types.Pubkey
	for i := range expected {
		expected[i] = byte(i + 1)
	}
	require.Equal(t, expected, programID)
}

func Test_GetConfig_Default(t *testing.T) {
	cfg := config.GetConfig(viper.New())
	require.Equal(t, config.DefaultWhitelistConfig(), cfg)

	_, err := cfg.ParseProgramID()
	require.NoError(t, err)
}

func Test_ParseProgramID_Invalid(t *testing.T) {
	cfg := config.WhitelistConfig{ProgramID: "0OIl"}
	_, err := cfg.ParseProgramID()
	require.Error(t, err)
}

func Test_AddConfigFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "start"}
	config.AddConfigFlags(cmd)

	v := viper.New()
	require.NoError(t, v.BindPFlags(cmd.Flags()))
	require.NoError(t, cmd.Flags().Set("whitelist.program-id", "4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw"))

	cfg := config.GetConfig(v)
	require.Equal(t, "4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw", cfg.ProgramID)
}

func Test_DefaultConfigTemplate(t *testing.T) {
	tmpl, err := template.New("whitelist").Parse(config.DefaultConfigTemplate)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct{ WhitelistConfig config.WhitelistConfig }{config.DefaultWhitelistConfig()})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `program-id = "`+config.DefaultProgramID+`"`)
}
