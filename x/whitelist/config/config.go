package config

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"

	"github.com/initia-labs/whitelist-hook/x/whitelist/types"
)

// DefaultProgramID - default identity the whitelist accounts are derived under
const DefaultProgramID = "F8JTJRsEngZsdw4HkZDHmDWjJtVXUWCPeSgKFondXVbQ"

const (
	flagProgramID = "whitelist.program-id"
)

// WhitelistConfig is the extra config required for whitelist
type WhitelistConfig struct {
	ProgramID string `mapstructure:"program-id"`
}

// DefaultWhitelistConfig returns the default settings for WhitelistConfig
func DefaultWhitelistConfig() WhitelistConfig {
	return WhitelistConfig{
		ProgramID: DefaultProgramID,
	}
}

// GetConfig load config values from the app options
func GetConfig(appOpts servertypes.AppOptions) WhitelistConfig {
	programID := cast.ToString(appOpts.Get(flagProgramID))
	if programID == "" {
		programID = DefaultProgramID
	}

	return WhitelistConfig{
		ProgramID: programID,
	}
}

// ParseProgramID returns the configured program id.
func (c WhitelistConfig) ParseProgramID() (types.Pubkey, error) {
	return types.PubkeyFromBase58(c.ProgramID)
}

// AddConfigFlags implements servertypes.WhitelistConfigFlags interface.
func AddConfigFlags(startCmd *cobra.Command) {
	startCmd.Flags().String(flagProgramID, DefaultProgramID, "Set the base58 program id the whitelist accounts are derived under")
}

// DefaultConfigTemplate default config template for whitelist module
const DefaultConfigTemplate = `
###############################################################################
###                         Whitelist                                       ###
###############################################################################

[whitelist]
# The base58 program id the whitelist state and extra account meta lists are derived under.
program-id = "{{ .WhitelistConfig.ProgramID }}"
`
