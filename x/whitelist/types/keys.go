package types

const (
	// ModuleName is the name of the whitelist module
	ModuleName = "whitelist"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the whitelist module
	QuerierRoute = ModuleName

	// RouterKey is the msg router key for the whitelist module
	RouterKey = ModuleName
)

// Keys for whitelist store
// Items are stored with the following key: values
var (
	AccountsPrefix = []byte{0x11} // prefix for program owned accounts
	ParamsKey      = []byte{0x21} // key for parameters for module x/whitelist
)

// Seeds used to derive the program owned accounts.
var (
	WhitelistStateSeed    = []byte("whitelist-state")
	ExtraAccountMetasSeed = []byte("extra-account-metas")
)
