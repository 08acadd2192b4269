package types

const (
	EventTypeInitializeWhitelistState       = "initialize_whitelist_state"
	EventTypeInitializeExtraAccountMetaList = "initialize_extra_account_meta_list"
	EventTypeAddToWhitelist                 = "add_to_whitelist"
	EventTypeRemoveFromWhitelist            = "remove_from_whitelist"
	EventTypeCreateAccount                  = "create_account"

	AttributeKeyAdmin    = "admin"
	AttributeKeyPayer    = "payer"
	AttributeKeyMint     = "mint"
	AttributeKeyAddress  = "address"
	AttributeKeyAccount  = "account"
	AttributeKeyLamports = "lamports"
	AttributeKeySpace    = "space"
	AttributeKeyRemoved  = "removed"

	LabelResult   = "result"
	LabelAccepted = "accepted"
	LabelRejected = "rejected"
)
