package types

import (
	"fmt"
)

// NewGenesisState creates a new GenesisState object
func NewGenesisState(params Params, state *GenesisWhitelistState) *GenesisState {
	return &GenesisState{
		Params:         params,
		WhitelistState: state,
	}
}

// DefaultGenesisState returns a default genesis state without whitelist
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// ValidateGenesis performs basic validation of whitelist genesis data returning an
// error for any failed validation criteria.
func ValidateGenesis(data *GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return err
	}

	if data.WhitelistState != nil {
		if _, err := data.WhitelistState.ToWhitelistState(); err != nil {
			return err
		}
	}

	seen := make(map[Pubkey]bool, len(data.Accounts))
	for _, genAcc := range data.Accounts {
		addr, _, err := genAcc.ToAccount()
		if err != nil {
			return err
		}

		if seen[addr] {
			return fmt.Errorf("duplicated genesis account %s", addr)
		}
		seen[addr] = true
	}

	return nil
}

// NewGenesisWhitelistState converts the whitelist state account into its genesis form.
func NewGenesisWhitelistState(state WhitelistState, lamports uint64) *GenesisWhitelistState {
	allowed := state.AllowedAddresses()
	allowedAddresses := make([]string, len(allowed))
	for i, addr := range allowed {
		allowedAddresses[i] = addr.String()
	}

	return &GenesisWhitelistState{
		IsInitialized:    state.IsInitialized,
		Admin:            state.Admin.String(),
		AllowedAddresses: allowedAddresses,
		Lamports:         lamports,
	}
}

// ToWhitelistState parses the genesis form into the account form.
func (gs *GenesisWhitelistState) ToWhitelistState() (WhitelistState, error) {
	if gs.Admin == "" {
		return WhitelistState{}, fmt.Errorf("whitelist admin must be set")
	}

	admin, err := PubkeyFromBase58(gs.Admin)
	if err != nil {
		return WhitelistState{}, err
	}
	if admin.IsZero() {
		return WhitelistState{}, fmt.Errorf("whitelist admin must be set")
	}

	state := NewWhitelistState(admin, gs.IsInitialized)
	for _, s := range gs.AllowedAddresses {
		addr, err := PubkeyFromBase58(s)
		if err != nil {
			return WhitelistState{}, err
		}

		if err := state.Push(addr); err != nil {
			return WhitelistState{}, err
		}
	}

	return state, nil
}

// NewGenesisAccount converts a program owned account into its genesis form.
func NewGenesisAccount(addr Pubkey, acc Account) GenesisAccount {
	return GenesisAccount{
		Address:  addr.String(),
		Lamports: acc.Lamports,
		Owner:    acc.Owner.String(),
		Data:     acc.Data,
	}
}

// ToAccount parses the genesis form into the address and the account stored there.
func (ga *GenesisAccount) ToAccount() (Pubkey, Account, error) {
	addr, err := PubkeyFromBase58(ga.Address)
	if err != nil {
		return Pubkey{}, Account{}, err
	}

	owner, err := PubkeyFromBase58(ga.Owner)
	if err != nil {
		return Pubkey{}, Account{}, err
	}

	return addr, Account{
		Lamports: ga.Lamports,
		Owner:    owner,
		Data:     ga.Data,
	}, nil
}
