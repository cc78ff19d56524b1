package console

import (
	"fmt"
	"strconv"
)

// Prompt prefixes every directive understood by the wallet console.
const Prompt = ">>> "

const (
	// DefaultAccount is the wallet account created before keys are imported.
	DefaultAccount = "achaintest"
	// DefaultPassword is the password of DefaultAccount.
	DefaultPassword = "12345678"

	// AllDelegates targets every delegate of the opened wallet.
	AllDelegates = "ALL"
)

// Command is a single wallet console directive, without line terminator.
type Command string

func (c Command) String() string {
	return string(c)
}

// WalletCreate creates a wallet account protected by password.
func WalletCreate(account, password string) Command {
	return Command(fmt.Sprintf("%vwallet_create %v %v ", Prompt, account, password))
}

// ImportKey imports a private key in WIF format into the opened wallet.
func ImportKey(key string) Command {
	return Command(Prompt + "import_key " + key)
}

// NetworkMinConnectionCount sets the minimum peer count a delegate waits for.
func NetworkMinConnectionCount(count int) Command {
	return Command(fmt.Sprintf("%vdelegate_set_network_min_connection_count %v ", Prompt, count))
}

// BlockProduction toggles block production for delegate.
func BlockProduction(delegate string, enabled bool) Command {
	return Command(fmt.Sprintf("%vwallet_delegate_set_block_production %v %v ", Prompt, delegate, strconv.FormatBool(enabled)))
}

// Header returns the directives emitted before any key is imported.
func Header() []Command {
	return []Command{
		WalletCreate(DefaultAccount, DefaultPassword),
	}
}

// Trailer returns the directives emitted after all keys are imported, so
// that a single node can produce blocks for every imported delegate.
func Trailer() []Command {
	return []Command{
		NetworkMinConnectionCount(0),
		BlockProduction(AllDelegates, true),
	}
}
