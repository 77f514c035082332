// Package keystore resolves alias tokens to signing identities in the
// bundled test keystore.
package keystore

const (
	// FileName is the keystore file expected beside the installed binary.
	FileName = "apk.keystore"

	// Passphrase protects the bundled keystore. It is the well-known
	// passphrase used for Android test/platform signing, not a secret.
	Passphrase = "android"

	// DefaultAlias is used when no alias token is given.
	DefaultAlias = "test"
)

// Identity is a concrete signing identity: which keystore, which key entry
// within it, and the passphrase unlocking it.
type Identity struct {
	KeystorePath string
	Passphrase   string
	KeyAlias     string
}

// aliases maps CLI alias tokens to key entries in the keystore. The set is
// closed; configuration cannot extend it.
var aliases = map[string]string{
	"test":     "android.testkey",
	"platform": "android.platformkey",
}

// Aliases returns the recognized alias tokens in display order.
func Aliases() []string {
	return []string{"test", "platform"}
}

// KeyAlias maps an alias token to the key entry name in the keystore.
// An empty token selects the default. Unrecognized tokens return an
// InvalidAliasError.
func KeyAlias(token string) (string, error) {
	if token == "" {
		token = DefaultAlias
	}
	alias, ok := aliases[token]
	if !ok {
		return "", &InvalidAliasError{Token: token}
	}
	return alias, nil
}

// Resolve builds the full signing identity for an alias token, backed by
// the keystore at keystorePath with the given passphrase.
func Resolve(token, keystorePath, passphrase string) (*Identity, error) {
	alias, err := KeyAlias(token)
	if err != nil {
		return nil, err
	}
	return &Identity{
		KeystorePath: keystorePath,
		Passphrase:   passphrase,
		KeyAlias:     alias,
	}, nil
}
