// Package domain contains the core model for byobox: box catalogs, the selection
// ledger, constraint validation, pricing and the cart request built from a finished box.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, or the filesystem. Infra/adapters map into/from these types.
package domain
