// Package errors provides structured errors for the slayer client.
//
// Errors carry a Code, a user-facing Message, an optional Cause and
// free-form metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("account", account)
//
// Wrapping keeps the code of the wrapped Error, or defaults to Internal:
//
//	if err := client.CheckIfUserHasNFT(ctx); err != nil {
//	    return errors.Wrap(err, "failed to read character")
//	}
//
// # Wallet errors
//
// Errors returned by a JSON-RPC wallet are converted with FromRPCError, which
// maps the EIP-1193 provider codes:
//
//	4001 user rejected request -> PermissionDenied
//	4100 unauthorized          -> Unauthenticated
//	4200 unsupported method    -> Unimplemented
//	4900/4901 disconnected     -> Unavailable
//
// Transport failures (no JSON-RPC error object) become Unavailable.
//
// # Layer guidelines
//
// Clients (wallet, game contract) return coded errors and include the account
// or contract address in metadata. Orchestrators validate inputs with
// ValidationBuilder and decide which failures degrade to "no session" and
// which are returned. The CLI maps codes to exit statuses with Code.ExitCode.
package errors
