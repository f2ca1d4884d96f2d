// Package user provides domain entities for account management: the User
// aggregate and the Session value object issued at sign-in.
//
// Key business rules:
//   - Users must have a valid identifier, non-empty names, and a unique email
//     (uniqueness is enforced by the persistence layer)
//   - The aggregate stores only the password hash; hashing itself is delegated
//     to the PasswordHasher port
//   - Roles are buyer, merchant, or admin, defaulting to buyer
//   - Sessions are opaque token references with an expiry instant; expired
//     sessions are purged by a background job
package user
